package metadata

import (
	"time"

	"github.com/luminamedia/lumina-go/api"
)

// ValidationParams is implemented by every field validation rule variant
type ValidationParams interface {
	// ValidationType returns the wire tag of the rule
	ValidationType() api.ValidationType

	// Check verifies the rule is well formed
	Check() error

	// ToParams projects the rule into its body form
	ToParams() api.Params
}

// StringLengthParams restricts the length of a string field value.
// At least one bound must be set; bounds must be non-negative.
type StringLengthParams struct {
	Min *int
	Max *int
}

// ValidationType returns the strlen wire tag
func (p *StringLengthParams) ValidationType() api.ValidationType {
	return api.ValidationTypeStringLength
}

// Check verifies the rule is well formed
func (p *StringLengthParams) Check() error {
	if p.Min == nil && p.Max == nil {
		return &api.Error{Message: "strlen validation requires at least one of min or max"}
	}
	if p.Min != nil && *p.Min < 0 {
		return &api.Error{Message: "strlen min must be a non-negative integer"}
	}
	if p.Max != nil && *p.Max < 0 {
		return &api.Error{Message: "strlen max must be a non-negative integer"}
	}
	return nil
}

// ToParams projects the rule into its body form, emitting only the set bounds
func (p *StringLengthParams) ToParams() api.Params {
	params := api.Params{"type": string(api.ValidationTypeStringLength)}
	if p.Min != nil {
		params["min"] = *p.Min
	}
	if p.Max != nil {
		params["max"] = *p.Max
	}
	return params
}

// IntComparisonParams compares an integer field value against a fixed bound.
// Type carries the greater_than or less_than wire tag; IsEqual makes the
// comparison inclusive.
type IntComparisonParams struct {
	Type    api.ValidationType
	Value   *int
	IsEqual bool
}

// NewIntGreaterThanParams creates a greater-than rule for integer fields
func NewIntGreaterThanParams(value int, isEqual bool) *IntComparisonParams {
	return &IntComparisonParams{Type: api.ValidationTypeGreaterThan, Value: &value, IsEqual: isEqual}
}

// NewIntLessThanParams creates a less-than rule for integer fields
func NewIntLessThanParams(value int, isEqual bool) *IntComparisonParams {
	return &IntComparisonParams{Type: api.ValidationTypeLessThan, Value: &value, IsEqual: isEqual}
}

// ValidationType returns the comparison wire tag
func (p *IntComparisonParams) ValidationType() api.ValidationType {
	return p.Type
}

// Check verifies the rule is well formed
func (p *IntComparisonParams) Check() error {
	if err := checkComparisonType(p.Type); err != nil {
		return err
	}
	if p.Value == nil {
		return &api.Error{Message: "comparison validation requires a value"}
	}
	return nil
}

// ToParams projects the rule into its body form
func (p *IntComparisonParams) ToParams() api.Params {
	return api.Params{
		"type":   string(p.Type),
		"equals": p.IsEqual,
		"value":  *p.Value,
	}
}

// DateComparisonParams compares a date field value against a fixed bound.
// The bound is serialized as a calendar date without a time component.
type DateComparisonParams struct {
	Type    api.ValidationType
	Value   *time.Time
	IsEqual bool
}

// NewDateGreaterThanParams creates a greater-than rule for date fields
func NewDateGreaterThanParams(value time.Time, isEqual bool) *DateComparisonParams {
	return &DateComparisonParams{Type: api.ValidationTypeGreaterThan, Value: &value, IsEqual: isEqual}
}

// NewDateLessThanParams creates a less-than rule for date fields
func NewDateLessThanParams(value time.Time, isEqual bool) *DateComparisonParams {
	return &DateComparisonParams{Type: api.ValidationTypeLessThan, Value: &value, IsEqual: isEqual}
}

// ValidationType returns the comparison wire tag
func (p *DateComparisonParams) ValidationType() api.ValidationType {
	return p.Type
}

// Check verifies the rule is well formed
func (p *DateComparisonParams) Check() error {
	if err := checkComparisonType(p.Type); err != nil {
		return err
	}
	if p.Value == nil {
		return &api.Error{Message: "comparison validation requires a value"}
	}
	return nil
}

// ToParams projects the rule into its body form
func (p *DateComparisonParams) ToParams() api.Params {
	return api.Params{
		"type":   string(p.Type),
		"equals": p.IsEqual,
		"value":  api.FormatDate(*p.Value),
	}
}

// checkComparisonType rejects comparison rules built with a non-comparison tag
func checkComparisonType(vt api.ValidationType) error {
	if vt != api.ValidationTypeGreaterThan && vt != api.ValidationTypeLessThan {
		return &api.Error{Message: "comparison type must be one of: greater_than, less_than"}
	}
	return nil
}

// AndValidationParams combines rules that must all hold.
// Check only verifies the combinator itself; nested rules are serialized as
// given and are NOT checked recursively. Callers who need the nested rules
// validated must call Check on each of them.
type AndValidationParams struct {
	Rules []ValidationParams
}

// NewAndValidationParams creates an and combinator over the given rules
func NewAndValidationParams(rules ...ValidationParams) *AndValidationParams {
	return &AndValidationParams{Rules: rules}
}

// ValidationType returns the and wire tag
func (p *AndValidationParams) ValidationType() api.ValidationType {
	return api.ValidationTypeAnd
}

// Check verifies the combinator holds at least one rule
func (p *AndValidationParams) Check() error {
	if len(p.Rules) == 0 {
		return &api.Error{Message: "and validation requires at least one rule"}
	}
	return nil
}

// ToParams projects the combinator and its nested rules into their body form
func (p *AndValidationParams) ToParams() api.Params {
	rules := make([]api.Params, 0, len(p.Rules))
	for _, rule := range p.Rules {
		rules = append(rules, rule.ToParams())
	}
	return api.Params{
		"type":  string(api.ValidationTypeAnd),
		"rules": rules,
	}
}
