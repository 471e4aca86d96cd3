// Package fielddef loads declarative metadata field definitions from YAML or
// JSON documents and turns them into request params.
package fielddef

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/luminamedia/lumina-go/api"
	"github.com/luminamedia/lumina-go/api/metadata"
)

// Document is a set of field definitions loaded from one file
type Document struct {
	Fields []Definition `mapstructure:"fields"`
}

// Definition is one declarative field definition
type Definition struct {
	Type       string            `mapstructure:"type"` // integer, string, date, enum, set
	ExternalID string            `mapstructure:"external_id"`
	Label      string            `mapstructure:"label"`
	Mandatory  bool              `mapstructure:"mandatory"`
	Default    interface{}       `mapstructure:"default"`
	Validation *RuleDefinition   `mapstructure:"validation"`
	DataSource []EntryDefinition `mapstructure:"datasource"`
	ReadOnly   *bool             `mapstructure:"readonly"`
}

// EntryDefinition is one datasource entry
type EntryDefinition struct {
	ExternalID string `mapstructure:"external_id"`
	Value      string `mapstructure:"value"`
}

// RuleDefinition is one validation rule; Rules nests further rules for "and"
type RuleDefinition struct {
	Type   string           `mapstructure:"type"`
	Min    *int             `mapstructure:"min"`
	Max    *int             `mapstructure:"max"`
	Value  interface{}      `mapstructure:"value"`
	Equals bool             `mapstructure:"equals"`
	Rules  []RuleDefinition `mapstructure:"rules"`
}

// Load reads a definition document from a YAML or JSON file
func Load(path string) (*Document, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read definitions %s: %w", path, err)
	}

	var doc Document
	if err := v.Unmarshal(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse definitions %s: %w", path, err)
	}

	if len(doc.Fields) == 0 {
		return nil, fmt.Errorf("definitions %s contain no fields", path)
	}

	return &doc, nil
}

// BuildCreate turns a definition into field create params
func BuildCreate(def *Definition) (metadata.FieldParams, error) {
	base, err := buildBase(def)
	if err != nil {
		return nil, err
	}

	switch def.Type {
	case "integer":
		p := &metadata.IntegerFieldCreateParams{MetadataFieldParams: base}
		if p.DefaultValue, err = intDefault(def); err != nil {
			return nil, err
		}
		return p, nil
	case "string":
		p := &metadata.StringFieldCreateParams{MetadataFieldParams: base}
		if p.DefaultValue, err = stringDefault(def); err != nil {
			return nil, err
		}
		return p, nil
	case "date":
		p := &metadata.DateFieldCreateParams{MetadataFieldParams: base}
		if p.DefaultValue, err = dateDefault(def); err != nil {
			return nil, err
		}
		return p, nil
	case "enum":
		p := &metadata.EnumFieldCreateParams{MetadataFieldParams: base}
		if p.DefaultValue, err = stringDefault(def); err != nil {
			return nil, err
		}
		return p, nil
	case "set":
		p := &metadata.SetFieldCreateParams{MetadataFieldParams: base}
		if p.DefaultValue, err = listDefault(def); err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("field %q: unknown type %q", def.Label, def.Type)
	}
}

// BuildUpdate turns a definition into field update params
func BuildUpdate(def *Definition) (metadata.FieldParams, error) {
	base, err := buildBase(def)
	if err != nil {
		return nil, err
	}

	switch def.Type {
	case "integer":
		p := &metadata.IntegerFieldUpdateParams{MetadataFieldParams: base}
		if p.DefaultValue, err = intDefault(def); err != nil {
			return nil, err
		}
		return p, nil
	case "string":
		p := &metadata.StringFieldUpdateParams{MetadataFieldParams: base}
		if p.DefaultValue, err = stringDefault(def); err != nil {
			return nil, err
		}
		return p, nil
	case "date":
		p := &metadata.DateFieldUpdateParams{MetadataFieldParams: base}
		if p.DefaultValue, err = dateDefault(def); err != nil {
			return nil, err
		}
		return p, nil
	case "enum":
		p := &metadata.EnumFieldUpdateParams{MetadataFieldParams: base}
		if p.DefaultValue, err = stringDefault(def); err != nil {
			return nil, err
		}
		return p, nil
	case "set":
		p := &metadata.SetFieldUpdateParams{MetadataFieldParams: base}
		if p.DefaultValue, err = listDefault(def); err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("field %q: unknown type %q", def.Label, def.Type)
	}
}

// buildBase assembles the attributes shared by every field kind
func buildBase(def *Definition) (metadata.MetadataFieldParams, error) {
	base := metadata.MetadataFieldParams{
		ExternalID: def.ExternalID,
		Label:      def.Label,
		Mandatory:  def.Mandatory,
	}

	if def.Validation != nil {
		rule, err := buildRule(def.Validation)
		if err != nil {
			return base, fmt.Errorf("field %q: %w", def.Label, err)
		}
		base.Validation = rule
	}

	if len(def.DataSource) > 0 {
		entries := make([]metadata.EntryParams, 0, len(def.DataSource))
		for _, e := range def.DataSource {
			entries = append(entries, metadata.EntryParams{ExternalID: e.ExternalID, Value: e.Value})
		}
		base.DataSource = metadata.NewDataSourceParams(entries...)
	}

	if def.ReadOnly != nil {
		base.Restrictions = &metadata.RestrictionsParams{ReadOnly: *def.ReadOnly}
	}

	return base, nil
}

// buildRule translates one rule definition, recursing for "and"
func buildRule(rd *RuleDefinition) (metadata.ValidationParams, error) {
	switch rd.Type {
	case "strlen":
		return &metadata.StringLengthParams{Min: rd.Min, Max: rd.Max}, nil
	case "greater_than", "less_than":
		return buildComparison(rd)
	case "and":
		rules := make([]metadata.ValidationParams, 0, len(rd.Rules))
		for i := range rd.Rules {
			rule, err := buildRule(&rd.Rules[i])
			if err != nil {
				return nil, err
			}
			rules = append(rules, rule)
		}
		return metadata.NewAndValidationParams(rules...), nil
	default:
		return nil, fmt.Errorf("unknown validation type %q", rd.Type)
	}
}

// buildComparison picks the int or date comparison variant from the bound value
func buildComparison(rd *RuleDefinition) (metadata.ValidationParams, error) {
	vt := api.ValidationType(rd.Type)

	switch value := rd.Value.(type) {
	case nil:
		return nil, fmt.Errorf("%s validation requires a value", rd.Type)
	case time.Time:
		return &metadata.DateComparisonParams{Type: vt, Value: &value, IsEqual: rd.Equals}, nil
	case string:
		bound, err := time.Parse(api.DateFormat, value)
		if err != nil {
			return nil, fmt.Errorf("%s validation value %q is not a calendar date", rd.Type, value)
		}
		return &metadata.DateComparisonParams{Type: vt, Value: &bound, IsEqual: rd.Equals}, nil
	default:
		bound, err := cast.ToIntE(rd.Value)
		if err != nil {
			return nil, fmt.Errorf("%s validation value must be an integer or calendar date: %w", rd.Type, err)
		}
		return &metadata.IntComparisonParams{Type: vt, Value: &bound, IsEqual: rd.Equals}, nil
	}
}

// intDefault coerces the declared default into an integer
func intDefault(def *Definition) (*int, error) {
	if def.Default == nil {
		return nil, nil
	}
	n, err := cast.ToIntE(def.Default)
	if err != nil {
		return nil, fmt.Errorf("field %q: default must be an integer: %w", def.Label, err)
	}
	return &n, nil
}

// stringDefault coerces the declared default into a string
func stringDefault(def *Definition) (string, error) {
	if def.Default == nil {
		return "", nil
	}
	s, err := cast.ToStringE(def.Default)
	if err != nil {
		return "", fmt.Errorf("field %q: default must be a string: %w", def.Label, err)
	}
	return s, nil
}

// dateDefault coerces the declared default into a calendar date
func dateDefault(def *Definition) (*time.Time, error) {
	switch value := def.Default.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return &value, nil
	default:
		s, err := cast.ToStringE(def.Default)
		if err != nil {
			return nil, fmt.Errorf("field %q: default must be a calendar date: %w", def.Label, err)
		}
		parsed, err := time.Parse(api.DateFormat, s)
		if err != nil {
			return nil, fmt.Errorf("field %q: default %q is not a calendar date", def.Label, s)
		}
		return &parsed, nil
	}
}

// listDefault coerces the declared default into a string list
func listDefault(def *Definition) ([]string, error) {
	if def.Default == nil {
		return nil, nil
	}
	values, err := cast.ToStringSliceE(def.Default)
	if err != nil {
		return nil, fmt.Errorf("field %q: default must be a list of strings: %w", def.Label, err)
	}
	return values, nil
}
