package metadata

import (
	"time"

	"github.com/luminamedia/lumina-go/api"
)

// DateFieldCreateParams creates a date metadata field.
// The default value is serialized as a calendar date without a time component.
type DateFieldCreateParams struct {
	MetadataFieldParams
	DefaultValue *time.Time
}

// NewDateFieldCreateParams creates date field create params with the given label
func NewDateFieldCreateParams(label string) *DateFieldCreateParams {
	return &DateFieldCreateParams{MetadataFieldParams: MetadataFieldParams{Label: label}}
}

// FieldType returns the date wire tag
func (p *DateFieldCreateParams) FieldType() api.FieldType {
	return api.FieldTypeDate
}

// Check verifies the create request is well formed
func (p *DateFieldCreateParams) Check() error {
	if err := p.checkCreate(p.DefaultValue != nil); err != nil {
		return err
	}
	return p.checkScalarField(api.ValidationTypeGreaterThan, api.ValidationTypeLessThan, api.ValidationTypeAnd)
}

// ToParams projects the request into its body form
func (p *DateFieldCreateParams) ToParams() api.Params {
	params := p.buildCreateParams(api.FieldTypeDate)
	if p.DefaultValue != nil {
		params["default_value"] = api.FormatDate(*p.DefaultValue)
	}
	return params
}

// DateFieldUpdateParams updates a date metadata field
type DateFieldUpdateParams struct {
	MetadataFieldParams
	DefaultValue *time.Time
}

// NewDateFieldUpdateParams creates empty date field update params
func NewDateFieldUpdateParams() *DateFieldUpdateParams {
	return &DateFieldUpdateParams{}
}

// FieldType returns the date wire tag
func (p *DateFieldUpdateParams) FieldType() api.FieldType {
	return api.FieldTypeDate
}

// Check verifies the update request is well formed
func (p *DateFieldUpdateParams) Check() error {
	return p.checkScalarField(api.ValidationTypeGreaterThan, api.ValidationTypeLessThan, api.ValidationTypeAnd)
}

// ToParams projects the request into its body form
func (p *DateFieldUpdateParams) ToParams() api.Params {
	params := p.buildUpdateParams(api.FieldTypeDate)
	if p.DefaultValue != nil {
		params["default_value"] = api.FormatDate(*p.DefaultValue)
	}
	return params
}
