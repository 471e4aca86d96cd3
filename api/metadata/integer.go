package metadata

import "github.com/luminamedia/lumina-go/api"

// IntegerFieldCreateParams creates an integer metadata field
type IntegerFieldCreateParams struct {
	MetadataFieldParams
	DefaultValue *int
}

// NewIntegerFieldCreateParams creates integer field create params with the given label
func NewIntegerFieldCreateParams(label string) *IntegerFieldCreateParams {
	return &IntegerFieldCreateParams{MetadataFieldParams: MetadataFieldParams{Label: label}}
}

// FieldType returns the integer wire tag
func (p *IntegerFieldCreateParams) FieldType() api.FieldType {
	return api.FieldTypeInteger
}

// Check verifies the create request is well formed
func (p *IntegerFieldCreateParams) Check() error {
	if err := p.checkCreate(p.DefaultValue != nil); err != nil {
		return err
	}
	return p.checkScalarField(api.ValidationTypeGreaterThan, api.ValidationTypeLessThan, api.ValidationTypeAnd)
}

// ToParams projects the request into its body form
func (p *IntegerFieldCreateParams) ToParams() api.Params {
	params := p.buildCreateParams(api.FieldTypeInteger)
	if p.DefaultValue != nil {
		params["default_value"] = *p.DefaultValue
	}
	return params
}

// IntegerFieldUpdateParams updates an integer metadata field.
// Label and default value are optional on update.
type IntegerFieldUpdateParams struct {
	MetadataFieldParams
	DefaultValue *int
}

// NewIntegerFieldUpdateParams creates empty integer field update params
func NewIntegerFieldUpdateParams() *IntegerFieldUpdateParams {
	return &IntegerFieldUpdateParams{}
}

// FieldType returns the integer wire tag
func (p *IntegerFieldUpdateParams) FieldType() api.FieldType {
	return api.FieldTypeInteger
}

// Check verifies the update request is well formed
func (p *IntegerFieldUpdateParams) Check() error {
	return p.checkScalarField(api.ValidationTypeGreaterThan, api.ValidationTypeLessThan, api.ValidationTypeAnd)
}

// ToParams projects the request into its body form
func (p *IntegerFieldUpdateParams) ToParams() api.Params {
	params := p.buildUpdateParams(api.FieldTypeInteger)
	if p.DefaultValue != nil {
		params["default_value"] = *p.DefaultValue
	}
	return params
}
