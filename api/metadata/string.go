package metadata

import "github.com/luminamedia/lumina-go/api"

// StringFieldCreateParams creates a string metadata field
type StringFieldCreateParams struct {
	MetadataFieldParams
	DefaultValue string
}

// NewStringFieldCreateParams creates string field create params with the given label
func NewStringFieldCreateParams(label string) *StringFieldCreateParams {
	return &StringFieldCreateParams{MetadataFieldParams: MetadataFieldParams{Label: label}}
}

// FieldType returns the string wire tag
func (p *StringFieldCreateParams) FieldType() api.FieldType {
	return api.FieldTypeString
}

// Check verifies the create request is well formed
func (p *StringFieldCreateParams) Check() error {
	if err := p.checkCreate(p.DefaultValue != ""); err != nil {
		return err
	}
	return p.checkScalarField(api.ValidationTypeStringLength, api.ValidationTypeAnd)
}

// ToParams projects the request into its body form
func (p *StringFieldCreateParams) ToParams() api.Params {
	params := p.buildCreateParams(api.FieldTypeString)
	if p.DefaultValue != "" {
		params["default_value"] = p.DefaultValue
	}
	return params
}

// StringFieldUpdateParams updates a string metadata field
type StringFieldUpdateParams struct {
	MetadataFieldParams
	DefaultValue string
}

// NewStringFieldUpdateParams creates empty string field update params
func NewStringFieldUpdateParams() *StringFieldUpdateParams {
	return &StringFieldUpdateParams{}
}

// FieldType returns the string wire tag
func (p *StringFieldUpdateParams) FieldType() api.FieldType {
	return api.FieldTypeString
}

// Check verifies the update request is well formed
func (p *StringFieldUpdateParams) Check() error {
	return p.checkScalarField(api.ValidationTypeStringLength, api.ValidationTypeAnd)
}

// ToParams projects the request into its body form
func (p *StringFieldUpdateParams) ToParams() api.Params {
	params := p.buildUpdateParams(api.FieldTypeString)
	if p.DefaultValue != "" {
		params["default_value"] = p.DefaultValue
	}
	return params
}
