package metadata

import "github.com/luminamedia/lumina-go/api"

// EnumFieldCreateParams creates an enum metadata field. The datasource defines
// the allowed values and is required on create; the default value, when set,
// names one of the datasource entries.
type EnumFieldCreateParams struct {
	MetadataFieldParams
	DefaultValue string
}

// NewEnumFieldCreateParams creates enum field create params with the given label
func NewEnumFieldCreateParams(label string) *EnumFieldCreateParams {
	return &EnumFieldCreateParams{MetadataFieldParams: MetadataFieldParams{Label: label}}
}

// FieldType returns the enum wire tag
func (p *EnumFieldCreateParams) FieldType() api.FieldType {
	return api.FieldTypeEnum
}

// Check verifies the create request is well formed
func (p *EnumFieldCreateParams) Check() error {
	if err := p.checkCreate(p.DefaultValue != ""); err != nil {
		return err
	}
	return p.checkEnumeratedField(true)
}

// ToParams projects the request into its body form
func (p *EnumFieldCreateParams) ToParams() api.Params {
	params := p.buildCreateParams(api.FieldTypeEnum)
	if p.DefaultValue != "" {
		params["default_value"] = p.DefaultValue
	}
	return params
}

// EnumFieldUpdateParams updates an enum metadata field.
// The datasource is optional on update.
type EnumFieldUpdateParams struct {
	MetadataFieldParams
	DefaultValue string
}

// NewEnumFieldUpdateParams creates empty enum field update params
func NewEnumFieldUpdateParams() *EnumFieldUpdateParams {
	return &EnumFieldUpdateParams{}
}

// FieldType returns the enum wire tag
func (p *EnumFieldUpdateParams) FieldType() api.FieldType {
	return api.FieldTypeEnum
}

// Check verifies the update request is well formed
func (p *EnumFieldUpdateParams) Check() error {
	return p.checkEnumeratedField(false)
}

// ToParams projects the request into its body form
func (p *EnumFieldUpdateParams) ToParams() api.Params {
	params := p.buildUpdateParams(api.FieldTypeEnum)
	if p.DefaultValue != "" {
		params["default_value"] = p.DefaultValue
	}
	return params
}
