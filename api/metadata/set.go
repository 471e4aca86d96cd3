package metadata

import "github.com/luminamedia/lumina-go/api"

// SetFieldCreateParams creates a set metadata field holding multiple values
// from its datasource. The datasource is required on create; a mandatory set
// field must carry a non-empty default value list.
type SetFieldCreateParams struct {
	MetadataFieldParams
	DefaultValue []string
}

// NewSetFieldCreateParams creates set field create params with the given label
func NewSetFieldCreateParams(label string) *SetFieldCreateParams {
	return &SetFieldCreateParams{MetadataFieldParams: MetadataFieldParams{Label: label}}
}

// FieldType returns the set wire tag
func (p *SetFieldCreateParams) FieldType() api.FieldType {
	return api.FieldTypeSet
}

// Check verifies the create request is well formed
func (p *SetFieldCreateParams) Check() error {
	if err := p.checkCreate(len(p.DefaultValue) > 0); err != nil {
		return err
	}
	return p.checkEnumeratedField(true)
}

// ToParams projects the request into its body form
func (p *SetFieldCreateParams) ToParams() api.Params {
	params := p.buildCreateParams(api.FieldTypeSet)
	if len(p.DefaultValue) > 0 {
		params["default_value"] = p.DefaultValue
	}
	return params
}

// SetFieldUpdateParams updates a set metadata field
type SetFieldUpdateParams struct {
	MetadataFieldParams
	DefaultValue []string
}

// NewSetFieldUpdateParams creates empty set field update params
func NewSetFieldUpdateParams() *SetFieldUpdateParams {
	return &SetFieldUpdateParams{}
}

// FieldType returns the set wire tag
func (p *SetFieldUpdateParams) FieldType() api.FieldType {
	return api.FieldTypeSet
}

// Check verifies the update request is well formed
func (p *SetFieldUpdateParams) Check() error {
	return p.checkEnumeratedField(false)
}

// ToParams projects the request into its body form
func (p *SetFieldUpdateParams) ToParams() api.Params {
	params := p.buildUpdateParams(api.FieldTypeSet)
	if len(p.DefaultValue) > 0 {
		params["default_value"] = p.DefaultValue
	}
	return params
}
