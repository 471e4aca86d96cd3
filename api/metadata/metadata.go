// Package metadata holds the request parameter models for the structured
// metadata field admin API: typed field definitions (integer, string, date,
// enum, set) in create and update variants, their validation rules and
// datasource values. Every model validates itself with Check and projects
// into the normalized request body shape with ToParams; the transport layer
// is a separate collaborator and never reached from here.
package metadata

import (
	"fmt"

	"github.com/luminamedia/lumina-go/api"
)

// FieldParams is implemented by every metadata field request variant
type FieldParams interface {
	// FieldType returns the wire tag of the field kind
	FieldType() api.FieldType

	// Check verifies the request is well formed
	Check() error

	// ToParams projects the request into its body form
	ToParams() api.Params
}

// RestrictionsParams limits how a field may be used once created
type RestrictionsParams struct {
	ReadOnly bool
}

// ToParams projects the restrictions into their body form
func (r *RestrictionsParams) ToParams() api.Params {
	return api.Params{"readonly": r.ReadOnly}
}

// MetadataFieldParams holds the attributes shared by every field kind.
// Concrete create/update variants embed it and add their typed default value.
type MetadataFieldParams struct {
	ExternalID   string
	Label        string
	Mandatory    bool
	Validation   ValidationParams
	DataSource   *DataSourceParams
	Restrictions *RestrictionsParams
}

// checkCreate verifies the rules shared by every create request: a label is
// required, and a mandatory field must carry a default value
func (m *MetadataFieldParams) checkCreate(hasDefault bool) error {
	if m.Label == "" {
		return &api.Error{Message: "label is required"}
	}
	if m.Mandatory && !hasDefault {
		return &api.Error{Message: "default value is required for mandatory fields"}
	}
	return nil
}

// checkScalarField rejects a datasource on int/string/date fields and
// verifies the attached validation rule against the allowed kinds
func (m *MetadataFieldParams) checkScalarField(allowed ...api.ValidationType) error {
	if m.DataSource != nil {
		return &api.Error{Message: "datasource is not supported for this field type"}
	}
	return m.checkValidation(allowed...)
}

// checkValidation verifies the attached rule, if any, is of an allowed kind
// and well formed
func (m *MetadataFieldParams) checkValidation(allowed ...api.ValidationType) error {
	if m.Validation == nil {
		return nil
	}
	permitted := false
	for _, vt := range allowed {
		if m.Validation.ValidationType() == vt {
			permitted = true
			break
		}
	}
	if !permitted {
		return &api.Error{
			Message: fmt.Sprintf("validation type %q is not allowed for this field type", m.Validation.ValidationType()),
		}
	}
	return m.Validation.Check()
}

// checkEnumeratedField verifies the datasource rules shared by enum and set
// fields. A datasource is required on create and optional on update; explicit
// validation rules are never allowed, the datasource itself constrains values.
func (m *MetadataFieldParams) checkEnumeratedField(requireDataSource bool) error {
	if m.Validation != nil {
		return &api.Error{Message: "validation rules are not supported for enum and set fields"}
	}
	if m.DataSource == nil {
		if requireDataSource {
			return &api.Error{Message: "datasource is required for this field type"}
		}
		return nil
	}
	return m.DataSource.Check()
}

// buildParams assembles the attributes shared by create and update bodies
func (m *MetadataFieldParams) buildParams(ft api.FieldType) api.Params {
	params := api.Params{
		"type":      string(ft),
		"mandatory": m.Mandatory,
	}
	if m.ExternalID != "" {
		params["external_id"] = m.ExternalID
	}
	if m.Validation != nil {
		params["validation"] = m.Validation.ToParams()
	}
	if m.DataSource != nil {
		params["datasource"] = m.DataSource.ToParams()
	}
	if m.Restrictions != nil {
		params["restrictions"] = m.Restrictions.ToParams()
	}
	return params
}

// buildCreateParams assembles a create body; the label is always sent
func (m *MetadataFieldParams) buildCreateParams(ft api.FieldType) api.Params {
	params := m.buildParams(ft)
	params["label"] = m.Label
	return params
}

// buildUpdateParams assembles an update body; the label is sent only when set
func (m *MetadataFieldParams) buildUpdateParams(ft api.FieldType) api.Params {
	params := m.buildParams(ft)
	if m.Label != "" {
		params["label"] = m.Label
	}
	return params
}
