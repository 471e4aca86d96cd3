package metadata

import "github.com/luminamedia/lumina-go/api"

// FieldsReorderParams reorders metadata fields in listing responses
type FieldsReorderParams struct {
	OrderBy   string // label, external_id, created_at
	Direction string // asc, desc (optional, server default when empty)
}

// NewFieldsReorderParams creates reorder params for the given criterion
func NewFieldsReorderParams(orderBy string) *FieldsReorderParams {
	return &FieldsReorderParams{OrderBy: orderBy}
}

// Check verifies the reorder request is well formed
func (p *FieldsReorderParams) Check() error {
	validOrderBy := map[string]bool{
		"label": true, "external_id": true, "created_at": true,
	}
	if !validOrderBy[p.OrderBy] {
		return &api.Error{Message: "order_by must be one of: label, external_id, created_at"}
	}
	return checkDirection(p.Direction)
}

// ToParams projects the request into its body form
func (p *FieldsReorderParams) ToParams() api.Params {
	params := api.Params{"order_by": p.OrderBy}
	if p.Direction != "" {
		params["direction"] = p.Direction
	}
	return params
}

// DataSourceReorderParams reorders the datasource entries of an enum or set field
type DataSourceReorderParams struct {
	OrderBy   string // value, external_id, created_at
	Direction string // asc, desc (optional)
}

// NewDataSourceReorderParams creates datasource reorder params for the given criterion
func NewDataSourceReorderParams(orderBy string) *DataSourceReorderParams {
	return &DataSourceReorderParams{OrderBy: orderBy}
}

// Check verifies the reorder request is well formed
func (p *DataSourceReorderParams) Check() error {
	validOrderBy := map[string]bool{
		"value": true, "external_id": true, "created_at": true,
	}
	if !validOrderBy[p.OrderBy] {
		return &api.Error{Message: "order_by must be one of: value, external_id, created_at"}
	}
	return checkDirection(p.Direction)
}

// ToParams projects the request into its body form
func (p *DataSourceReorderParams) ToParams() api.Params {
	params := api.Params{"order_by": p.OrderBy}
	if p.Direction != "" {
		params["direction"] = p.Direction
	}
	return params
}

// checkDirection accepts the empty direction and the two sort orders
func checkDirection(direction string) error {
	if direction != "" && direction != "asc" && direction != "desc" {
		return &api.Error{Message: "direction must be one of: asc, desc"}
	}
	return nil
}
