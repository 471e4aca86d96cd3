package metadata

import "github.com/luminamedia/lumina-go/api"

// EntryParams is a single allowed value of an enum or set field datasource.
// The external id is optional; the server assigns one when absent.
type EntryParams struct {
	ExternalID string
	Value      string
}

// Check verifies the entry carries a value
func (e *EntryParams) Check() error {
	if e.Value == "" {
		return &api.Error{Message: "datasource entry value is required"}
	}
	return nil
}

// ToParams projects the entry into its body form
func (e *EntryParams) ToParams() api.Params {
	params := api.Params{"value": e.Value}
	if e.ExternalID != "" {
		params["external_id"] = e.ExternalID
	}
	return params
}

// DataSourceParams is the ordered list of allowed values for an enum or set field
type DataSourceParams struct {
	Values []EntryParams
}

// NewDataSourceParams creates a datasource over the given entries
func NewDataSourceParams(values ...EntryParams) *DataSourceParams {
	return &DataSourceParams{Values: values}
}

// Check verifies the datasource holds at least one entry and every entry is valid
func (d *DataSourceParams) Check() error {
	if len(d.Values) == 0 {
		return &api.Error{Message: "datasource requires at least one entry"}
	}
	for i := range d.Values {
		if err := d.Values[i].Check(); err != nil {
			return err
		}
	}
	return nil
}

// ToParams projects the datasource into its body form, preserving entry order
func (d *DataSourceParams) ToParams() api.Params {
	values := make([]api.Params, 0, len(d.Values))
	for i := range d.Values {
		values = append(values, d.Values[i].ToParams())
	}
	return api.Params{"values": values}
}

// DataSourceEntriesParams addresses datasource entries by external id.
// The same body serves the delete-entries and restore-entries calls.
type DataSourceEntriesParams struct {
	ExternalIDs []string
}

// NewDataSourceEntriesParams creates an entries request over the given external ids
func NewDataSourceEntriesParams(externalIDs ...string) *DataSourceEntriesParams {
	return &DataSourceEntriesParams{ExternalIDs: externalIDs}
}

// Check verifies at least one external id is addressed
func (d *DataSourceEntriesParams) Check() error {
	if len(d.ExternalIDs) == 0 {
		return &api.Error{Message: "external_ids requires at least one entry"}
	}
	return nil
}

// ToParams projects the request into its body form
func (d *DataSourceEntriesParams) ToParams() api.Params {
	return api.Params{"external_ids": d.ExternalIDs}
}
