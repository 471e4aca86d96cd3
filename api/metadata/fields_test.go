package metadata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/luminamedia/lumina-go/api"
)

// colorSource is a well formed datasource reused across field tests
func colorSource() *DataSourceParams {
	return NewDataSourceParams(
		EntryParams{ExternalID: "color_red", Value: "Red"},
		EntryParams{ExternalID: "color_blue", Value: "Blue"},
	)
}

func TestFieldCreateParams_LabelRequired(t *testing.T) {
	tests := []struct {
		name   string
		params FieldParams
	}{
		{"integer", &IntegerFieldCreateParams{}},
		{"string", &StringFieldCreateParams{}},
		{"date", &DateFieldCreateParams{}},
		{"enum", &EnumFieldCreateParams{}},
		{"set", &SetFieldCreateParams{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Check()

			assert.Error(t, err)
			apiErr, ok := err.(*api.Error)
			assert.True(t, ok)
			assert.Contains(t, apiErr.Message, "label is required")
		})
	}
}

func TestFieldCreateParams_MandatoryRequiresDefault(t *testing.T) {
	tests := []struct {
		name   string
		params FieldParams
	}{
		{
			name: "integer",
			params: func() FieldParams {
				p := NewIntegerFieldCreateParams("Age")
				p.Mandatory = true
				return p
			}(),
		},
		{
			name: "string",
			params: func() FieldParams {
				p := NewStringFieldCreateParams("Title")
				p.Mandatory = true
				return p
			}(),
		},
		{
			name: "date",
			params: func() FieldParams {
				p := NewDateFieldCreateParams("Shot at")
				p.Mandatory = true
				return p
			}(),
		},
		{
			name: "enum",
			params: func() FieldParams {
				p := NewEnumFieldCreateParams("Color")
				p.Mandatory = true
				p.DataSource = colorSource()
				return p
			}(),
		},
		{
			name: "set with empty default list",
			params: func() FieldParams {
				p := NewSetFieldCreateParams("Tags")
				p.Mandatory = true
				p.DataSource = colorSource()
				p.DefaultValue = []string{}
				return p
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Check()

			assert.Error(t, err)
			assert.Contains(t, err.Error(), "default value is required for mandatory fields")
		})
	}
}

func TestFieldCreateParams_MandatoryWithDefault(t *testing.T) {
	shotAt := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		params FieldParams
	}{
		{
			name: "integer",
			params: func() FieldParams {
				p := NewIntegerFieldCreateParams("Age")
				p.Mandatory = true
				p.DefaultValue = intPtr(5)
				return p
			}(),
		},
		{
			name: "string",
			params: func() FieldParams {
				p := NewStringFieldCreateParams("Title")
				p.Mandatory = true
				p.DefaultValue = "Untitled"
				return p
			}(),
		},
		{
			name: "date",
			params: func() FieldParams {
				p := NewDateFieldCreateParams("Shot at")
				p.Mandatory = true
				p.DefaultValue = &shotAt
				return p
			}(),
		},
		{
			name: "enum",
			params: func() FieldParams {
				p := NewEnumFieldCreateParams("Color")
				p.Mandatory = true
				p.DefaultValue = "color_red"
				p.DataSource = colorSource()
				return p
			}(),
		},
		{
			name: "set",
			params: func() FieldParams {
				p := NewSetFieldCreateParams("Tags")
				p.Mandatory = true
				p.DefaultValue = []string{"color_red"}
				p.DataSource = colorSource()
				return p
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, tt.params.Check())
		})
	}
}

func TestScalarFields_RejectDataSource(t *testing.T) {
	tests := []struct {
		name   string
		params FieldParams
	}{
		{
			name: "integer create",
			params: func() FieldParams {
				p := NewIntegerFieldCreateParams("Age")
				p.DataSource = colorSource()
				return p
			}(),
		},
		{
			name: "string create",
			params: func() FieldParams {
				p := NewStringFieldCreateParams("Title")
				p.DataSource = colorSource()
				return p
			}(),
		},
		{
			name: "date create",
			params: func() FieldParams {
				p := NewDateFieldCreateParams("Shot at")
				p.DataSource = colorSource()
				return p
			}(),
		},
		{
			name: "integer update",
			params: func() FieldParams {
				p := NewIntegerFieldUpdateParams()
				p.DataSource = colorSource()
				return p
			}(),
		},
		{
			name: "string update",
			params: func() FieldParams {
				p := NewStringFieldUpdateParams()
				p.DataSource = colorSource()
				return p
			}(),
		},
		{
			name: "date update",
			params: func() FieldParams {
				p := NewDateFieldUpdateParams()
				p.DataSource = colorSource()
				return p
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Check()

			assert.Error(t, err)
			assert.Contains(t, err.Error(), "datasource is not supported")
		})
	}
}

func TestEnumeratedFields_DataSourceRules(t *testing.T) {
	tests := []struct {
		name          string
		params        FieldParams
		expectError   bool
		errorContains string
	}{
		{
			name:          "enum create without datasource",
			params:        NewEnumFieldCreateParams("Color"),
			expectError:   true,
			errorContains: "datasource is required",
		},
		{
			name:          "set create without datasource",
			params:        NewSetFieldCreateParams("Tags"),
			expectError:   true,
			errorContains: "datasource is required",
		},
		{
			name: "enum create with empty datasource",
			params: func() FieldParams {
				p := NewEnumFieldCreateParams("Color")
				p.DataSource = &DataSourceParams{}
				return p
			}(),
			expectError:   true,
			errorContains: "at least one entry",
		},
		{
			name: "set create with empty datasource",
			params: func() FieldParams {
				p := NewSetFieldCreateParams("Tags")
				p.DataSource = &DataSourceParams{}
				return p
			}(),
			expectError:   true,
			errorContains: "at least one entry",
		},
		{
			name:        "enum update without datasource",
			params:      NewEnumFieldUpdateParams(),
			expectError: false,
		},
		{
			name:        "set update without datasource",
			params:      NewSetFieldUpdateParams(),
			expectError: false,
		},
		{
			name: "enum update with empty datasource",
			params: func() FieldParams {
				p := NewEnumFieldUpdateParams()
				p.DataSource = &DataSourceParams{}
				return p
			}(),
			expectError:   true,
			errorContains: "at least one entry",
		},
		{
			name: "set update with valid datasource",
			params: func() FieldParams {
				p := NewSetFieldUpdateParams()
				p.DataSource = colorSource()
				return p
			}(),
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Check()

			if tt.expectError {
				assert.Error(t, err)
				apiErr, ok := err.(*api.Error)
				assert.True(t, ok)
				assert.Contains(t, apiErr.Message, tt.errorContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFieldParams_AllowedValidationTypes(t *testing.T) {
	strlen := &StringLengthParams{Min: intPtr(0), Max: intPtr(10)}
	greater := NewIntGreaterThanParams(0, false)
	dateLess := NewDateLessThanParams(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), false)
	and := NewAndValidationParams(greater)

	tests := []struct {
		name          string
		params        FieldParams
		expectError   bool
		errorContains string
	}{
		{
			name: "integer accepts greater_than",
			params: func() FieldParams {
				p := NewIntegerFieldCreateParams("Age")
				p.Validation = greater
				return p
			}(),
		},
		{
			name: "integer accepts and",
			params: func() FieldParams {
				p := NewIntegerFieldCreateParams("Age")
				p.Validation = and
				return p
			}(),
		},
		{
			name: "integer rejects strlen",
			params: func() FieldParams {
				p := NewIntegerFieldCreateParams("Age")
				p.Validation = strlen
				return p
			}(),
			expectError:   true,
			errorContains: `validation type "strlen" is not allowed`,
		},
		{
			name: "string accepts strlen",
			params: func() FieldParams {
				p := NewStringFieldCreateParams("Title")
				p.Validation = strlen
				return p
			}(),
		},
		{
			name: "string rejects greater_than",
			params: func() FieldParams {
				p := NewStringFieldCreateParams("Title")
				p.Validation = greater
				return p
			}(),
			expectError:   true,
			errorContains: `validation type "greater_than" is not allowed`,
		},
		{
			name: "date accepts less_than",
			params: func() FieldParams {
				p := NewDateFieldCreateParams("Shot at")
				p.Validation = dateLess
				return p
			}(),
		},
		{
			name: "enum rejects any validation",
			params: func() FieldParams {
				p := NewEnumFieldCreateParams("Color")
				p.DataSource = colorSource()
				p.Validation = and
				return p
			}(),
			expectError:   true,
			errorContains: "not supported for enum and set fields",
		},
		{
			name: "set rejects any validation",
			params: func() FieldParams {
				p := NewSetFieldUpdateParams()
				p.Validation = strlen
				return p
			}(),
			expectError:   true,
			errorContains: "not supported for enum and set fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Check()

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFieldParams_CascadesIntoValidationRule(t *testing.T) {
	p := NewIntegerFieldCreateParams("Age")
	p.Validation = &IntComparisonParams{Type: api.ValidationTypeGreaterThan}

	err := p.Check()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires a value")
}

func TestFieldUpdateParams_RelaxedRules(t *testing.T) {
	t.Run("no label and no default value", func(t *testing.T) {
		assert.NoError(t, NewIntegerFieldUpdateParams().Check())
		assert.NoError(t, NewStringFieldUpdateParams().Check())
		assert.NoError(t, NewDateFieldUpdateParams().Check())
	})

	t.Run("mandatory without default value", func(t *testing.T) {
		p := NewStringFieldUpdateParams()
		p.Mandatory = true

		assert.NoError(t, p.Check())
	})
}
