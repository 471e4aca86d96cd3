package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name     string
		value    time.Time
		expected string
	}{
		{
			name:     "plain date",
			value:    time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			expected: "2024-03-05",
		},
		{
			name:     "time component is dropped",
			value:    time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
			expected: "2024-12-31",
		},
		{
			name:     "single digit month and day are zero padded",
			value:    time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
			expected: "2025-01-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDate(tt.value))
		})
	}
}

func TestError(t *testing.T) {
	err := &Error{Message: "label is required"}
	assert.Equal(t, "label is required", err.Error())
}

func TestParamsMarshalSortsKeys(t *testing.T) {
	params := Params{
		"type":      "integer",
		"label":     "Age",
		"mandatory": false,
	}

	body, err := json.Marshal(params)
	assert.NoError(t, err)
	assert.Equal(t, `{"label":"Age","mandatory":false,"type":"integer"}`, string(body))
}

func TestParamsMarshalNested(t *testing.T) {
	params := Params{
		"validation": Params{"type": "greater_than", "equals": false, "value": 0},
		"type":       "integer",
	}

	body, err := json.Marshal(params)
	assert.NoError(t, err)
	assert.Equal(t, `{"type":"integer","validation":{"equals":false,"type":"greater_than","value":0}}`, string(body))
}
