// Package api holds the shared wire-level types of the Lumina admin API:
// the normalized request body shape, the field and validation type tags,
// and the invalid-parameters error raised by request model checks.
package api

import "time"

// Params is the normalized request body handed to the transport layer.
// Values are JSON-serializable primitives, lists, or nested Params.
// encoding/json marshals map keys in lexicographic order, so a serialized
// body always carries sorted keys.
type Params map[string]interface{}

// DateFormat is the wire format for calendar dates (invariant, no time component)
const DateFormat = "2006-01-02"

// FormatDate renders t as a wire calendar date
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// Error represents an invalid-parameters error raised by Check.
// Callers must fix the input and rebuild the request; there is no recovery path.
type Error struct {
	Message string `json:"message"`
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// FieldType represents the kind of a structured metadata field
type FieldType string

const (
	FieldTypeInteger FieldType = "integer"
	FieldTypeString  FieldType = "string"
	FieldTypeDate    FieldType = "date"
	FieldTypeEnum    FieldType = "enum"
	FieldTypeSet     FieldType = "set"
)

// ValidationType represents the kind of a field validation rule
type ValidationType string

const (
	ValidationTypeGreaterThan  ValidationType = "greater_than"
	ValidationTypeLessThan     ValidationType = "less_than"
	ValidationTypeStringLength ValidationType = "strlen"
	ValidationTypeAnd          ValidationType = "and"
)
