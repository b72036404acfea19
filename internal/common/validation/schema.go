// internal/common/validation/schema.go
package validation

import (
	"github.com/xeipuuv/gojsonschema"
)

// Result reports the outcome of a payload validation.
type Result struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidatePayload validates a decoded JSON payload against a schema
// expressed as a Go map.
func ValidatePayload(payload, schema map[string]interface{}) (*Result, error) {
	schemaLoader := gojsonschema.NewGoLoader(schema)
	documentLoader := gojsonschema.NewGoLoader(payload)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, err
	}

	out := &Result{Valid: result.Valid()}
	for _, e := range result.Errors() {
		out.Errors = append(out.Errors, FieldError{
			Field:   e.Field(),
			Message: e.Description(),
		})
	}
	return out, nil
}
