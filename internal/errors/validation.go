package errors

import (
	"fmt"
	"strings"
)

// MetaValidationErrors holds the per-field problems of a validation error
// as map[string][]string
const MetaValidationErrors = "validation_errors"

// ValidationBuilder accumulates field problems. Build returns nil when there
// are none, or one InvalidArgument error listing them in the order they
// were added.
type ValidationBuilder struct {
	order  []string
	fields map[string][]string
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{
		fields: make(map[string][]string),
	}
}

func (vb *ValidationBuilder) add(field, message string) *ValidationBuilder {
	if _, seen := vb.fields[field]; !seen {
		vb.order = append(vb.order, field)
	}
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// RequiredField records a missing field
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.add(field, "is required")
}

// InvalidField records a field with an unusable value
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.add(field, "is invalid: "+reason)
}

// Build returns the error if there are validation errors, nil otherwise
func (vb *ValidationBuilder) Build() error {
	if len(vb.order) == 0 {
		return nil
	}

	parts := make([]string, len(vb.order))
	for i, field := range vb.order {
		parts[i] = fmt.Sprintf("%s: %s", field, strings.Join(vb.fields[field], ", "))
	}

	return InvalidArgument("validation failed: "+strings.Join(parts, "; ")).
		WithMeta(MetaValidationErrors, vb.fields)
}

// ValidateRequired records field as missing when value is blank
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateEnum records field when value is not one of allowed
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	vb.add(field, "must be one of: "+strings.Join(allowed, ", "))
}
