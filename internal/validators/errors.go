package validators

import (
	"errors"
	"strings"
)

var (
	// ErrValidation is matched by every [ValidationErrors] value.
	ErrValidation = errors.New("validation failed")

	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Messages attached to a [FieldError].
const (
	msgRequired      = "is required"
	msgNegative      = "must not be negative"
	msgInvalidStatus = "must be one of Pending, Completed, Cancelled"
	msgBlank         = "must not be empty"
)

// FieldError describes a single failed constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is the list of constraint violations found in one value.
// Entity names the validated record ("customer", "order", "item").
type ValidationErrors struct {
	Entity string
	Fields []FieldError
}

// Error renders the violations as "<entity> validation failed: f1: msg, f2: msg".
func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		parts = append(parts, f.String())
	}

	return v.Entity + " " + ErrValidation.Error() + ": " + strings.Join(parts, ", ")
}

// Is makes errors.Is(err, ErrValidation) hold.
func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// fieldErrors accumulates violations for one entity.
type fieldErrors struct {
	entity string
	fields []FieldError
}

func newFieldErrors(entity string) *fieldErrors {
	return &fieldErrors{entity: entity}
}

func (f *fieldErrors) add(field, message string) {
	f.fields = append(f.fields, FieldError{Field: field, Message: message})
}

// err returns nil when nothing was added.
func (f *fieldErrors) err() error {
	if len(f.fields) == 0 {
		return nil
	}

	return ValidationErrors{Entity: f.entity, Fields: f.fields}
}
