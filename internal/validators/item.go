package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-store-keeper/models"
)

// ItemValidator checks [models.Item].
type ItemValidator struct {
}

// NewItemValidator constructs a new ItemValidator
// and returns it as the Validator interface.
func NewItemValidator() Validator {
	return &ItemValidator{}
}

// Validate requires a name and a non-negative price.
func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Item:
		return v.validateItem(value, fields...)
	case *models.Item:
		return v.validateItem(*value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *ItemValidator) validateItem(item models.Item, fields ...string) error {
	errs := newFieldErrors("item")

	for _, field := range selectFields(fields, FieldName, FieldPrice) {
		switch field {
		case FieldName:
			if item.Name == "" {
				errs.add(FieldName, msgRequired)
			}
		case FieldPrice:
			switch {
			case item.Price == nil:
				errs.add(FieldPrice, msgRequired)
			case *item.Price < 0:
				errs.add(FieldPrice, msgNegative)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return errs.err()
}
