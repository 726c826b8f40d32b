package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-store-keeper/models"
	"github.com/google/uuid"
)

// OrderValidator checks [models.OrderInput] and [models.OrderUpdate].
type OrderValidator struct {
}

// NewOrderValidator constructs a new OrderValidator
// and returns it as the Validator interface.
func NewOrderValidator() Validator {
	return &OrderValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms
// are accepted.
//
// A new order needs a customer reference, an order number and a total
// amount, and its status must be one of [models.OrderStatuses]. An update
// is checked only on the fields it carries. The referenced customer is not
// looked up.
func (v *OrderValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.OrderInput:
		return v.validateInput(value, fields...)
	case *models.OrderInput:
		return v.validateInput(*value, fields...)
	case models.OrderUpdate:
		return v.validateUpdate(value)
	case *models.OrderUpdate:
		return v.validateUpdate(*value)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *OrderValidator) validateInput(input models.OrderInput, fields ...string) error {
	errs := newFieldErrors("order")

	for _, field := range selectFields(fields, FieldCustomer, FieldOrderNumber, FieldTotalAmount, FieldStatus) {
		switch field {
		case FieldCustomer:
			if input.Customer == uuid.Nil {
				errs.add(FieldCustomer, msgRequired)
			}
		case FieldOrderNumber:
			if input.OrderNumber == "" {
				errs.add(FieldOrderNumber, msgRequired)
			}
		case FieldTotalAmount:
			if input.TotalAmount == nil {
				errs.add(FieldTotalAmount, msgRequired)
			}
		case FieldStatus:
			if !input.Status.IsValid() {
				errs.add(FieldStatus, msgInvalidStatus)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return errs.err()
}

func (v *OrderValidator) validateUpdate(update models.OrderUpdate) error {
	errs := newFieldErrors("order")

	if update.Customer != nil && *update.Customer == uuid.Nil {
		errs.add(FieldCustomer, msgBlank)
	}
	if update.OrderNumber != nil && *update.OrderNumber == "" {
		errs.add(FieldOrderNumber, msgBlank)
	}
	if update.Status != nil && !update.Status.IsValid() {
		errs.add(FieldStatus, msgInvalidStatus)
	}

	return errs.err()
}
