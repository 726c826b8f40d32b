package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-store-keeper/models"
)

// CustomerValidator checks [models.Customer] and [models.CustomerUpdate].
type CustomerValidator struct {
}

// NewCustomerValidator constructs a new CustomerValidator
// and returns it as the Validator interface.
func NewCustomerValidator() Validator {
	return &CustomerValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms
// are accepted.
//
// For a new customer, name, email and phone are required. For an update,
// a present name, email or phone must not be blank.
func (v *CustomerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Customer:
		return v.validateCustomer(value, fields...)
	case *models.Customer:
		return v.validateCustomer(*value, fields...)
	case models.CustomerUpdate:
		return v.validateUpdate(value)
	case *models.CustomerUpdate:
		return v.validateUpdate(*value)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *CustomerValidator) validateCustomer(customer models.Customer, fields ...string) error {
	errs := newFieldErrors("customer")

	for _, field := range selectFields(fields, FieldName, FieldEmail, FieldPhone) {
		switch field {
		case FieldName:
			if customer.Name == "" {
				errs.add(FieldName, msgRequired)
			}
		case FieldEmail:
			if customer.Email == "" {
				errs.add(FieldEmail, msgRequired)
			}
		case FieldPhone:
			if customer.Phone == "" {
				errs.add(FieldPhone, msgRequired)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return errs.err()
}

func (v *CustomerValidator) validateUpdate(update models.CustomerUpdate) error {
	errs := newFieldErrors("customer")

	if update.Name != nil && *update.Name == "" {
		errs.add(FieldName, msgBlank)
	}
	if update.Email != nil && *update.Email == "" {
		errs.add(FieldEmail, msgBlank)
	}
	if update.Phone != nil && *update.Phone == "" {
		errs.add(FieldPhone, msgBlank)
	}

	return errs.err()
}
