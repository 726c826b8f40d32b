package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-store-keeper/internal/validators"
	"github.com/MKhiriev/go-store-keeper/models"
)

// CustomerValidationService normalizes and validates customer writes
// before handing them to the wrapped CustomerService. Reads pass through.
type CustomerValidationService struct {
	inner     CustomerService
	validator validators.Validator
}

func NewCustomerValidationService() CustomerServiceWrapper {
	return &CustomerValidationService{
		validator: validators.NewCustomerValidator(),
	}
}

func (v *CustomerValidationService) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	customer.Normalize()
	if err := v.validator.Validate(ctx, customer); err != nil {
		return models.Customer{}, fmt.Errorf("error during customer validation before saving: %w", err)
	}

	return v.inner.CreateCustomer(ctx, customer)
}

func (v *CustomerValidationService) ListCustomers(ctx context.Context, page models.Pagination) ([]models.Customer, int64, error) {
	return v.inner.ListCustomers(ctx, page)
}

func (v *CustomerValidationService) GetCustomer(ctx context.Context, id string) (models.Customer, error) {
	return v.inner.GetCustomer(ctx, id)
}

func (v *CustomerValidationService) UpdateCustomer(ctx context.Context, id string, update models.CustomerUpdate) (*models.Customer, error) {
	update.Normalize()
	if err := v.validator.Validate(ctx, update); err != nil {
		return nil, fmt.Errorf("error during customer validation before updating: %w", err)
	}

	return v.inner.UpdateCustomer(ctx, id, update)
}

func (v *CustomerValidationService) DeleteCustomer(ctx context.Context, id string) error {
	return v.inner.DeleteCustomer(ctx, id)
}

func (v *CustomerValidationService) Wrap(wrapped CustomerService) CustomerService {
	v.inner = wrapped
	return v
}
