package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-store-keeper/internal/validators"
	"github.com/MKhiriev/go-store-keeper/models"
)

// OrderValidationService applies the order defaults and validates order
// writes before handing them to the wrapped OrderService.
type OrderValidationService struct {
	inner     OrderService
	validator validators.Validator
}

func NewOrderValidationService() OrderServiceWrapper {
	return &OrderValidationService{
		validator: validators.NewOrderValidator(),
	}
}

func (v *OrderValidationService) CreateOrder(ctx context.Context, input models.OrderInput) (models.Order, error) {
	input.Normalize()
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Order{}, fmt.Errorf("error during order validation before saving: %w", err)
	}

	return v.inner.CreateOrder(ctx, input)
}

func (v *OrderValidationService) ListOrders(ctx context.Context, page models.Pagination) ([]models.PopulatedOrder, int64, error) {
	return v.inner.ListOrders(ctx, page)
}

func (v *OrderValidationService) GetOrder(ctx context.Context, id string) (models.PopulatedOrder, error) {
	return v.inner.GetOrder(ctx, id)
}

func (v *OrderValidationService) UpdateOrder(ctx context.Context, id string, update models.OrderUpdate) (models.Order, error) {
	update.Normalize()
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Order{}, fmt.Errorf("error during order validation before updating: %w", err)
	}

	return v.inner.UpdateOrder(ctx, id, update)
}

func (v *OrderValidationService) DeleteOrder(ctx context.Context, id string) error {
	return v.inner.DeleteOrder(ctx, id)
}

func (v *OrderValidationService) Wrap(wrapped OrderService) OrderService {
	v.inner = wrapped
	return v
}
