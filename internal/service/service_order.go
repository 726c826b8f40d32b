package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/store"
	"github.com/MKhiriev/go-store-keeper/internal/utils"
	"github.com/MKhiriev/go-store-keeper/models"
	"github.com/google/uuid"
)

// orderService persists orders and resolves their customer reference on
// reads. The reference is never checked on writes and the total amount is
// stored as given.
type orderService struct {
	orderRepository    store.OrderRepository
	customerRepository store.CustomerRepository
	idGenerator        *utils.UUIDGenerator

	logger *logger.Logger
}

func NewOrderService(orderRepository store.OrderRepository, customerRepository store.CustomerRepository, logger *logger.Logger) OrderService {
	return &orderService{
		orderRepository:    orderRepository,
		customerRepository: customerRepository,
		idGenerator:        utils.NewUUIDGenerator(),
		logger:             logger,
	}
}

func (o *orderService) CreateOrder(ctx context.Context, input models.OrderInput) (models.Order, error) {
	order, err := input.ToOrder()
	if err != nil {
		return models.Order{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	order.ID = o.idGenerator.Generate()

	created, err := o.orderRepository.CreateOrder(ctx, order)
	if err != nil {
		return models.Order{}, fmt.Errorf("error creating order: %w", err)
	}

	return created, nil
}

// ListOrders returns one page of orders, newest first, with customers
// resolved.
func (o *orderService) ListOrders(ctx context.Context, page models.Pagination) ([]models.PopulatedOrder, int64, error) {
	orders, err := o.orderRepository.ListOrders(ctx, page)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing orders: %w", err)
	}

	total, err := o.orderRepository.CountOrders(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting orders: %w", err)
	}

	populated, err := o.populate(ctx, orders...)
	if err != nil {
		return nil, 0, err
	}

	return populated, total, nil
}

func (o *orderService) GetOrder(ctx context.Context, id string) (models.PopulatedOrder, error) {
	orderID, err := parseID(id)
	if err != nil {
		return models.PopulatedOrder{}, err
	}

	order, err := o.orderRepository.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.PopulatedOrder{}, ErrOrderNotFound
		}
		return models.PopulatedOrder{}, fmt.Errorf("error finding order: %w", err)
	}

	populated, err := o.populate(ctx, order)
	if err != nil {
		return models.PopulatedOrder{}, err
	}

	return populated[0], nil
}

func (o *orderService) UpdateOrder(ctx context.Context, id string, update models.OrderUpdate) (models.Order, error) {
	orderID, err := parseID(id)
	if err != nil {
		return models.Order{}, err
	}

	updated, err := o.orderRepository.UpdateOrder(ctx, orderID, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Order{}, ErrOrderNotFound
		}
		return models.Order{}, fmt.Errorf("error updating order: %w", err)
	}

	return updated, nil
}

func (o *orderService) DeleteOrder(ctx context.Context, id string) error {
	orderID, err := parseID(id)
	if err != nil {
		return err
	}

	if err = o.orderRepository.DeleteOrder(ctx, orderID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("error deleting order: %w", err)
	}

	return nil
}

// populate loads the referenced customers with one query and attaches them
// to the orders. A dangling reference leaves Customer nil.
func (o *orderService) populate(ctx context.Context, orders ...models.Order) ([]models.PopulatedOrder, error) {
	ids := make([]uuid.UUID, 0, len(orders))
	seen := make(map[uuid.UUID]struct{}, len(orders))
	for _, order := range orders {
		if _, ok := seen[order.CustomerID]; ok {
			continue
		}
		seen[order.CustomerID] = struct{}{}
		ids = append(ids, order.CustomerID)
	}

	customers, err := o.customerRepository.FindCustomersByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error resolving order customers: %w", err)
	}

	byID := make(map[uuid.UUID]models.Customer, len(customers))
	for _, customer := range customers {
		byID[customer.ID] = customer
	}

	populated := make([]models.PopulatedOrder, 0, len(orders))
	for _, order := range orders {
		p := models.PopulatedOrder{Order: order}
		if customer, ok := byID[order.CustomerID]; ok {
			p.Customer = &customer
		}
		populated = append(populated, p)
	}

	return populated, nil
}
