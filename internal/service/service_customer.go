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

// customerService persists customers as given. Normalization and
// validation are applied by customerValidationService in front of it.
type customerService struct {
	customerRepository store.CustomerRepository
	idGenerator        *utils.UUIDGenerator

	logger *logger.Logger
}

func NewCustomerService(customerRepository store.CustomerRepository, logger *logger.Logger) CustomerService {
	return &customerService{
		customerRepository: customerRepository,
		idGenerator:        utils.NewUUIDGenerator(),
		logger:             logger,
	}
}

// CreateCustomer assigns a new id, ignoring any id sent by the client.
func (c *customerService) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	customer.ID = c.idGenerator.Generate()

	created, err := c.customerRepository.CreateCustomer(ctx, customer)
	if err != nil {
		return models.Customer{}, fmt.Errorf("error creating customer: %w", err)
	}

	return created, nil
}

func (c *customerService) ListCustomers(ctx context.Context, page models.Pagination) ([]models.Customer, int64, error) {
	customers, err := c.customerRepository.ListCustomers(ctx, page)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing customers: %w", err)
	}

	total, err := c.customerRepository.CountCustomers(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting customers: %w", err)
	}

	return customers, total, nil
}

func (c *customerService) GetCustomer(ctx context.Context, id string) (models.Customer, error) {
	customerID, err := parseID(id)
	if err != nil {
		return models.Customer{}, err
	}

	customer, err := c.customerRepository.FindCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Customer{}, ErrCustomerNotFound
		}
		return models.Customer{}, fmt.Errorf("error finding customer: %w", err)
	}

	return customer, nil
}

func (c *customerService) UpdateCustomer(ctx context.Context, id string, update models.CustomerUpdate) (*models.Customer, error) {
	customerID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	updated, err := c.customerRepository.UpdateCustomer(ctx, customerID, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			logger.FromContext(ctx).Debug().Str("id", id).Msg("no customer to update")
			return nil, nil
		}
		return nil, fmt.Errorf("error updating customer: %w", err)
	}

	return &updated, nil
}

func (c *customerService) DeleteCustomer(ctx context.Context, id string) error {
	customerID, err := parseID(id)
	if err != nil {
		return err
	}

	err = c.customerRepository.DeleteCustomer(ctx, customerID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("error deleting customer: %w", err)
	}

	return nil
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w %q: %w", ErrInvalidID, id, err)
	}

	return parsed, nil
}
