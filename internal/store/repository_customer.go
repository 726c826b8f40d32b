package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/models"
	"github.com/google/uuid"
)

// customerRepository is the PostgreSQL-backed implementation of
// [CustomerRepository] working on the "customers" table.
type customerRepository struct {
	*DB
	logger *logger.Logger
}

// NewCustomerRepository constructs a [CustomerRepository] backed by db.
func NewCustomerRepository(db *DB, logger *logger.Logger) CustomerRepository {
	logger.Debug().Msg("creating customer repository")
	return &customerRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (models.Customer, error) {
	var c models.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt)
	return c, err
}

func (c *customerRepository) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	log := logger.FromContext(ctx)

	row := c.DB.QueryRowContext(ctx, createCustomer,
		customer.ID,
		customer.Name,
		customer.Email,
		customer.Phone,
		customer.Address,
	)

	created, err := scanCustomer(row)
	if err != nil {
		log.Err(err).
			Str("func", "customerRepository.CreateCustomer").
			Str("email", customer.Email).
			Msg("failed to insert customer")
		return models.Customer{}, classifyError(err, ErrExecutingQuery)
	}

	return created, nil
}

func (c *customerRepository) ListCustomers(ctx context.Context, page models.Pagination) ([]models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCustomersQuery(page)
	if err != nil {
		log.Err(err).Str("func", "customerRepository.ListCustomers").Msg("failed to create query")
		return nil, err
	}

	return c.queryCustomers(ctx, "customerRepository.ListCustomers", query, args...)
}

func (c *customerRepository) CountCustomers(ctx context.Context) (int64, error) {
	var total int64
	if err := c.DB.QueryRowContext(ctx, countCustomers).Scan(&total); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "customerRepository.CountCustomers").
			Msg("failed to count customers")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

func (c *customerRepository) FindCustomerByID(ctx context.Context, id uuid.UUID) (models.Customer, error) {
	customer, err := scanCustomer(c.DB.QueryRowContext(ctx, findCustomerByID, id))
	if err != nil {
		err = classifyError(err, ErrExecutingQuery)
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).
				Str("func", "customerRepository.FindCustomerByID").
				Stringer("id", id).
				Msg("failed to find customer")
		}
		return models.Customer{}, err
	}

	return customer, nil
}

// FindCustomersByIDs returns an empty slice without querying when ids is empty.
func (c *customerRepository) FindCustomersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Customer, error) {
	if len(ids) == 0 {
		return []models.Customer{}, nil
	}

	query, args, err := buildFindCustomersByIDsQuery(ids)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "customerRepository.FindCustomersByIDs").Msg("failed to create query")
		return nil, err
	}

	return c.queryCustomers(ctx, "customerRepository.FindCustomersByIDs", query, args...)
}

// UpdateCustomer with an empty update only reads the record back.
func (c *customerRepository) UpdateCustomer(ctx context.Context, id uuid.UUID, update models.CustomerUpdate) (models.Customer, error) {
	if update.IsEmpty() {
		return c.FindCustomerByID(ctx, id)
	}

	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCustomerQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "customerRepository.UpdateCustomer").Msg("failed to create query")
		return models.Customer{}, err
	}

	updated, err := scanCustomer(c.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		err = classifyError(err, ErrExecutingQuery)
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).
				Str("func", "customerRepository.UpdateCustomer").
				Stringer("id", id).
				Msg("failed to update customer")
		}
		return models.Customer{}, err
	}

	return updated, nil
}

func (c *customerRepository) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	result, err := c.DB.ExecContext(ctx, deleteCustomer, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "customerRepository.DeleteCustomer").
			Stringer("id", id).
			Msg("failed to delete customer")
		return classifyError(err, ErrExecutingQuery)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (c *customerRepository) queryCustomers(ctx context.Context, funcName, query string, args ...any) ([]models.Customer, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, classifyError(err, ErrExecutingQuery)
	}
	defer rows.Close()

	customers := make([]models.Customer, 0, 10)
	for rows.Next() {
		customer, scanErr := scanCustomer(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan customer row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, classifyError(err, ErrScanningRows)
	}

	return customers, nil
}
