// Package store implements the persistence layer on top of PostgreSQL.
//
// Repositories accept and return values from the models package, translate
// driver errors into the sentinels of errors.go and never hold state between
// calls other than the shared connection pool.
package store

import (
	"context"

	"github.com/MKhiriev/go-store-keeper/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists the accounts used for authentication.
type UserRepository interface {
	// CreateUser inserts user and returns it with server-assigned fields.
	// A duplicate email yields [ErrAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given (normalized) email or
	// [ErrNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// CustomerRepository persists customers.
type CustomerRepository interface {
	// CreateCustomer inserts customer. A duplicate name or email yields
	// [ErrAlreadyExists].
	CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error)

	// ListCustomers returns one page of customers in insertion order.
	ListCustomers(ctx context.Context, page models.Pagination) ([]models.Customer, error)

	// CountCustomers returns the number of all customers.
	CountCustomers(ctx context.Context) (int64, error)

	// FindCustomerByID returns the customer or [ErrNotFound].
	FindCustomerByID(ctx context.Context, id uuid.UUID) (models.Customer, error)

	// FindCustomersByIDs returns the customers whose ids are in ids.
	// Missing ids are silently skipped; the order of the result is unspecified.
	FindCustomersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Customer, error)

	// UpdateCustomer writes the non-nil fields of update and returns the
	// updated record, or [ErrNotFound] if no customer has the id.
	UpdateCustomer(ctx context.Context, id uuid.UUID, update models.CustomerUpdate) (models.Customer, error)

	// DeleteCustomer removes the customer, or returns [ErrNotFound] if no
	// row matched.
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
}

// OrderRepository persists orders.
type OrderRepository interface {
	// CreateOrder inserts order. A duplicate order number yields
	// [ErrAlreadyExists].
	CreateOrder(ctx context.Context, order models.Order) (models.Order, error)

	// ListOrders returns one page of orders, newest first.
	ListOrders(ctx context.Context, page models.Pagination) ([]models.Order, error)

	// CountOrders returns the number of all orders.
	CountOrders(ctx context.Context) (int64, error)

	// FindOrderByID returns the order or [ErrNotFound].
	FindOrderByID(ctx context.Context, id uuid.UUID) (models.Order, error)

	// UpdateOrder writes the non-nil fields of update, bumps updated_at and
	// returns the updated record, or [ErrNotFound].
	UpdateOrder(ctx context.Context, id uuid.UUID, update models.OrderUpdate) (models.Order, error)

	// DeleteOrder removes the order, or returns [ErrNotFound] if no row matched.
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}
