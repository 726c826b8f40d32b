package service

import (
	"context"

	"github.com/MKhiriev/go-store-keeper/models"
)

// AuthService registers users, checks their credentials and issues and
// verifies access tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CustomerService manages customers. Identifiers are accepted in their
// textual form and parsed by the service.
type CustomerService interface {
	CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error)
	ListCustomers(ctx context.Context, page models.Pagination) ([]models.Customer, int64, error)
	GetCustomer(ctx context.Context, id string) (models.Customer, error)

	// UpdateCustomer returns a nil customer and a nil error when no customer
	// has the id.
	UpdateCustomer(ctx context.Context, id string, update models.CustomerUpdate) (*models.Customer, error)

	// DeleteCustomer succeeds whether or not a customer had the id.
	DeleteCustomer(ctx context.Context, id string) error
}

// OrderService manages orders. Reads return orders with their customer
// resolved.
type OrderService interface {
	CreateOrder(ctx context.Context, input models.OrderInput) (models.Order, error)
	ListOrders(ctx context.Context, page models.Pagination) ([]models.PopulatedOrder, int64, error)
	GetOrder(ctx context.Context, id string) (models.PopulatedOrder, error)
	UpdateOrder(ctx context.Context, id string, update models.OrderUpdate) (models.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

// AppInfoService reports the running version and whether the database is
// reachable.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	CheckHealth(ctx context.Context) error
}

// CustomerServiceWrapper defines middleware composition for CustomerService.
// Implementations wrap an existing CustomerService to add behavior such as
// normalizing or validating.
type CustomerServiceWrapper interface {
	Wrap(CustomerService) CustomerService // returns a decorated CustomerService applying additional behavior
}

// OrderServiceWrapper defines middleware composition for OrderService.
type OrderServiceWrapper interface {
	Wrap(OrderService) OrderService
}
