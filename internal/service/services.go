package service

import (
	"fmt"

	"github.com/MKhiriev/go-store-keeper/internal/config"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/store"
)

type Services struct {
	AuthService     AuthService
	CustomerService CustomerService
	OrderService    OrderService
	AppInfoService  AppInfoService
}

// NewServices builds every service on top of storages. Customer and order
// writes go through the validation decorators first.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	var pinger store.Pinger
	if storages.DB != nil {
		pinger = storages.DB
	}

	appInfoService, err := NewAppInfoService(cfg.App, pinger, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	customerService := NewCustomerValidationService().
		Wrap(NewCustomerService(storages.CustomerRepository, logger))
	orderService := NewOrderValidationService().
		Wrap(NewOrderService(storages.OrderRepository, storages.CustomerRepository, logger))

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		CustomerService: customerService,
		OrderService:    orderService,
		AppInfoService:  appInfoService,
	}, nil
}
