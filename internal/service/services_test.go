package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-store-keeper/internal/config"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/mock"
	"github.com/MKhiriev/go-store-keeper/internal/store"
	"github.com/MKhiriev/go-store-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{
		UserRepository:     mock.NewMockUserRepository(ctrl),
		CustomerRepository: mock.NewMockCustomerRepository(ctrl),
		OrderRepository:    mock.NewMockOrderRepository(ctrl),
	}
	cfg := &config.StructuredConfig{
		App: config.App{TokenSignKey: "secret", TokenDuration: time.Hour, Version: "1.0.0"},
	}

	services, err := NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, services.AuthService)
	assert.IsType(t, &CustomerValidationService{}, services.CustomerService)
	assert.IsType(t, &OrderValidationService{}, services.OrderService)
	assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(context.Background()))
	assert.NoError(t, services.AppInfoService.CheckHealth(context.Background()))

	// writes are validated before they reach the repositories
	_, err = services.CustomerService.CreateCustomer(context.Background(), models.Customer{})
	assert.Error(t, err)
}

func TestNewServices_NoVersion(t *testing.T) {
	_, err := NewServices(&store.Storages{}, &config.StructuredConfig{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
