// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the Go client of the go-store-keeper REST API.
//
// [StoreAPI] hides the transport. Non-2xx answers are mapped by
// mapHTTPError to the sentinel errors of errors.go, so callers can use
// [errors.Is] (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-store-keeper/models"
)

// StoreAPI defines the calls the command-line client makes to the server.
type StoreAPI interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Register creates an account. It does not log in.
	Register(ctx context.Context, credentials models.Credentials) (models.UserInfo, error)

	// Login authenticates and stores the returned token via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResult, error)

	CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error)
	ListCustomers(ctx context.Context, page models.Pagination) ([]models.Customer, models.ListMeta, error)
	GetCustomer(ctx context.Context, id string) (models.Customer, error)

	// UpdateCustomer returns nil when the server found no customer to update.
	UpdateCustomer(ctx context.Context, id string, update models.CustomerUpdate) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error

	CreateOrder(ctx context.Context, input models.OrderInput) (models.Order, error)
	ListOrders(ctx context.Context, page models.Pagination) ([]models.PopulatedOrder, models.ListMeta, error)
	GetOrder(ctx context.Context, id string) (models.PopulatedOrder, error)
	UpdateOrder(ctx context.Context, id string, update models.OrderUpdate) (models.Order, error)
	DeleteOrder(ctx context.Context, id string) error

	// Version returns the server version.
	Version(ctx context.Context) (string, error)
}
