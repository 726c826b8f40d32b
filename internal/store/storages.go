package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-store-keeper/internal/config"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
)

// Storages groups the repositories handed to the service layer together
// with the connection pool they share.
type Storages struct {
	UserRepository     UserRepository
	CustomerRepository CustomerRepository
	OrderRepository    OrderRepository

	DB *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations and builds
// every repository on the resulting pool. The caller owns the pool and must
// call [Storages.Close] on shutdown.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return newStoragesFromDB(db, logger), nil
}

func newStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		CustomerRepository: NewCustomerRepository(db, logger),
		OrderRepository:    NewOrderRepository(db, logger),
		DB:                 db,
	}
}

// Close releases the shared connection pool.
func (s *Storages) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
