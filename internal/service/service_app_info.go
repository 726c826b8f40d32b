package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-store-keeper/internal/config"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/store"
)

type appInfoService struct {
	appVersion string
	pinger     store.Pinger

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, pinger store.Pinger, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		pinger:     pinger,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// CheckHealth pings the database. A service built without a pinger is
// always healthy.
func (s *appInfoService) CheckHealth(ctx context.Context) error {
	if s.pinger == nil {
		return nil
	}

	if err := s.pinger.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "appInfoService.CheckHealth").Msg("database ping failed")
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	return nil
}
