package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-store-keeper/internal/config"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/service"
	"github.com/MKhiriev/go-store-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	allowedOrigins []string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		allowedOrigins: cfg.AllowedOrigins,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}

// logWrite records a successful write. On bearer-gated routes the entry
// names the acting user; public routes carry no claims.
func logWrite(r *http.Request, action, recordID string) {
	event := logger.FromRequest(r).Info().Str("record_id", recordID)
	if claims, ok := utils.GetClaimsFromContext(r.Context()); ok {
		event = event.Str("acting_user_id", claims.ID).Str("acting_user_email", claims.Email)
	}
	event.Msg(action)
}
