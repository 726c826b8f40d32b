package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/service"
	"github.com/MKhiriev/go-store-keeper/internal/store"
	"github.com/MKhiriev/go-store-keeper/internal/utils"
	"github.com/MKhiriev/go-store-keeper/internal/validators"
	"github.com/MKhiriev/go-store-keeper/models"
)

var errorStatusMap = map[error]int{
	ErrNoTokenProvided:                 http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	ErrInvalidJSON:                 http.StatusBadRequest,
	ErrInvalidGzipBody:             http.StatusBadRequest,
	validators.ErrValidation:       http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrUserAlreadyExists:   http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusBadRequest,
	store.ErrAlreadyExists:         http.StatusBadRequest,

	service.ErrCustomerNotFound: http.StatusNotFound,
	service.ErrOrderNotFound:    http.StatusNotFound,
	errRouteNotFound:            http.StatusNotFound,

	errMethodNotAllowed: http.StatusMethodNotAllowed,

	service.ErrDatabaseUnavailable: http.StatusServiceUnavailable,
}

// errorMessageMap holds the fixed client-facing messages. Errors outside
// the map are reported with their own text.
var errorMessageMap = map[error]string{
	ErrNoTokenProvided:                 "No token provided",
	service.ErrTokenIsExpiredOrInvalid: "Invalid token",
	service.ErrUserAlreadyExists:       "User already exists",
	service.ErrInvalidCredentials:      "Invalid credentials",
	service.ErrCustomerNotFound:        "Customer not found",
	service.ErrOrderNotFound:           "Order not found",
	errRouteNotFound:                   "Not found",
	errMethodNotAllowed:                "Method not allowed",
}

// statusFromError returns the status mapped to err, or fallback when err
// matches nothing in errorStatusMap.
func statusFromError(err error, fallback int) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return fallback
}

func errorMessage(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}

	if msg, ok := store.DatabaseMessage(err); ok {
		return msg
	}

	var validationErrors validators.ValidationErrors
	if errors.As(err, &validationErrors) {
		return validationErrors.Error()
	}

	return err.Error()
}

// writeError answers with {"error": message} and the status mapped to err.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback int) {
	log := logger.FromRequest(r)
	status := statusFromError(err, fallback)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, models.ErrorEnvelope{Error: errorMessage(err)}, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
