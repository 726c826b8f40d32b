package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-store-keeper/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestGetServerVersion(t *testing.T) {
	router := newTestRouter(&service.Services{AppInfoService: &stubAppInfoService{version: "v1.2.3-beta"}})

	rr := doRequest(t, router, http.MethodGet, "/api/version", nil, "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"version":"v1.2.3-beta"}}`, rr.Body.String())
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "healthy", wantStatus: http.StatusOK},
		{name: "database down", err: fmt.Errorf("%w: %w", service.ErrDatabaseUnavailable, errors.New("refused")), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&service.Services{AppInfoService: &stubAppInfoService{version: "v", healthErr: tt.err}})

			rr := doRequest(t, router, http.MethodGet, "/api/health", nil, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.err == nil {
				assert.JSONEq(t, `{"data":"ok"}`, rr.Body.String())
			}
		})
	}
}
