package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/service"
	"github.com/MKhiriev/go-store-keeper/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "bearer token", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "trailing words ignored", header: "Bearer tok extra", wantToken: "tok"},
		{name: "empty token is passed on", header: "Bearer ", wantToken: ""},
		{name: "empty header", header: "", wantErr: ErrNoTokenProvided},
		{name: "other scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrNoTokenProvided},
		{name: "lower-case scheme", header: "bearer tok", wantErr: ErrNoTokenProvided},
		{name: "scheme without space", header: "Bearer", wantErr: ErrNoTokenProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuth(t *testing.T) {
	h := &Handler{
		logger:   logger.Nop(),
		services: &service.Services{AuthService: acceptingAuthService()},
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
		wantNext   bool
	}{
		{name: "no header", wantStatus: http.StatusUnauthorized, wantError: "No token provided"},
		{name: "wrong scheme", header: "Token " + testToken, wantStatus: http.StatusUnauthorized, wantError: "No token provided"},
		{name: "bad token", header: "Bearer nope", wantStatus: http.StatusUnauthorized, wantError: "Invalid token"},
		{name: "valid token", header: "Bearer " + testToken, wantStatus: http.StatusOK, wantNext: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				claims, ok := utils.GetClaimsFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, testUserID.String(), claims.ID)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			h.auth(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeBody(t, rr)["error"])
			}
		})
	}
}
