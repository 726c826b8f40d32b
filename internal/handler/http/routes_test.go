package http

import (
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-store-keeper/internal/config"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/service"
	"github.com/MKhiriev/go-store-keeper/internal/store"
	"github.com/MKhiriev/go-store-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresConfig(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, config.Server{AllowedOrigins: []string{"http://a"}, RequestTimeout: time.Second}, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, []string{"http://a"}, h.allowedOrigins)
	assert.Equal(t, time.Second, h.requestTimeout)
}

// ─────────────────────────────────────────────
// Init
// ─────────────────────────────────────────────

func TestInit_UnknownRoute(t *testing.T) {
	router := newTestRouter(&service.Services{})

	rr := doRequest(t, router, http.MethodGet, "/api/unknown", nil, "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rr.Body.String())
}

func TestInit_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(&service.Services{})

	rr := doRequest(t, router, http.MethodPatch, "/api/orders/123", nil, "")

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, rr.Body.String())
}

func TestInit_EveryResponseHasTraceID(t *testing.T) {
	router := newTestRouter(&service.Services{})

	for _, path := range []string{"/api/version", "/api/unknown", "/api/customers"} {
		rr := doRequest(t, router, http.MethodGet, path, nil, "")
		assert.NotEmpty(t, rr.Header().Get(traceIDHeader), path)
	}
}

func TestInit_CORSPreflight(t *testing.T) {
	router := newTestRouter(&service.Services{})

	req := httptest.NewRequest(http.MethodOptions, "/api/customers", nil)
	req.Header.Set("Origin", "http://shop.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestInit_CompressesWhenAccepted(t *testing.T) {
	router := newTestRouter(&service.Services{AppInfoService: &stubAppInfoService{version: "1.2.3"}})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	raw, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"version":"1.2.3"}}`, string(raw))
}

// ─────────────────────────────────────────────
// register → login → protected route
// ─────────────────────────────────────────────

type memoryUsers struct {
	mu    sync.Mutex
	users map[string]models.User
}

func (m *memoryUsers) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.Email]; ok {
		return models.User{}, store.ErrAlreadyExists
	}
	user.CreatedAt = time.Now()
	m.users[user.Email] = user
	return user, nil
}

func (m *memoryUsers) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[email]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return user, nil
}

func TestRegisterLoginAndAccessCustomers(t *testing.T) {
	auth := service.NewAuthService(&memoryUsers{users: map[string]models.User{}}, config.App{
		TokenSignKey:  "scenario-key",
		TokenDuration: time.Hour,
	}, logger.Nop())
	customers := &stubCustomerService{
		listCustomers: func(context.Context, models.Pagination) ([]models.Customer, int64, error) {
			return []models.Customer{}, 0, nil
		},
	}
	router := newTestRouter(&service.Services{AuthService: auth, CustomerService: customers})
	credentials := models.Credentials{Name: "Ann", Email: "a@x.com", Password: "pw"}

	rr := doRequest(t, router, http.MethodPost, "/api/auth/register", credentials, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = doRequest(t, router, http.MethodPost, "/api/auth/register", credentials, "")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"User already exists"}`, rr.Body.String())

	rr = doRequest(t, router, http.MethodPost, "/api/auth/login", credentials, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	token := decodeBody(t, rr)["data"].(map[string]any)["token"].(string)
	require.NotEmpty(t, token)

	rr = doRequest(t, router, http.MethodGet, "/api/customers", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, router, http.MethodGet, "/api/customers", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"No token provided"}`, rr.Body.String())

	rr = doRequest(t, router, http.MethodGet, "/api/customers", nil, token+"x")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"Invalid token"}`, rr.Body.String())
}
