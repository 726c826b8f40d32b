package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-store-keeper/internal/config"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/service"
	"github.com/MKhiriev/go-store-keeper/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// ---- service stubs ----

type stubAuthService struct {
	registerUser func(ctx context.Context, credentials models.Credentials) (models.User, error)
	login        func(ctx context.Context, credentials models.Credentials) (models.User, error)
	createToken  func(ctx context.Context, user models.User) (models.Token, error)
	parseToken   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (s *stubAuthService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return s.registerUser(ctx, credentials)
}

func (s *stubAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return s.login(ctx, credentials)
}

func (s *stubAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return s.createToken(ctx, user)
}

func (s *stubAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return s.parseToken(ctx, tokenString)
}

// acceptingAuthService accepts exactly testToken.
func acceptingAuthService() *stubAuthService {
	return &stubAuthService{
		parseToken: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != testToken {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{Claims: models.Claims{ID: testUserID.String(), Email: "a@x.com"}}, nil
		},
	}
}

type stubCustomerService struct {
	createCustomer func(ctx context.Context, customer models.Customer) (models.Customer, error)
	listCustomers  func(ctx context.Context, page models.Pagination) ([]models.Customer, int64, error)
	getCustomer    func(ctx context.Context, id string) (models.Customer, error)
	updateCustomer func(ctx context.Context, id string, update models.CustomerUpdate) (*models.Customer, error)
	deleteCustomer func(ctx context.Context, id string) error
}

func (s *stubCustomerService) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	return s.createCustomer(ctx, customer)
}

func (s *stubCustomerService) ListCustomers(ctx context.Context, page models.Pagination) ([]models.Customer, int64, error) {
	return s.listCustomers(ctx, page)
}

func (s *stubCustomerService) GetCustomer(ctx context.Context, id string) (models.Customer, error) {
	return s.getCustomer(ctx, id)
}

func (s *stubCustomerService) UpdateCustomer(ctx context.Context, id string, update models.CustomerUpdate) (*models.Customer, error) {
	return s.updateCustomer(ctx, id, update)
}

func (s *stubCustomerService) DeleteCustomer(ctx context.Context, id string) error {
	return s.deleteCustomer(ctx, id)
}

type stubOrderService struct {
	createOrder func(ctx context.Context, input models.OrderInput) (models.Order, error)
	listOrders  func(ctx context.Context, page models.Pagination) ([]models.PopulatedOrder, int64, error)
	getOrder    func(ctx context.Context, id string) (models.PopulatedOrder, error)
	updateOrder func(ctx context.Context, id string, update models.OrderUpdate) (models.Order, error)
	deleteOrder func(ctx context.Context, id string) error
}

func (s *stubOrderService) CreateOrder(ctx context.Context, input models.OrderInput) (models.Order, error) {
	return s.createOrder(ctx, input)
}

func (s *stubOrderService) ListOrders(ctx context.Context, page models.Pagination) ([]models.PopulatedOrder, int64, error) {
	return s.listOrders(ctx, page)
}

func (s *stubOrderService) GetOrder(ctx context.Context, id string) (models.PopulatedOrder, error) {
	return s.getOrder(ctx, id)
}

func (s *stubOrderService) UpdateOrder(ctx context.Context, id string, update models.OrderUpdate) (models.Order, error) {
	return s.updateOrder(ctx, id, update)
}

func (s *stubOrderService) DeleteOrder(ctx context.Context, id string) error {
	return s.deleteOrder(ctx, id)
}

type stubAppInfoService struct {
	version   string
	healthErr error
}

func (s *stubAppInfoService) GetAppVersion(ctx context.Context) string {
	return s.version
}

func (s *stubAppInfoService) CheckHealth(ctx context.Context) error {
	return s.healthErr
}

// ---- request helpers ----

const testToken = "valid-token"

var testUserID = uuid.MustParse("0190a6c4-0000-7000-8000-000000000001")

func newTestRouter(services *service.Services) http.Handler {
	if services.AuthService == nil {
		services.AuthService = acceptingAuthService()
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &stubAppInfoService{version: "test"}
	}
	return NewHandler(services, config.Server{}, logger.Nop()).Init()
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body
}
