package http

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-store-keeper/internal/config"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/service"
	"github.com/MKhiriev/go-store-keeper/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRecordingRouter is newTestRouter with the log written to buf.
func newRecordingRouter(services *service.Services, buf *bytes.Buffer) http.Handler {
	if services.AuthService == nil {
		services.AuthService = acceptingAuthService()
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &stubAppInfoService{version: "test"}
	}
	return NewHandler(services, config.Server{}, &logger.Logger{Logger: zerolog.New(buf)}).Init()
}

// logEntry returns the first JSON log line whose message is msg.
func logEntry(t *testing.T, buf *bytes.Buffer, msg string) map[string]any {
	t.Helper()

	scanner := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for scanner.Scan() {
		var entry map[string]any
		if json.Unmarshal(scanner.Bytes(), &entry) == nil && entry["message"] == msg {
			return entry
		}
	}

	t.Fatalf("no %q entry in log:\n%s", msg, buf.String())
	return nil
}

func TestLogWrite_CustomerWritesNameActingUser(t *testing.T) {
	var buf bytes.Buffer
	router := newRecordingRouter(&service.Services{CustomerService: (&memoryCustomers{}).service()}, &buf)

	rr := doRequest(t, router, http.MethodPost, "/api/customers",
		map[string]any{"name": "Ann", "email": "ann@x.com", "phone": "1"}, testToken)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	entry := logEntry(t, &buf, "customer created")
	assert.Equal(t, testUserID.String(), entry["acting_user_id"])
	assert.Equal(t, "a@x.com", entry["acting_user_email"])
	assert.NotEmpty(t, entry["record_id"])
	assert.NotEmpty(t, entry["trace_id"])
}

func TestLogWrite_CustomerDelete(t *testing.T) {
	var buf bytes.Buffer
	customers := &stubCustomerService{
		deleteCustomer: func(context.Context, string) error { return nil },
	}
	router := newRecordingRouter(&service.Services{CustomerService: customers}, &buf)
	id := uuid.NewString()

	rr := doRequest(t, router, http.MethodDelete, "/api/customers/"+id, nil, testToken)
	require.Equal(t, http.StatusOK, rr.Code)

	entry := logEntry(t, &buf, "customer deleted")
	assert.Equal(t, id, entry["record_id"])
	assert.Equal(t, testUserID.String(), entry["acting_user_id"])
}

func TestLogWrite_PublicOrderUpdateHasNoUser(t *testing.T) {
	var buf bytes.Buffer
	orders := &stubOrderService{
		updateOrder: func(context.Context, string, models.OrderUpdate) (models.Order, error) {
			return models.Order{}, nil
		},
	}
	router := newRecordingRouter(&service.Services{OrderService: orders}, &buf)
	id := uuid.NewString()

	rr := doRequest(t, router, http.MethodPut, "/api/orders/"+id, map[string]any{"status": "Completed"}, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	entry := logEntry(t, &buf, "order updated")
	assert.Equal(t, id, entry["record_id"])
	assert.NotContains(t, entry, "acting_user_id")
}

func TestCustomers_CreateAddressDefault(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
		want string
	}{
		{"absent", map[string]any{"name": "Ann", "email": "ann@x.com", "phone": "1"}, models.DefaultCustomerAddress},
		{"explicit empty", map[string]any{"name": "Ann", "email": "ann@x.com", "phone": "1", "address": ""}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.Customer
			customers := &stubCustomerService{
				createCustomer: func(_ context.Context, c models.Customer) (models.Customer, error) {
					got = c
					return c, nil
				},
			}
			router := newTestRouter(&service.Services{CustomerService: customers})

			rr := doRequest(t, router, http.MethodPost, "/api/customers", tt.body, testToken)

			require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
			assert.Equal(t, tt.want, got.Address)
		})
	}
}
