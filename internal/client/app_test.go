package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/MKhiriev/go-store-keeper/internal/adapter"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAPI records the arguments it receives and answers with canned values.
type stubAPI struct {
	adapter.StoreAPI

	token string

	credentials    models.Credentials
	page           models.Pagination
	id             string
	customer       models.Customer
	customerUpdate models.CustomerUpdate
	orderInput     models.OrderInput
	orderUpdate    models.OrderUpdate

	err error
}

func (s *stubAPI) SetToken(token string) { s.token = token }
func (s *stubAPI) Token() string         { return s.token }

func (s *stubAPI) Version(context.Context) (string, error) { return "1.2.3", s.err }

func (s *stubAPI) Register(_ context.Context, c models.Credentials) (models.UserInfo, error) {
	s.credentials = c
	return models.UserInfo{Email: c.Email}, s.err
}

func (s *stubAPI) Login(_ context.Context, c models.Credentials) (models.LoginResult, error) {
	s.credentials = c
	if s.err != nil {
		return models.LoginResult{}, s.err
	}
	s.token = "issued-token"
	return models.LoginResult{Token: s.token, User: models.UserInfo{Email: c.Email}}, nil
}

func (s *stubAPI) ListCustomers(_ context.Context, page models.Pagination) ([]models.Customer, models.ListMeta, error) {
	s.page = page
	return []models.Customer{{Name: "Ann"}}, page.Meta(1), s.err
}

func (s *stubAPI) GetCustomer(_ context.Context, id string) (models.Customer, error) {
	s.id = id
	return models.Customer{Name: "Ann"}, s.err
}

func (s *stubAPI) CreateCustomer(_ context.Context, c models.Customer) (models.Customer, error) {
	s.customer = c
	return c, s.err
}

func (s *stubAPI) UpdateCustomer(_ context.Context, id string, u models.CustomerUpdate) (*models.Customer, error) {
	s.id, s.customerUpdate = id, u
	return nil, s.err
}

func (s *stubAPI) DeleteCustomer(_ context.Context, id string) error {
	s.id = id
	return s.err
}

func (s *stubAPI) CreateOrder(_ context.Context, in models.OrderInput) (models.Order, error) {
	s.orderInput = in
	return models.Order{OrderNumber: in.OrderNumber}, s.err
}

func (s *stubAPI) UpdateOrder(_ context.Context, id string, u models.OrderUpdate) (models.Order, error) {
	s.id, s.orderUpdate = id, u
	return models.Order{}, s.err
}

func (s *stubAPI) DeleteOrder(_ context.Context, id string) error {
	s.id = id
	return s.err
}

func newTestApp(api *stubAPI) (*App, *[]string) {
	var copied []string
	app := NewApp(api, logger.NewConsoleLogger("test", io.Discard, zerolog.Disabled))
	app.copyToClipboard = func(text string) error {
		copied = append(copied, text)
		return nil
	}
	return app, &copied
}

func runApp(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()

	root := app.rootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	app, _ := newTestApp(&stubAPI{})

	out, err := runApp(t, app, "version")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1.2.3"}`, out)
}

func TestRegister(t *testing.T) {
	api := &stubAPI{}
	app, _ := newTestApp(api)

	_, err := runApp(t, app, "register", "--name", "Ann", "--email", "ann@example.com", "--password", "secret")
	require.NoError(t, err)
	assert.Equal(t, models.Credentials{Name: "Ann", Email: "ann@example.com", Password: "secret"}, api.credentials)
}

func TestRegister_RequiresPassword(t *testing.T) {
	app, _ := newTestApp(&stubAPI{})

	_, err := runApp(t, app, "register", "--email", "ann@example.com")
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	t.Run("prints the token", func(t *testing.T) {
		app, copied := newTestApp(&stubAPI{})

		out, err := runApp(t, app, "login", "--email", "ann@example.com", "--password", "secret")
		require.NoError(t, err)

		var result models.LoginResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, "issued-token", result.Token)
		assert.Empty(t, *copied)
	})

	t.Run("copies the token when asked", func(t *testing.T) {
		app, copied := newTestApp(&stubAPI{})

		_, err := runApp(t, app, "login", "--email", "a@b.c", "--password", "p", "--copy")
		require.NoError(t, err)
		assert.Equal(t, []string{"issued-token"}, *copied)
	})

	t.Run("clipboard failure is not fatal", func(t *testing.T) {
		app, _ := newTestApp(&stubAPI{})
		app.copyToClipboard = func(string) error { return errNoClipboard }

		_, err := runApp(t, app, "login", "--email", "a@b.c", "--password", "p", "--copy")
		assert.NoError(t, err)
	})

	t.Run("api error", func(t *testing.T) {
		app, _ := newTestApp(&stubAPI{err: adapter.ErrBadRequest})

		_, err := runApp(t, app, "login", "--email", "a@b.c", "--password", "p")
		assert.ErrorIs(t, err, adapter.ErrBadRequest)
	})
}

func TestTokenFlag(t *testing.T) {
	api := &stubAPI{}
	app, _ := newTestApp(api)

	_, err := runApp(t, app, "--token", "abc", "customers", "get", "42")
	require.NoError(t, err)
	assert.Equal(t, "abc", api.token)
	assert.Equal(t, "42", api.id)
}

func TestCustomers(t *testing.T) {
	t.Run("list uses default pagination", func(t *testing.T) {
		api := &stubAPI{}
		app, _ := newTestApp(api)

		out, err := runApp(t, app, "customers", "list")
		require.NoError(t, err)
		assert.Equal(t, models.Pagination{Page: models.DefaultPage, PageSize: models.DefaultPageSize}, api.page)
		assert.JSONEq(t, `{"data":[{"id":"00000000-0000-0000-0000-000000000000","name":"Ann","email":"","phone":"","address":"","createdAt":"0001-01-01T00:00:00Z"}],"meta":{"page":1,"pageSize":10,"total":1}}`, out)
	})

	t.Run("list with explicit page", func(t *testing.T) {
		api := &stubAPI{}
		app, _ := newTestApp(api)

		_, err := runApp(t, app, "customers", "list", "--page", "3", "--page-size", "5")
		require.NoError(t, err)
		assert.Equal(t, models.Pagination{Page: 3, PageSize: 5}, api.page)
	})

	t.Run("create", func(t *testing.T) {
		api := &stubAPI{}
		app, _ := newTestApp(api)

		_, err := runApp(t, app, "customers", "create", "--name", "Ann", "--email", "ann@example.com", "--phone", "123")
		require.NoError(t, err)
		assert.Equal(t, models.Customer{Name: "Ann", Email: "ann@example.com", Phone: "123", Address: models.DefaultCustomerAddress}, api.customer)
	})

	t.Run("update sends only changed fields", func(t *testing.T) {
		api := &stubAPI{}
		app, _ := newTestApp(api)

		out, err := runApp(t, app, "customers", "update", "42", "--phone", "555")
		require.NoError(t, err)
		assert.Equal(t, "42", api.id)
		require.NotNil(t, api.customerUpdate.Phone)
		assert.Equal(t, "555", *api.customerUpdate.Phone)
		assert.Nil(t, api.customerUpdate.Name)
		assert.Nil(t, api.customerUpdate.Email)
		assert.JSONEq(t, `{"data":null}`, out)
	})

	t.Run("delete", func(t *testing.T) {
		api := &stubAPI{}
		app, _ := newTestApp(api)

		out, err := runApp(t, app, "customers", "delete", "42")
		require.NoError(t, err)
		assert.JSONEq(t, `{"data":"Customer deleted successfully"}`, out)
	})

	t.Run("get requires an id", func(t *testing.T) {
		app, _ := newTestApp(&stubAPI{})

		_, err := runApp(t, app, "customers", "get")
		assert.Error(t, err)
	})

	t.Run("unauthorized", func(t *testing.T) {
		app, _ := newTestApp(&stubAPI{err: adapter.ErrUnauthorized})

		_, err := runApp(t, app, "customers", "delete", "42")
		assert.True(t, errors.Is(err, adapter.ErrUnauthorized))
	})
}

func TestOrders(t *testing.T) {
	customerID := uuid.New()

	t.Run("create", func(t *testing.T) {
		api := &stubAPI{}
		app, _ := newTestApp(api)

		_, err := runApp(t, app, "orders", "create",
			"--customer", customerID.String(),
			"--number", "A-1",
			"--total", "9.5",
			"--items", `[{"name":"pen","quantity":2,"price":1.5}]`)
		require.NoError(t, err)

		in := api.orderInput
		assert.Equal(t, customerID, in.Customer)
		assert.Equal(t, "A-1", in.OrderNumber)
		require.NotNil(t, in.TotalAmount)
		assert.Equal(t, 9.5, *in.TotalAmount)
		assert.Len(t, in.Items, 1)
	})

	t.Run("create rejects a malformed customer id", func(t *testing.T) {
		app, _ := newTestApp(&stubAPI{})

		_, err := runApp(t, app, "orders", "create", "--customer", "nope", "--number", "A-1", "--total", "1")
		assert.ErrorContains(t, err, "invalid customer id")
	})

	t.Run("create rejects malformed items", func(t *testing.T) {
		app, _ := newTestApp(&stubAPI{})

		_, err := runApp(t, app, "orders", "create", "--customer", customerID.String(), "--number", "A-1", "--total", "1", "--items", "[")
		assert.ErrorContains(t, err, "invalid items")
	})

	t.Run("update sends only changed fields", func(t *testing.T) {
		api := &stubAPI{}
		app, _ := newTestApp(api)

		_, err := runApp(t, app, "orders", "update", "7", "--status", "Completed")
		require.NoError(t, err)
		assert.Equal(t, "7", api.id)
		require.NotNil(t, api.orderUpdate.Status)
		assert.Equal(t, models.OrderStatusCompleted, *api.orderUpdate.Status)
		assert.Nil(t, api.orderUpdate.TotalAmount)
		assert.Nil(t, api.orderUpdate.OrderNumber)
	})

	t.Run("delete", func(t *testing.T) {
		api := &stubAPI{}
		app, _ := newTestApp(api)

		out, err := runApp(t, app, "orders", "delete", "7")
		require.NoError(t, err)
		assert.JSONEq(t, `{"message":"Order deleted successfully"}`, out)
	})

	t.Run("not found", func(t *testing.T) {
		app, _ := newTestApp(&stubAPI{err: adapter.ErrNotFound})

		_, err := runApp(t, app, "orders", "delete", "7")
		assert.ErrorIs(t, err, adapter.ErrNotFound)
	})
}
