package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-store-keeper/internal/config"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/utils"
	"github.com/MKhiriev/go-store-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpStoreAPI struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPStoreAPI constructs the REST implementation of [StoreAPI] for the
// server at cfg.HTTPAddress. A token from cfg is installed right away.
//
// Returns an error if the address is empty or is not a valid URL.
func NewHTTPStoreAPI(cfg config.Adapter, logger *logger.Logger) (StoreAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json").
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			logger.Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Str("trace_id", resp.Header().Get("X-Trace-ID")).
				Dur("duration", resp.Time()).
				Msg("api call")
			return nil
		})

	a := &httpStoreAPI{client: client, logger: logger}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errNoHost
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpStoreAPI) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpStoreAPI) Token() string {
	return h.token
}

func (h *httpStoreAPI) Register(ctx context.Context, credentials models.Credentials) (models.UserInfo, error) {
	var user models.UserInfo
	if err := h.do(ctx, resty.MethodPost, "/api/auth/register", credentials, &user, false); err != nil {
		return models.UserInfo{}, fmt.Errorf("register: %w", err)
	}
	return user, nil
}

func (h *httpStoreAPI) Login(ctx context.Context, credentials models.Credentials) (models.LoginResult, error) {
	var result models.LoginResult
	if err := h.do(ctx, resty.MethodPost, "/api/auth/login", credentials, &result, false); err != nil {
		return models.LoginResult{}, fmt.Errorf("login: %w", err)
	}

	h.SetToken(result.Token)
	return result, nil
}

func (h *httpStoreAPI) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	var created models.Customer
	if err := h.do(ctx, resty.MethodPost, "/api/customers", customer, &created, true); err != nil {
		return models.Customer{}, fmt.Errorf("create customer: %w", err)
	}
	return created, nil
}

func (h *httpStoreAPI) ListCustomers(ctx context.Context, page models.Pagination) ([]models.Customer, models.ListMeta, error) {
	var customers []models.Customer
	meta, err := h.list(ctx, "/api/customers", page, &customers, true)
	if err != nil {
		return nil, models.ListMeta{}, fmt.Errorf("list customers: %w", err)
	}
	return customers, meta, nil
}

func (h *httpStoreAPI) GetCustomer(ctx context.Context, id string) (models.Customer, error) {
	var customer models.Customer
	if err := h.do(ctx, resty.MethodGet, customerPath(id), nil, &customer, true); err != nil {
		return models.Customer{}, fmt.Errorf("get customer: %w", err)
	}
	return customer, nil
}

func (h *httpStoreAPI) UpdateCustomer(ctx context.Context, id string, update models.CustomerUpdate) (*models.Customer, error) {
	var updated *models.Customer
	if err := h.do(ctx, resty.MethodPut, customerPath(id), update, &updated, true); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return updated, nil
}

func (h *httpStoreAPI) DeleteCustomer(ctx context.Context, id string) error {
	if err := h.do(ctx, resty.MethodDelete, customerPath(id), nil, nil, true); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func (h *httpStoreAPI) CreateOrder(ctx context.Context, input models.OrderInput) (models.Order, error) {
	var result struct {
		Data models.Order `json:"data"`
	}
	if err := h.send(ctx, resty.MethodPost, "/api/orders", input, &result, true); err != nil {
		return models.Order{}, fmt.Errorf("create order: %w", err)
	}
	return result.Data, nil
}

func (h *httpStoreAPI) ListOrders(ctx context.Context, page models.Pagination) ([]models.PopulatedOrder, models.ListMeta, error) {
	var orders []models.PopulatedOrder
	meta, err := h.list(ctx, "/api/orders", page, &orders, false)
	if err != nil {
		return nil, models.ListMeta{}, fmt.Errorf("list orders: %w", err)
	}
	return orders, meta, nil
}

// GetOrder reads the bare order: this endpoint answers without an envelope.
func (h *httpStoreAPI) GetOrder(ctx context.Context, id string) (models.PopulatedOrder, error) {
	var order models.PopulatedOrder
	if err := h.send(ctx, resty.MethodGet, orderPath(id), nil, &order, false); err != nil {
		return models.PopulatedOrder{}, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (h *httpStoreAPI) UpdateOrder(ctx context.Context, id string, update models.OrderUpdate) (models.Order, error) {
	var result struct {
		Data models.Order `json:"data"`
	}
	if err := h.send(ctx, resty.MethodPut, orderPath(id), update, &result, false); err != nil {
		return models.Order{}, fmt.Errorf("update order: %w", err)
	}
	return result.Data, nil
}

func (h *httpStoreAPI) DeleteOrder(ctx context.Context, id string) error {
	if err := h.send(ctx, resty.MethodDelete, orderPath(id), nil, nil, false); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func (h *httpStoreAPI) Version(ctx context.Context) (string, error) {
	var info models.AppInfo
	if err := h.do(ctx, resty.MethodGet, "/api/version", nil, &info, false); err != nil {
		return "", fmt.Errorf("version: %w", err)
	}
	return info.Version, nil
}

// do sends a request whose answer is {"data": ...} and decodes data into
// result.
func (h *httpStoreAPI) do(ctx context.Context, method, path string, body, result any, auth bool) error {
	envelope := models.DataEnvelope{Data: result}
	return h.send(ctx, method, path, body, &envelope, auth)
}

func (h *httpStoreAPI) list(ctx context.Context, path string, page models.Pagination, result any, auth bool) (models.ListMeta, error) {
	envelope := models.ListEnvelope{Data: result}

	req := h.request(ctx, auth).
		SetQueryParam("page", strconv.Itoa(page.Page)).
		SetQueryParam("pageSize", strconv.Itoa(page.PageSize)).
		SetResult(&envelope)

	resp, err := req.Get(path)
	if err != nil {
		return models.ListMeta{}, err
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ListMeta{}, err
	}

	return envelope.Meta, nil
}

func (h *httpStoreAPI) send(ctx context.Context, method, path string, body, result any, auth bool) error {
	req := h.request(ctx, auth)
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return err
	}

	return mapHTTPError(resp)
}

func (h *httpStoreAPI) request(ctx context.Context, auth bool) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetError(&models.ErrorEnvelope{})

	if auth && h.token != "" {
		req.SetAuthToken(h.token)
	}

	return req
}

func customerPath(id string) string {
	return "/api/customers/" + url.PathEscape(id)
}

func orderPath(id string) string {
	return "/api/orders/" + url.PathEscape(id)
}
