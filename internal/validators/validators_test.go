package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-store-keeper/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

// fieldsOf returns the names of the violated fields, or nil if err is nil.
func fieldsOf(t *testing.T, err error) []string {
	t.Helper()

	if err == nil {
		return nil
	}

	var verr ValidationErrors
	require.True(t, errors.As(err, &verr), "expected ValidationErrors, got %T", err)
	assert.ErrorIs(t, err, ErrValidation)

	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestCustomerValidator(t *testing.T) {
	v := NewCustomerValidator()
	ctx := context.Background()

	valid := models.Customer{Name: "Ann", Email: "ann@example.com", Phone: "123"}

	tests := []struct {
		name   string
		obj    any
		fields []string
		want   []string
	}{
		{"valid", valid, nil, nil},
		{"valid pointer", &valid, nil, nil},
		{"all missing", models.Customer{}, nil, []string{FieldName, FieldEmail, FieldPhone}},
		{"missing phone", models.Customer{Name: "Ann", Email: "a@b.c"}, nil, []string{FieldPhone}},
		{"scoped to email", models.Customer{}, []string{FieldEmail}, []string{FieldEmail}},
		{"empty update", models.CustomerUpdate{}, nil, nil},
		{"blank name update", models.CustomerUpdate{Name: ptr("")}, nil, []string{FieldName}},
		{"blank address update is allowed", &models.CustomerUpdate{Address: ptr("")}, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			assert.Equal(t, tt.want, fieldsOf(t, err))
		})
	}
}

func TestCustomerValidator_Errors(t *testing.T) {
	v := NewCustomerValidator()

	err := v.Validate(context.Background(), models.Order{})
	assert.ErrorIs(t, err, ErrUnsupportedType)

	err = v.Validate(context.Background(), models.Customer{}, "nickname")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestOrderValidator(t *testing.T) {
	v := NewOrderValidator()
	ctx := context.Background()

	valid := models.OrderInput{
		Customer:    uuid.New(),
		OrderNumber: "A-1",
		TotalAmount: ptr(0.0),
		Status:      models.OrderStatusPending,
	}

	tests := []struct {
		name string
		obj  any
		want []string
	}{
		{"valid", valid, nil},
		{"valid pointer", &valid, nil},
		{"all missing", models.OrderInput{}, []string{FieldCustomer, FieldOrderNumber, FieldTotalAmount, FieldStatus}},
		{"unknown status", models.OrderInput{
			Customer:    uuid.New(),
			OrderNumber: "A-1",
			TotalAmount: ptr(1.0),
			Status:      "Shipped",
		}, []string{FieldStatus}},
		{"empty update", models.OrderUpdate{}, nil},
		{"update with bad status", models.OrderUpdate{Status: ptr(models.OrderStatus("Lost"))}, []string{FieldStatus}},
		{"update with blank fields", &models.OrderUpdate{
			Customer:    ptr(uuid.Nil),
			OrderNumber: ptr(""),
		}, []string{FieldCustomer, FieldOrderNumber}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fieldsOf(t, v.Validate(ctx, tt.obj)))
		})
	}

	assert.ErrorIs(t, v.Validate(ctx, models.Customer{}), ErrUnsupportedType)
}

func TestItemValidator(t *testing.T) {
	v := NewItemValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Item{Name: "Milk", Price: ptr(1.2)}))
	assert.Equal(t, []string{FieldName, FieldPrice}, fieldsOf(t, v.Validate(ctx, &models.Item{})))
	assert.Equal(t, []string{FieldPrice}, fieldsOf(t, v.Validate(ctx, models.Item{Name: "Milk", Price: ptr(-1.0)})))
	assert.ErrorIs(t, v.Validate(ctx, "milk"), ErrUnsupportedType)
}

func TestValidationErrors_Error(t *testing.T) {
	err := ValidationErrors{
		Entity: "customer",
		Fields: []FieldError{
			{Field: FieldName, Message: msgRequired},
			{Field: FieldEmail, Message: msgRequired},
		},
	}

	assert.Equal(t, "customer validation failed: name: is required, email: is required", err.Error())
	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrUnknownField))
}
