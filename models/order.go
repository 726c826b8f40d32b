package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
//
// No transition rules are enforced: any valid status may replace any other.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// OrderStatuses lists every accepted [OrderStatus].
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// IsValid reports whether s is one of [OrderStatuses].
func (s OrderStatus) IsValid() bool {
	for _, status := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// OrderItem is a snapshot of a purchased item taken when the order was
// placed. It is not a reference to [Item].
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderItems is stored as a single JSONB column.
type OrderItems []OrderItem

// Value implements [driver.Valuer].
func (items OrderItems) Value() (driver.Value, error) {
	if items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(items)
}

// Scan implements [sql.Scanner].
func (items *OrderItems) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*items = OrderItems{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported order items type %T", src)
	}

	var scanned OrderItems
	if err := json.Unmarshal(raw, &scanned); err != nil {
		return fmt.Errorf("error decoding order items: %w", err)
	}
	if scanned == nil {
		scanned = OrderItems{}
	}

	*items = scanned
	return nil
}

// Order is a customer order as stored in the database.
//
// CustomerID is an advisory reference: the referenced customer may not
// exist. TotalAmount is supplied by the caller and never recomputed from
// Items.
type Order struct {
	ID          uuid.UUID   `json:"id"`
	CustomerID  uuid.UUID   `json:"customer"`
	OrderNumber string      `json:"orderNumber"`
	Items       OrderItems  `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// PopulatedOrder is an [Order] whose customer reference has been replaced by
// the referenced record. Customer is nil when the reference dangles.
type PopulatedOrder struct {
	Order
	Customer *Customer `json:"customer"`
}

// OrderInput is the body accepted when an order is created.
// TotalAmount is a pointer so that a missing amount can be told apart from 0.
type OrderInput struct {
	Customer    uuid.UUID   `json:"customer"`
	OrderNumber string      `json:"orderNumber"`
	Items       OrderItems  `json:"items"`
	TotalAmount *float64    `json:"totalAmount"`
	Status      OrderStatus `json:"status"`
}

// Normalize fills in the default status and trims the order number.
func (in *OrderInput) Normalize() {
	in.OrderNumber = strings.TrimSpace(in.OrderNumber)
	if in.Status == "" {
		in.Status = OrderStatusPending
	}
	if in.Items == nil {
		in.Items = OrderItems{}
	}
}

// ToOrder converts a validated input into an [Order].
func (in OrderInput) ToOrder() (Order, error) {
	if in.TotalAmount == nil {
		return Order{}, errors.New("total amount is not set")
	}

	return Order{
		CustomerID:  in.Customer,
		OrderNumber: in.OrderNumber,
		Items:       in.Items,
		TotalAmount: *in.TotalAmount,
		Status:      in.Status,
	}, nil
}

// OrderUpdate describes a partial order update.
// Only non-nil fields are written; UpdatedAt is always bumped.
type OrderUpdate struct {
	Customer    *uuid.UUID   `json:"customer,omitempty"`
	OrderNumber *string      `json:"orderNumber,omitempty"`
	Items       *OrderItems  `json:"items,omitempty"`
	TotalAmount *float64     `json:"totalAmount,omitempty"`
	Status      *OrderStatus `json:"status,omitempty"`
}

// Normalize trims the order number when present.
func (u *OrderUpdate) Normalize() {
	if u.OrderNumber != nil {
		orderNumber := strings.TrimSpace(*u.OrderNumber)
		u.OrderNumber = &orderNumber
	}
}
