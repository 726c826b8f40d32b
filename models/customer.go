package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultCustomerAddress is stored when a customer is created without an
// address field. An explicit empty address is kept as is.
const DefaultCustomerAddress = "N/A"

// Customer is a store customer.
//
// Name and Email are unique across all customers. Email is kept lower-cased,
// and Name, Email and Phone are trimmed before every write.
type Customer struct {
	// ID is generated by the server on creation; a value sent by the
	// client is ignored.
	ID uuid.UUID `json:"id"`

	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`

	// CreatedAt is set once, when the customer is persisted.
	CreatedAt time.Time `json:"createdAt"`
}

// UnmarshalJSON fills in [DefaultCustomerAddress] when the address field is
// absent or null.
func (c *Customer) UnmarshalJSON(data []byte) error {
	type plain Customer

	decoded := plain{Address: DefaultCustomerAddress}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	*c = Customer(decoded)
	return nil
}

// Normalize trims the text fields and lower-cases the email.
func (c *Customer) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Phone = strings.TrimSpace(c.Phone)
}

// CustomerUpdate describes a partial customer update.
// Only non-nil fields are written.
type CustomerUpdate struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// Normalize applies the same trimming and casing rules as [Customer.Normalize]
// to the fields that are present.
func (u *CustomerUpdate) Normalize() {
	if u.Name != nil {
		name := strings.TrimSpace(*u.Name)
		u.Name = &name
	}
	if u.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*u.Email))
		u.Email = &email
	}
	if u.Phone != nil {
		phone := strings.TrimSpace(*u.Phone)
		u.Phone = &phone
	}
}

// IsEmpty reports whether the update carries no fields at all.
func (u CustomerUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil && u.Address == nil
}
