package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultItemUnit is stored when an item is created without a unit.
const DefaultItemUnit = "pcs"

// Item is a catalogue entry. It is persisted in the items table but no
// route exposes it yet.
type Item struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category,omitempty"` // e.g. Dairy, Bakery, Produce
	Price       *float64  `json:"price"`
	Stock       int       `json:"stock"`
	Unit        string    `json:"unit"` // e.g. pcs, kg, L
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Normalize trims the text fields and fills in the default unit.
func (i *Item) Normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Category = strings.TrimSpace(i.Category)
	i.Description = strings.TrimSpace(i.Description)
	i.ImageURL = strings.TrimSpace(i.ImageURL)
	if i.Unit == "" {
		i.Unit = DefaultItemUnit
	}
}
