package catalog

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryClass is the fulfilment category that partitions pricing for the
// same product and print option. The declaration order below is also the
// fallback priority order (fastest/default first).
type DeliveryClass string

const (
	DeliveryLocal       DeliveryClass = "local"
	DeliveryOverseasAir DeliveryClass = "overseas_air"
	DeliveryOverseasSea DeliveryClass = "overseas_sea"
)

// DeliveryFallbackOrder lists delivery classes in fixed fallback priority.
var DeliveryFallbackOrder = []DeliveryClass{DeliveryLocal, DeliveryOverseasAir, DeliveryOverseasSea}

// Valid reports whether the class is one of the known delivery classes.
func (d DeliveryClass) Valid() bool {
	switch d {
	case DeliveryLocal, DeliveryOverseasAir, DeliveryOverseasSea:
		return true
	}
	return false
}

// ParseDeliveryClass normalises a user-supplied token into a delivery class.
// It accepts the canonical tokens plus a few common shorthands.
func ParseDeliveryClass(s string) (DeliveryClass, bool) {
	switch DeliveryClass(s) {
	case DeliveryLocal, DeliveryOverseasAir, DeliveryOverseasSea:
		return DeliveryClass(s), true
	}
	switch s {
	case "air":
		return DeliveryOverseasAir, true
	case "sea":
		return DeliveryOverseasSea, true
	}
	return "", false
}

// Product is a sellable item family in the master catalog.
// Name is the canonical key: unique and case-sensitive.
type Product struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category,omitempty"`
	Dimensions string    `json:"dimensions,omitempty"`
	Material   string    `json:"material,omitempty"`
	Color      string    `json:"color,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PriceTier is one (product, print option, delivery class, quantity) price point.
// Within a variant group quantities are unique, and at most one tier carries
// IsMOQ — the one with the smallest quantity.
type PriceTier struct {
	ID              uuid.UUID     `json:"id"`
	ProductName     string        `json:"product_name"`
	PrintOption     string        `json:"print_option"`
	DeliveryClass   DeliveryClass `json:"delivery_class"`
	Quantity        int           `json:"quantity"`
	UnitPrice       float64       `json:"unit_price"`
	Currency        string        `json:"currency"`
	DeliveryDaysMin int           `json:"delivery_days_min"`
	DeliveryDaysMax int           `json:"delivery_days_max"`
	IsMOQ           bool          `json:"is_moq"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
