package model

import "github.com/shopspring/decimal"

// CartLine is an immutable snapshot of one reserved seat.  The price is
// captured at the moment of reservation and never re-read from the
// catalog, so later price changes do not retroactively affect the cart.
// Duplicate lines for the same subject and city are intentional: each
// one represents a separately reserved seat.
type CartLine struct {
	Subject string          `json:"subject"`
	City    string          `json:"city"`
	Price   decimal.Decimal `json:"price"`
}

// GroupedCartLine is the derived view collapsing duplicate cart lines
// for one (subject, city) pair into a quantity.  It is computed on
// demand and never stored.
type GroupedCartLine struct {
	Subject  string          `json:"subject"`
	City     string          `json:"city"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Customer holds the checkout contact details for the current session.
// Both fields are transient and reset to blank after a successful
// checkout.
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
