package model

import "github.com/shopspring/decimal"

// OrderItem is one grouped cart line as submitted to the lessons API.
type OrderItem struct {
	Subject  string          `json:"subject"`
	City     string          `json:"city"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Order is the payload posted to the lessons API at checkout.  The
// reference is a client-generated UUID so a retried submission can be
// recognised by the remote store.
//
// Fields:
//  Reference – client-generated idempotency reference.
//  Name      – trimmed customer name.
//  Phone     – trimmed customer phone.
//  Items     – grouped cart lines in order of first appearance.
//  Total     – sum of all individual line prices.
type Order struct {
	Reference string          `json:"reference"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone"`
	Items     []OrderItem     `json:"items"`
	Total     decimal.Decimal `json:"total"`
}
