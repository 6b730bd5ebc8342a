package models

import (
	"time"

	"julianmorley.ca/con-plar/shopvibe/pkg/money"
)

// OrderTotals represents the financial breakdown of an order
type OrderTotals struct {
	TotalItems int         `json:"total_items"`
	Subtotal   money.Cents `json:"subtotal"`
	Shipping   money.Cents `json:"shipping"`
	Tax        money.Cents `json:"tax"`
	GrandTotal money.Cents `json:"grand_total"`
}

// Order is the record handed off to checkout. The storefront does not keep it
// once the response is written.
type Order struct {
	OrderNumber string         `json:"order_number"`
	SessionID   string         `json:"session_id"`
	Items       []CartLineItem `json:"items"`
	Totals      OrderTotals    `json:"totals"`
	PlacedAt    time.Time      `json:"placed_at"`
}
