package cart

import (
	"github.com/shopspring/decimal"

	"julianmorley.ca/con-plar/shopvibe/pkg/models"
	"julianmorley.ca/con-plar/shopvibe/pkg/money"
)

// Pricing holds the order summary rules.
type Pricing struct {
	// Shipping is free only when the subtotal is strictly above this.
	FreeShippingThreshold money.Cents
	ShippingFee           money.Cents
	TaxRate               decimal.Decimal
}

func DefaultPricing() Pricing {
	return Pricing{
		FreeShippingThreshold: money.MustParse("100"),
		ShippingFee:           money.MustParse("9.99"),
		TaxRate:               decimal.RequireFromString("0.08"),
	}
}

// Summary is the priced view of a set of line items. It is derived, never stored.
type Summary struct {
	TotalItems           int         `json:"total_items"`
	Subtotal             money.Cents `json:"subtotal"`
	Shipping             money.Cents `json:"shipping"`
	Tax                  money.Cents `json:"tax"`
	Total                money.Cents `json:"total"`
	AmountToFreeShipping money.Cents `json:"amount_to_free_shipping"`
}

func (s Summary) FreeShipping() bool {
	return s.Shipping == 0
}

// Summarize prices items using the captured line item prices. An empty cart
// still pays the shipping fee.
func (p Pricing) Summarize(items []models.CartLineItem) Summary {
	var s Summary
	for _, item := range items {
		s.TotalItems += item.Quantity
		s.Subtotal += item.LineTotal()
	}

	s.Shipping = p.ShippingFee
	if s.Subtotal > p.FreeShippingThreshold {
		s.Shipping = 0
	}
	s.Tax = s.Subtotal.MulRate(p.TaxRate)
	s.Total = s.Subtotal + s.Shipping + s.Tax
	s.AmountToFreeShipping = money.Max(0, p.FreeShippingThreshold-s.Subtotal)
	return s
}

// Totals converts the summary into the checkout record's totals.
func (s Summary) Totals() models.OrderTotals {
	return models.OrderTotals{
		TotalItems: s.TotalItems,
		Subtotal:   s.Subtotal,
		Shipping:   s.Shipping,
		Tax:        s.Tax,
		GrandTotal: s.Total,
	}
}
