package models

import (
	"github.com/shopspring/decimal"

	"julianmorley.ca/con-plar/shopvibe/pkg/money"
)

// Ratings represents product review statistics
type Ratings struct {
	Average float64 `json:"average" bson:"average" validate:"gte=0,lte=5"`
	Count   int     `json:"count" bson:"count" validate:"gte=0"`
}

// Product represents an item in the storefront catalog. Products are
// immutable once created; the catalog source owns them.
type Product struct {
	ID            string      `json:"id" bson:"id" validate:"required"`
	Name          string      `json:"name" bson:"name" validate:"required,min=2,max=200"`
	Price         money.Cents `json:"price" bson:"price_cents" validate:"required,gt=0"`
	OriginalPrice money.Cents `json:"original_price,omitempty" bson:"original_price_cents,omitempty"`
	Image         string      `json:"image" bson:"image"`
	Category      Category    `json:"category" bson:"category" validate:"required"`
	Ratings       Ratings     `json:"ratings" bson:"ratings"`
	Badge         string      `json:"badge,omitempty" bson:"badge,omitempty"`
	IsNew         bool        `json:"is_new" bson:"is_new"`
	InStock       bool        `json:"in_stock" bson:"in_stock"`
}

// HasDiscount reports whether OriginalPrice is meaningful, i.e. above Price.
func (p Product) HasDiscount() bool {
	return p.OriginalPrice > p.Price
}

// DiscountPercent is the rounded percentage saved against OriginalPrice.
func (p Product) DiscountPercent() int {
	if !p.HasDiscount() || p.OriginalPrice <= 0 {
		return 0
	}
	ratio := p.Price.Decimal().Div(p.OriginalPrice.Decimal())
	return int(decimal.NewFromInt(1).Sub(ratio).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}

// FullStars is the number of filled stars shown for the average rating.
func (p Product) FullStars() int {
	stars := int(p.Ratings.Average)
	if stars < 0 {
		return 0
	}
	if stars > 5 {
		return 5
	}
	return stars
}

func (p Product) IsInStock() bool {
	return p.InStock
}
