package models

import "julianmorley.ca/con-plar/shopvibe/pkg/money"

// CartLineItem is a product captured at add time plus a quantity of at least 1.
type CartLineItem struct {
	Product
	Quantity int `json:"quantity"`
}

func (i CartLineItem) LineTotal() money.Cents {
	return i.Price.Times(i.Quantity)
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// UpdateCartItemRequest carries an absolute quantity; 0 or less removes the
// item. The upper bound matches cart.MaxQuantity.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required,max=999"`
}

type SelectCategoryRequest struct {
	Category string `json:"category" binding:"required"`
}
