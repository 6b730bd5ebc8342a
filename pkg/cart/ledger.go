package cart

import "julianmorley.ca/con-plar/shopvibe/pkg/models"

// MaxQuantity caps a single line item. Quantities above it are clamped so
// line totals stay far inside int64 cents.
const MaxQuantity = 999

// Ledger holds the cart's line items in insertion order. Every stored item
// has a quantity of at least 1 and no two items share a product id.
//
// A Ledger is not safe for concurrent use; its owner serializes access.
type Ledger struct {
	items   []models.CartLineItem
	pricing Pricing
}

func NewLedger() *Ledger {
	return &Ledger{pricing: DefaultPricing()}
}

func (l *Ledger) indexOf(productID string) int {
	for i := range l.items {
		if l.items[i].ID == productID {
			return i
		}
	}
	return -1
}

// AddItem increments the quantity of an existing line item or appends a new
// one with quantity 1. Stock is not checked here. A line already at
// MaxQuantity is left unchanged.
func (l *Ledger) AddItem(product models.Product) {
	if i := l.indexOf(product.ID); i >= 0 {
		if l.items[i].Quantity < MaxQuantity {
			l.items[i].Quantity++
		}
		return
	}
	l.items = append(l.items, models.CartLineItem{Product: product, Quantity: 1})
}

// SetQuantity sets an absolute quantity. A quantity of zero or less removes
// the line item, and anything above MaxQuantity is clamped to it. Unknown
// product ids are ignored: only AddItem creates items.
func (l *Ledger) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		l.RemoveItem(productID)
		return
	}
	if quantity > MaxQuantity {
		quantity = MaxQuantity
	}
	if i := l.indexOf(productID); i >= 0 {
		l.items[i].Quantity = quantity
	}
}

// RemoveItem deletes the line item for productID if present.
func (l *Ledger) RemoveItem(productID string) {
	i := l.indexOf(productID)
	if i < 0 {
		return
	}
	l.items = append(l.items[:i:i], l.items[i+1:]...)
}

// Clear empties the ledger after a successful checkout.
func (l *Ledger) Clear() {
	l.items = nil
}

// Items returns a copy of the line items in insertion order.
func (l *Ledger) Items() []models.CartLineItem {
	out := make([]models.CartLineItem, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Ledger) Len() int {
	return len(l.items)
}

func (l *Ledger) Contains(productID string) bool {
	return l.indexOf(productID) >= 0
}

// Quantity returns the quantity held for productID, 0 when absent.
func (l *Ledger) Quantity(productID string) int {
	if i := l.indexOf(productID); i >= 0 {
		return l.items[i].Quantity
	}
	return 0
}

func (l *Ledger) Summary() Summary {
	return l.pricing.Summarize(l.items)
}
