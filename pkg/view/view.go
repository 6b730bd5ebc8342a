// Package view turns session snapshots into display-ready models. Nothing in
// here mutates state; every function is a pure projection of a Snapshot.
package view

import (
	"fmt"

	"julianmorley.ca/con-plar/shopvibe/pkg/models"
	"julianmorley.ca/con-plar/shopvibe/pkg/session"
)

const (
	LabelAddToCart  = "Add to Cart"
	LabelOutOfStock = "Out of Stock"
	LabelFree       = "FREE"

	// LoadMoreThreshold is the number of shown products at which the
	// "Load More Products" button appears. It does not page anything.
	LoadMoreThreshold = 8
)

// ProductCard is a single tile in the catalog grid.
type ProductCard struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Image           string          `json:"image"`
	Category        models.Category `json:"category"`
	Price           string          `json:"price"`
	OriginalPrice   string          `json:"original_price,omitempty"`
	DiscountPercent int             `json:"discount_percent,omitempty"`
	Badge           string          `json:"badge,omitempty"`
	IsNew           bool            `json:"is_new"`
	Rating          float64         `json:"rating"`
	FullStars       int             `json:"full_stars"`
	Reviews         int             `json:"reviews"`
	Wishlisted      bool            `json:"wishlisted"`
	ActionLabel     string          `json:"action_label"`
	ActionDisabled  bool            `json:"action_disabled"`
}

// CategoryChip is one filter button. Only the selected chip carries a count.
type CategoryChip struct {
	Category models.Category `json:"category"`
	Selected bool            `json:"selected"`
	Count    *int            `json:"count,omitempty"`
}

type CatalogView struct {
	Chips       []CategoryChip `json:"chips"`
	Products    []ProductCard  `json:"products"`
	ResultsText string         `json:"results_text"`
	Empty       bool           `json:"empty"`
	LoadMore    bool           `json:"load_more"`
}

type CartLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type CartView struct {
	Open          bool       `json:"open"`
	Empty         bool       `json:"empty"`
	BadgeCount    int        `json:"badge_count"`
	Description   string     `json:"description"`
	Lines         []CartLine `json:"lines"`
	SubtotalLabel string     `json:"subtotal_label"`
	Subtotal      string     `json:"subtotal"`
	Shipping      string     `json:"shipping"`
	Tax           string     `json:"tax"`
	Total         string     `json:"total"`
	Nudge         string     `json:"nudge,omitempty"`
}

type HeaderView struct {
	CartItemCount int `json:"cart_item_count"`
	WishlistCount int `json:"wishlist_count"`
}

// Page is everything a client needs to draw the storefront for one session.
type Page struct {
	SessionID string      `json:"session_id"`
	Header    HeaderView  `json:"header"`
	Catalog   CatalogView `json:"catalog"`
	Cart      CartView    `json:"cart"`
}

func NewProductCard(p models.Product, wishlisted bool) ProductCard {
	card := ProductCard{
		ID:             p.ID,
		Name:           p.Name,
		Image:          p.Image,
		Category:       p.Category,
		Price:          p.Price.Format(),
		Badge:          p.Badge,
		IsNew:          p.IsNew,
		Rating:         p.Ratings.Average,
		FullStars:      p.FullStars(),
		Reviews:        p.Ratings.Count,
		Wishlisted:     wishlisted,
		ActionLabel:    LabelAddToCart,
		ActionDisabled: !p.IsInStock(),
	}
	if p.HasDiscount() {
		card.OriginalPrice = p.OriginalPrice.Format()
		card.DiscountPercent = p.DiscountPercent()
	}
	if !p.IsInStock() {
		card.ActionLabel = LabelOutOfStock
	}
	return card
}

func NewCatalogView(snap session.Snapshot) CatalogView {
	chips := make([]CategoryChip, 0, len(models.Categories()))
	for _, category := range models.Categories() {
		chip := CategoryChip{Category: category, Selected: category == snap.Category}
		if chip.Selected {
			count := len(snap.Products)
			if category == models.CategoryAll {
				count = snap.CatalogSize
			}
			chip.Count = &count
		}
		chips = append(chips, chip)
	}

	cards := make([]ProductCard, 0, len(snap.Products))
	for _, p := range snap.Products {
		cards = append(cards, NewProductCard(p, snap.IsWishlisted(p.ID)))
	}

	return CatalogView{
		Chips:       chips,
		Products:    cards,
		ResultsText: fmt.Sprintf("Showing %d of %d products", len(snap.Products), snap.CatalogSize),
		Empty:       len(snap.Products) == 0,
		LoadMore:    len(snap.Products) >= LoadMoreThreshold,
	}
}

func NewCartView(snap session.Snapshot) CartView {
	summary := snap.Summary

	lines := make([]CartLine, 0, len(snap.Items))
	for _, item := range snap.Items {
		lines = append(lines, CartLine{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Image:     item.Product.Image,
			Price:     item.Product.Price.Format(),
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal().Format(),
		})
	}

	v := CartView{
		Open:          snap.CartOpen,
		Empty:         len(lines) == 0,
		BadgeCount:    summary.TotalItems,
		Description:   cartDescription(summary.TotalItems),
		Lines:         lines,
		SubtotalLabel: fmt.Sprintf("Subtotal (%d items)", summary.TotalItems),
		Subtotal:      summary.Subtotal.Format(),
		Shipping:      summary.Shipping.Format(),
		Tax:           summary.Tax.Format(),
		Total:         summary.Total.Format(),
	}
	if summary.FreeShipping() {
		v.Shipping = LabelFree
	}
	if summary.AmountToFreeShipping > 0 {
		v.Nudge = fmt.Sprintf("Add %s more for free shipping!", summary.AmountToFreeShipping.Format())
	}
	return v
}

func cartDescription(totalItems int) string {
	switch {
	case totalItems == 1:
		return "You have 1 item in your cart"
	case totalItems > 1:
		return fmt.Sprintf("You have %d items in your cart", totalItems)
	default:
		return "Your shopping cart"
	}
}

func NewHeaderView(snap session.Snapshot) HeaderView {
	return HeaderView{
		CartItemCount: snap.Summary.TotalItems,
		WishlistCount: len(snap.Wishlist),
	}
}

func NewPage(snap session.Snapshot) Page {
	return Page{
		SessionID: snap.SessionID,
		Header:    NewHeaderView(snap),
		Catalog:   NewCatalogView(snap),
		Cart:      NewCartView(snap),
	}
}
