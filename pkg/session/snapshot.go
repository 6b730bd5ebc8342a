package session

import (
	"julianmorley.ca/con-plar/shopvibe/pkg/cart"
	"julianmorley.ca/con-plar/shopvibe/pkg/models"
)

// Snapshot is a read-only copy of a session's state. Slices and maps are not
// shared with the Controller.
type Snapshot struct {
	SessionID   string                  `json:"session_id"`
	Category    models.Category         `json:"category"`
	Products    []models.Product        `json:"products"`
	CatalogSize int                     `json:"catalog_size"`
	Counts      map[models.Category]int `json:"counts"`
	Items       []models.CartLineItem   `json:"items"`
	Summary     cart.Summary            `json:"summary"`
	Wishlist    []string                `json:"wishlist"`
	CartOpen    bool                    `json:"cart_open"`
}

func (s Snapshot) IsWishlisted(productID string) bool {
	for _, id := range s.Wishlist {
		if id == productID {
			return true
		}
	}
	return false
}
