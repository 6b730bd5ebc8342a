package session

import "github.com/pkg/errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrProductNotFound = errors.New("product not found")
	ErrOutOfStock      = errors.New("product is out of stock")
	ErrEmptyCart       = errors.New("cart is empty")
)
