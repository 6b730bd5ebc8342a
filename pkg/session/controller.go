package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"julianmorley.ca/con-plar/shopvibe/pkg/cart"
	"julianmorley.ca/con-plar/shopvibe/pkg/catalog"
	"julianmorley.ca/con-plar/shopvibe/pkg/models"
	"julianmorley.ca/con-plar/shopvibe/pkg/wishlist"
)

// Controller owns one shopper's mutable state: the selected category, the
// cart ledger, the wishlist and whether the cart panel is open. Intents are
// applied one at a time and each returns an immutable Snapshot.
type Controller struct {
	mu sync.Mutex

	id       string
	source   catalog.Source
	log      logrus.FieldLogger
	now      func() time.Time
	category models.Category
	ledger   *cart.Ledger
	wishlist *wishlist.Set
	cartOpen bool
	lastSeen time.Time
}

func newController(id string, source catalog.Source, log logrus.FieldLogger, now func() time.Time) *Controller {
	return &Controller{
		id:       id,
		source:   source,
		log:      log.WithField("session_id", id),
		now:      now,
		category: models.CategoryAll,
		ledger:   cart.NewLedger(),
		wishlist: wishlist.New(),
		lastSeen: now(),
	}
}

func (c *Controller) ID() string {
	return c.id
}

// touch must be called with mu held.
func (c *Controller) touch() {
	c.lastSeen = c.now()
}

func (c *Controller) idleSince() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSeen
}

func (c *Controller) products(ctx context.Context) ([]models.Product, error) {
	products, err := c.source.Products(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load catalog")
	}
	return products, nil
}

// snapshot must be called with mu held.
func (c *Controller) snapshot(products []models.Product) Snapshot {
	return Snapshot{
		SessionID:   c.id,
		Category:    c.category,
		Products:    catalog.Filter(products, c.category),
		CatalogSize: len(products),
		Counts:      catalog.CountByCategory(products),
		Items:       c.ledger.Items(),
		Summary:     c.ledger.Summary(),
		Wishlist:    c.wishlist.IDs(),
		CartOpen:    c.cartOpen,
	}
}

// apply runs fn under the lock with a freshly loaded catalog and returns the
// resulting snapshot.
func (c *Controller) apply(ctx context.Context, fn func(products []models.Product) error) (Snapshot, error) {
	products, err := c.products(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()

	if fn != nil {
		if err := fn(products); err != nil {
			return Snapshot{}, err
		}
	}
	return c.snapshot(products), nil
}

func (c *Controller) Snapshot(ctx context.Context) (Snapshot, error) {
	return c.apply(ctx, nil)
}

// SelectCategory changes the catalog filter. Categories outside the known
// set are kept and simply match no products.
func (c *Controller) SelectCategory(ctx context.Context, category models.Category) (Snapshot, error) {
	return c.apply(ctx, func([]models.Product) error {
		c.category = category
		entry := c.log.WithField("category", category)
		if !category.IsKnown() {
			entry.Warn("unknown category selected, no products will match")
			return nil
		}
		entry.Debug("category selected")
		return nil
	})
}

// AddToCart adds one unit of an in-stock catalog product.
func (c *Controller) AddToCart(ctx context.Context, productID string) (Snapshot, error) {
	return c.apply(ctx, func(products []models.Product) error {
		p, ok := catalog.Find(products, productID)
		if !ok {
			return errors.Wrapf(ErrProductNotFound, "product %q", productID)
		}
		if !p.IsInStock() {
			return errors.Wrapf(ErrOutOfStock, "product %q", productID)
		}
		c.ledger.AddItem(p)
		c.log.WithFields(logrus.Fields{
			"product_id": productID,
			"quantity":   c.ledger.Quantity(productID),
		}).Info("item added to cart")
		return nil
	})
}

// SetLineItemQuantity forwards an absolute quantity to the ledger.
func (c *Controller) SetLineItemQuantity(ctx context.Context, productID string, quantity int) (Snapshot, error) {
	return c.apply(ctx, func([]models.Product) error {
		c.ledger.SetQuantity(productID, quantity)
		c.log.WithFields(logrus.Fields{
			"product_id": productID,
			"quantity":   quantity,
		}).Info("cart quantity set")
		return nil
	})
}

func (c *Controller) RemoveLineItem(ctx context.Context, productID string) (Snapshot, error) {
	return c.apply(ctx, func([]models.Product) error {
		c.ledger.RemoveItem(productID)
		c.log.WithField("product_id", productID).Info("item removed from cart")
		return nil
	})
}

// ToggleWishlist flips wishlist membership for a catalog product.
func (c *Controller) ToggleWishlist(ctx context.Context, productID string) (Snapshot, error) {
	return c.apply(ctx, func(products []models.Product) error {
		if _, ok := catalog.Find(products, productID); !ok {
			return errors.Wrapf(ErrProductNotFound, "product %q", productID)
		}
		added := c.wishlist.Toggle(productID)
		c.log.WithFields(logrus.Fields{
			"product_id": productID,
			"added":      added,
		}).Info("wishlist toggled")
		return nil
	})
}

func (c *Controller) OpenCart(ctx context.Context) (Snapshot, error) {
	return c.apply(ctx, func([]models.Product) error {
		c.cartOpen = true
		return nil
	})
}

func (c *Controller) CloseCart(ctx context.Context) (Snapshot, error) {
	return c.apply(ctx, func([]models.Product) error {
		c.cartOpen = false
		return nil
	})
}

// Checkout hands the current cart off as an Order, then clears the ledger and
// closes the cart panel.
func (c *Controller) Checkout(ctx context.Context) (models.Order, Snapshot, error) {
	var order models.Order
	snap, err := c.apply(ctx, func([]models.Product) error {
		if c.ledger.Len() == 0 {
			return ErrEmptyCart
		}
		order = models.Order{
			OrderNumber: uuid.NewString(),
			SessionID:   c.id,
			Items:       c.ledger.Items(),
			Totals:      c.ledger.Summary().Totals(),
			PlacedAt:    c.now().UTC(),
		}
		c.ledger.Clear()
		c.cartOpen = false
		c.log.WithFields(logrus.Fields{
			"order_number": order.OrderNumber,
			"grand_total":  order.Totals.GrandTotal.String(),
		}).Info("checkout handed off")
		return nil
	})
	if err != nil {
		return models.Order{}, Snapshot{}, err
	}
	return order, snap, nil
}
