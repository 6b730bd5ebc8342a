package view

import (
	"context"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"julianmorley.ca/con-plar/shopvibe/pkg/catalog"
	"julianmorley.ca/con-plar/shopvibe/pkg/models"
	"julianmorley.ca/con-plar/shopvibe/pkg/money"
	"julianmorley.ca/con-plar/shopvibe/pkg/session"
)

func newController(t *testing.T, products []models.Product) *session.Controller {
	t.Helper()
	logger, _ := test.NewNullLogger()
	store := session.NewStore(catalog.NewStaticSource(products), session.WithLogger(logger))
	return store.Create()
}

func TestProductCardDiscountAndStock(t *testing.T) {
	products := catalog.SampleProducts()

	card := NewProductCard(products[0], true)
	assert.Equal(t, "$299.00", card.Price)
	assert.Equal(t, "$399.00", card.OriginalPrice)
	assert.Equal(t, 25, card.DiscountPercent)
	assert.Equal(t, "Best Seller", card.Badge)
	assert.Equal(t, 4, card.FullStars)
	assert.Equal(t, 156, card.Reviews)
	assert.True(t, card.Wishlisted)
	assert.Equal(t, LabelAddToCart, card.ActionLabel)
	assert.False(t, card.ActionDisabled)

	plain := NewProductCard(products[1], false)
	assert.Empty(t, plain.OriginalPrice)
	assert.Zero(t, plain.DiscountPercent)
	assert.True(t, plain.IsNew)

	p, ok := catalog.Find(products, "5")
	require.True(t, ok)
	soldOut := NewProductCard(p, false)
	assert.Equal(t, LabelOutOfStock, soldOut.ActionLabel)
	assert.True(t, soldOut.ActionDisabled)
}

func TestProductCardIgnoresLowerOriginalPrice(t *testing.T) {
	p := models.Product{
		ID:            "x",
		Price:         money.MustParse("50"),
		OriginalPrice: money.MustParse("40"),
		InStock:       true,
	}
	card := NewProductCard(p, false)
	assert.Empty(t, card.OriginalPrice)
	assert.Zero(t, card.DiscountPercent)
}

func TestCatalogViewChipsAndResults(t *testing.T) {
	c := newController(t, catalog.SampleProducts())
	ctx := context.Background()

	snap, err := c.Snapshot(ctx)
	require.NoError(t, err)
	v := NewCatalogView(snap)

	require.Len(t, v.Chips, len(models.Categories()))
	require.NotNil(t, v.Chips[0].Count)
	assert.True(t, v.Chips[0].Selected)
	assert.Equal(t, 6, *v.Chips[0].Count)
	assert.Nil(t, v.Chips[1].Count)
	assert.Equal(t, "Showing 6 of 6 products", v.ResultsText)
	assert.False(t, v.Empty)
	assert.False(t, v.LoadMore)

	snap, err = c.SelectCategory(ctx, models.CategoryElectronics)
	require.NoError(t, err)
	v = NewCatalogView(snap)
	for _, chip := range v.Chips {
		if chip.Category == models.CategoryElectronics {
			require.NotNil(t, chip.Count)
			assert.Equal(t, 2, *chip.Count)
		} else {
			assert.Nil(t, chip.Count)
		}
	}
	assert.Equal(t, "Showing 2 of 6 products", v.ResultsText)

	snap, err = c.SelectCategory(ctx, models.CategorySports)
	require.NoError(t, err)
	v = NewCatalogView(snap)
	assert.True(t, v.Empty)
	assert.Empty(t, v.Products)
	assert.Equal(t, "Showing 0 of 6 products", v.ResultsText)
}

func TestCatalogViewLoadMore(t *testing.T) {
	products := make([]models.Product, 0, LoadMoreThreshold)
	for i := 0; i < LoadMoreThreshold; i++ {
		products = append(products, models.Product{
			ID:       fmt.Sprintf("p%d", i),
			Name:     "Item",
			Price:    money.MustParse("10"),
			Category: models.CategorySports,
			InStock:  true,
		})
	}

	c := newController(t, products)
	snap, err := c.Snapshot(context.Background())
	require.NoError(t, err)
	assert.True(t, NewCatalogView(snap).LoadMore)

	snap.Products = snap.Products[:LoadMoreThreshold-1]
	assert.False(t, NewCatalogView(snap).LoadMore)
}

func TestCartViewEmpty(t *testing.T) {
	c := newController(t, catalog.SampleProducts())
	snap, err := c.Snapshot(context.Background())
	require.NoError(t, err)

	v := NewCartView(snap)
	assert.True(t, v.Empty)
	assert.Equal(t, "Your shopping cart", v.Description)
	assert.Equal(t, "Subtotal (0 items)", v.SubtotalLabel)
	assert.Equal(t, "$9.99", v.Shipping)
	assert.Equal(t, "Add $100.00 more for free shipping!", v.Nudge)
}

func TestCartViewBelowThreshold(t *testing.T) {
	c := newController(t, catalog.SampleProducts())
	ctx := context.Background()

	_, err := c.AddToCart(ctx, "4")
	require.NoError(t, err)
	snap, err := c.SetLineItemQuantity(ctx, "4", 2)
	require.NoError(t, err)

	v := NewCartView(snap)
	require.Len(t, v.Lines, 1)
	assert.Equal(t, "$35.00", v.Lines[0].Price)
	assert.Equal(t, "$70.00", v.Lines[0].LineTotal)
	assert.Equal(t, 2, v.BadgeCount)
	assert.Equal(t, "You have 2 items in your cart", v.Description)
	assert.Equal(t, "Subtotal (2 items)", v.SubtotalLabel)
	assert.Equal(t, "$9.99", v.Shipping)
	assert.Equal(t, "$5.60", v.Tax)
	assert.Equal(t, "$85.59", v.Total)
	assert.Equal(t, "Add $30.00 more for free shipping!", v.Nudge)
}

func TestCartViewFreeShipping(t *testing.T) {
	c := newController(t, catalog.SampleProducts())
	ctx := context.Background()

	snap, err := c.AddToCart(ctx, "1")
	require.NoError(t, err)

	v := NewCartView(snap)
	assert.Equal(t, "You have 1 item in your cart", v.Description)
	assert.Equal(t, LabelFree, v.Shipping)
	assert.Equal(t, "$23.92", v.Tax)
	assert.Equal(t, "$322.92", v.Total)
	assert.Empty(t, v.Nudge)
}

func TestPage(t *testing.T) {
	c := newController(t, catalog.SampleProducts())
	ctx := context.Background()

	_, err := c.AddToCart(ctx, "2")
	require.NoError(t, err)
	_, err = c.ToggleWishlist(ctx, "3")
	require.NoError(t, err)
	snap, err := c.OpenCart(ctx)
	require.NoError(t, err)

	page := NewPage(snap)
	assert.Equal(t, c.ID(), page.SessionID)
	assert.Equal(t, 1, page.Header.CartItemCount)
	assert.Equal(t, 1, page.Header.WishlistCount)
	assert.True(t, page.Cart.Open)

	for _, card := range page.Catalog.Products {
		assert.Equal(t, card.ID == "3", card.Wishlisted, "product %s", card.ID)
	}
}
