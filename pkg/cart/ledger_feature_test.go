package cart

import (
	"context"
	"fmt"
	"testing"

	"github.com/cucumber/godog"

	"julianmorley.ca/con-plar/shopvibe/pkg/models"
	"julianmorley.ca/con-plar/shopvibe/pkg/money"
)

type ledgerTestContext struct {
	ledger *Ledger
}

func (c *ledgerTestContext) anEmptyCart() error {
	c.ledger = NewLedger()
	return nil
}

func (c *ledgerTestContext) iAddProductPriced(id, price string) error {
	amount, err := money.Parse(price)
	if err != nil {
		return err
	}
	c.ledger.AddItem(models.Product{ID: id, Name: "Product " + id, Price: amount, InStock: true})
	return nil
}

func (c *ledgerTestContext) iSetTheQuantityOfProductTo(id string, quantity int) error {
	c.ledger.SetQuantity(id, quantity)
	return nil
}

func (c *ledgerTestContext) iRemoveProduct(id string) error {
	c.ledger.RemoveItem(id)
	return nil
}

func (c *ledgerTestContext) theCartHasLineItems(n int) error {
	if c.ledger.Len() != n {
		return fmt.Errorf("expected %d line items, got %d", n, c.ledger.Len())
	}
	return nil
}

func (c *ledgerTestContext) productHasQuantity(id string, quantity int) error {
	if got := c.ledger.Quantity(id); got != quantity {
		return fmt.Errorf("expected product %s quantity %d, got %d", id, quantity, got)
	}
	return nil
}

func expectAmount(name string, got money.Cents, want string) error {
	amount, err := money.Parse(want)
	if err != nil {
		return err
	}
	if got != amount {
		return fmt.Errorf("expected %s %s, got %s", name, amount, got)
	}
	return nil
}

func (c *ledgerTestContext) theSubtotalIs(want string) error {
	return expectAmount("subtotal", c.ledger.Summary().Subtotal, want)
}

func (c *ledgerTestContext) shippingIs(want string) error {
	return expectAmount("shipping", c.ledger.Summary().Shipping, want)
}

func (c *ledgerTestContext) taxIs(want string) error {
	return expectAmount("tax", c.ledger.Summary().Tax, want)
}

func (c *ledgerTestContext) theTotalIs(want string) error {
	return expectAmount("total", c.ledger.Summary().Total, want)
}

func (c *ledgerTestContext) theAmountToFreeShippingIs(want string) error {
	return expectAmount("amount to free shipping", c.ledger.Summary().AmountToFreeShipping, want)
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &ledgerTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.ledger = NewLedger()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an empty cart$`, tc.anEmptyCart)

	// When steps
	ctx.Step(`^I add product "([^"]*)" priced (\d+\.\d{2})$`, tc.iAddProductPriced)
	ctx.Step(`^I set the quantity of product "([^"]*)" to (-?\d+)$`, tc.iSetTheQuantityOfProductTo)
	ctx.Step(`^I remove product "([^"]*)"$`, tc.iRemoveProduct)

	// Then steps
	ctx.Step(`^the cart has (\d+) line items?$`, tc.theCartHasLineItems)
	ctx.Step(`^product "([^"]*)" has quantity (\d+)$`, tc.productHasQuantity)
	ctx.Step(`^the subtotal is (\d+\.\d{2})$`, tc.theSubtotalIs)
	ctx.Step(`^shipping is (\d+\.\d{2})$`, tc.shippingIs)
	ctx.Step(`^tax is (\d+\.\d{2})$`, tc.taxIs)
	ctx.Step(`^the total is (\d+\.\d{2})$`, tc.theTotalIs)
	ctx.Step(`^the amount to free shipping is (\d+\.\d{2})$`, tc.theAmountToFreeShippingIs)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/ledger.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
