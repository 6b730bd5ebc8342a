package money

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Cents is an amount in minor currency units. Ledger arithmetic stays in
// Cents; conversion to decimal happens only when values are displayed or
// decoded from outside input.
type Cents int64

const Zero Cents = 0

var hundred = decimal.NewFromInt(100)

// FromDecimal converts a decimal currency amount to Cents, rounding half away
// from zero to the nearest cent.
func FromDecimal(d decimal.Decimal) Cents {
	return Cents(d.Mul(hundred).Round(0).IntPart())
}

// Parse reads a decimal string such as "9.99".
func Parse(s string) (Cents, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid amount %q", s)
	}
	return FromDecimal(d), nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Cents {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// MulRate multiplies by rate and rounds to the nearest cent.
func (c Cents) MulRate(rate decimal.Decimal) Cents {
	return Cents(decimal.NewFromInt(int64(c)).Mul(rate).Round(0).IntPart())
}

func (c Cents) Times(n int) Cents {
	return c * Cents(n)
}

// StringFixed renders the amount with exactly two decimals, e.g. "477.00".
func (c Cents) StringFixed() string {
	return c.Decimal().StringFixed(2)
}

// Format renders the amount for display, e.g. "$38.16".
func (c Cents) Format() string {
	if c < 0 {
		return "-$" + (-c).StringFixed()
	}
	return "$" + c.StringFixed()
}

func (c Cents) String() string {
	return c.StringFixed()
}

// MarshalJSON encodes the amount as an unquoted decimal number.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.StringFixed()), nil
}

func (c *Cents) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return errors.Wrap(err, "decode amount")
	}
	*c = FromDecimal(d)
	return nil
}

// Max returns the larger of a and b.
func Max(a, b Cents) Cents {
	if a > b {
		return a
	}
	return b
}
