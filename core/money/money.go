// Package money provides decimal money primitives.
// All monetary amounts are rounded half-up to the cent before they are
// recorded on a quote; intermediate quantities stay at full precision.
package money

import (
	"github.com/shopspring/decimal"
)

// Currency represents a currency code
type Currency string

const (
	CurrencyAUD Currency = "AUD"
	CurrencyUSD Currency = "USD"
	CurrencyNZD Currency = "NZD"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// RoundCents rounds an amount half-up to 2 decimal places.
// Negative amounts (credit lines) carry the half-up-rounded magnitude:
// RoundCents(d.Neg()) equals RoundCents(d).Neg().
func RoundCents(d decimal.Decimal) decimal.Decimal {
	// decimal.Round rounds half away from zero, which is half-up on
	// the magnitude for either sign.
	return d.Round(2)
}

// Percent returns pct percent of base, rounded to the cent
func Percent(base decimal.Decimal, pct decimal.Decimal) decimal.Decimal {
	return RoundCents(base.Mul(pct).Div(decimal.NewFromInt(100)))
}

// MulInt multiplies a rate by an integer count, rounded to the cent
func MulInt(rate decimal.Decimal, n int) decimal.Decimal {
	return RoundCents(rate.Mul(decimal.NewFromInt(int64(n))))
}

// FromFloat converts a float rate into a decimal
func FromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// MustFromString parses a decimal literal, panicking on malformed input.
// Intended for rate table constants.
func MustFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("money: bad decimal literal: " + s)
	}
	return d
}

// Zero is the zero amount
func Zero() decimal.Decimal {
	return decimal.Zero
}

// Format renders an amount as a dollar string with exactly 2 fraction digits
func Format(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
