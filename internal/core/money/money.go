// Package money provides the monetary type and the single currency rounding
// rule used by the reporting engines.
package money

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors.
type Money = decimal.Decimal

// New creates a Money value from a float.
// WARNING: Use FromString for precise values.
func New(f float64) Money {
	return decimal.NewFromFloat(f)
}

// FromString creates a Money value from a string.
// This is the preferred method for monetary values.
func FromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// Must creates a Money value from a string, panics on error.
// Use only for constants.
func Must(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// RoundCurrency rounds to 2 decimal places, half up.
//
// Every accumulator in report aggregation is re-rounded with this function
// after each increment, so totals carry the same drift a running ledger
// would. Do not substitute per-line rounding or bankers' rounding.
func RoundCurrency(v Money) Money {
	return v.Round(2)
}

// MulRound multiplies a unit price by a quantity and rounds the result.
func MulRound(price Money, qty float64) Money {
	return RoundCurrency(price.Mul(decimal.NewFromFloat(qty)))
}
