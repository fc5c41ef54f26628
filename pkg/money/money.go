// Package money holds the rules shared by every price and total column.
// Amounts are shopspring decimals stored as NUMERIC(18,2).
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits stored for every amount.
const Scale = 2

// Max is the largest amount a NUMERIC(18,2) column holds.
var Max = decimal.RequireFromString("9999999999999999.99")

var (
	ErrNegative  = errors.New("amount must not be negative")
	ErrPrecision = errors.New("amount must have at most 2 decimal places")
	ErrTooLarge  = errors.New("amount must not exceed 9999999999999999.99")
)

// ValidatePrice rejects negative amounts, amounts with more than Scale
// fractional digits and amounts above Max.
func ValidatePrice(d decimal.Decimal) error {
	if d.IsNegative() {
		return ErrNegative
	}
	if !d.Equal(d.Truncate(Scale)) {
		return ErrPrecision
	}
	return CheckRange(d)
}

// CheckRange returns ErrTooLarge when d is above Max.
func CheckRange(d decimal.Decimal) error {
	if d.GreaterThan(Max) {
		return ErrTooLarge
	}
	return nil
}

// LineTotal returns quantity × unit price rounded to Scale.
func LineTotal(quantity int32, price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt32(quantity)).Round(Scale)
}

// Format renders d with exactly Scale fractional digits, e.g. "20.00".
func Format(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}
