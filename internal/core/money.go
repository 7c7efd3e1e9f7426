// Package core provides the finance domain model.
//
// Money amounts cross the API as arbitrary-precision decimals but are
// persisted as integer cents, so every aggregate is exact integer
// arithmetic.
package core

import "github.com/shopspring/decimal"

// Cents converts a decimal amount to integer cents, rounding the third
// decimal place half away from zero.
//
// Examples:
//
//	Cents(decimal.NewFromFloat(12.34))  -> 1234
//	Cents(decimal.NewFromFloat(12.345)) -> 1235
func Cents(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

// FromCents converts integer cents back to a decimal amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
