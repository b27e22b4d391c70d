package utils

import (
	"github.com/shopspring/decimal"
)

// MinorUnitPrecision is the number of decimal places between minor and major
// currency units (cents to euros).
const MinorUnitPrecision = 2

// FormatMinorUnits renders an amount held in minor units as a major-unit
// decimal string.
// Example: -750 returns "-7.50"
// Example: 15000 returns "150.00"
func FormatMinorUnits(amount int64) string {
	return decimal.New(amount, -MinorUnitPrecision).StringFixed(MinorUnitPrecision)
}

// FormatWithSymbol appends the currency symbol to FormatMinorUnits.
// Example: (250, "€") returns "2.50 €"
func FormatWithSymbol(amount int64, symbol string) string {
	if symbol == "" {
		return FormatMinorUnits(amount)
	}
	return FormatMinorUnits(amount) + " " + symbol
}
