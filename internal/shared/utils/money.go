package utils

import "fmt"

// All monetary amounts in the system are stored as integer cents.

// CentsToDecimal converts integer cents to a decimal amount for display
// and JSON payloads.
func CentsToDecimal(cents int64) float64 {
	return float64(cents) / 100.0
}

// FormatCents renders integer cents as a currency string, e.g. "$50.00".
func FormatCents(cents int64, symbol string) string {
	if symbol == "" {
		symbol = "$"
	}
	negative := cents < 0
	if negative {
		cents = -cents
	}
	formatted := fmt.Sprintf("%s%d.%02d", symbol, cents/100, cents%100)
	if negative {
		return "-" + formatted
	}
	return formatted
}
