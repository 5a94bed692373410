package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParseCents converts a decimal amount string to cents.
// "50", "50.5" and "50.00" are all accepted; anything with more than
// two fractional digits is rejected so stored values stay exact.
func ParseCents(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	shifted := d.Shift(2)
	if !shifted.IsInteger() {
		return 0, fmt.Errorf("amount %q has more than 2 decimal places", s)
	}
	return shifted.IntPart(), nil
}

// FormatCents renders cents as a fixed two-decimal string, e.g. 1234 -> "12.34".
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
