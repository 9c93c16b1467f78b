// Package pricing computes display prices for discounted products.
package pricing

import "strconv"

// EffectivePrice returns the price after the percentage discount is applied.
// A discount of zero or less leaves the price unchanged. No rounding is
// applied here; two-decimal formatting is a presentation concern (see Format).
func EffectivePrice(price, discountPct float64) float64 {
	if discountPct <= 0 {
		return price
	}
	return price - (price * discountPct / 100)
}

// Format renders a price with two decimal places for display.
func Format(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}
