package domain

import "math"

// Summary is the derived order arithmetic for a set of cart lines. It is
// never stored alongside the cart: every caller recomputes it from the full
// line set through Summarize, so the displayed total and the submitted total
// are always the same function of the same lines.
type Summary struct {
	Subtotal  int64 `json:"subtotal"`
	Tax       int64 `json:"tax"`
	Total     int64 `json:"total"`
	ItemCount int   `json:"itemCount"`
}

// Summarize computes the summary for the given lines under the given tax
// rate. Subtotal and item count are exact integer sums. Tax is
// subtotal × rate rounded to the nearest unit, half away from zero; with the
// non-negative subtotals of this domain that is round-half-up. Total is
// subtotal plus tax.
func Summarize(lines []Line, taxRate float64) Summary {
	var s Summary
	for _, line := range lines {
		s.Subtotal += line.Product.Price * int64(line.Quantity)
		s.ItemCount += line.Quantity
	}
	s.Tax = roundNearest(float64(s.Subtotal) * taxRate)
	s.Total = s.Subtotal + s.Tax
	return s
}

func roundNearest(x float64) int64 {
	return int64(math.Round(x))
}
