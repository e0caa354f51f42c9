package util

import (
	"fmt"
	"math"
	"strconv"
)

// Round rounds to two decimal places for display.
func Round(num float64) float64 {
	return math.Round(num*100) / 100
}

// FormatHours renders a fractional hour count like "7.5" or "8".
func FormatHours(hours float64) string {
	return strconv.FormatFloat(Round(hours), 'f', -1, 64)
}

// FormatPercentage renders a percentage with two decimals, or "-" when the
// value is undefined (no judged days yet).
func FormatPercentage(pct float64) string {
	if math.IsNaN(pct) {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", pct)
}
