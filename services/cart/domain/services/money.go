package services

import (
	"strconv"
	"strings"
)

// FormatMoney renders v as a dollar amount with exactly two decimals, "." as
// the decimal separator and no grouping. A zero integer part is omitted, so
// 0.3 renders as "$.30". Rounding is half-to-even on the exact binary value.
func FormatMoney(v float64) string {
	if v < 0 {
		return "-" + FormatMoney(-v)
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if strings.HasPrefix(s, "0.") {
		s = s[1:]
	}
	return "$" + s
}

// FormatDiscount renders a discount percentage, "-" when there is none.
func FormatDiscount(percent int) string {
	if percent == 0 {
		return "-"
	}
	return strconv.Itoa(percent) + "%"
}
