package finance

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount as whole US dollars with thousands
// separators, e.g. -12500.75 -> "-$12,501". Rounding to the nearest whole
// unit happens here, at the display edge, never inside the engine.
func FormatCurrency(amount decimal.Decimal) string {
	negative := amount.Sign() < 0
	whole := amount.Abs().Round(0).IntPart()

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if negative {
		return "-$" + b.String()
	}
	return "$" + b.String()
}

// FormatCompactCurrency renders an amount in the dashboard's compact form:
// millions as "1.5M", thousands as "2.3K", smaller magnitudes as plain whole
// units.
func FormatCompactCurrency(amount decimal.Decimal) string {
	sign := ""
	if amount.Sign() < 0 {
		sign = "-"
	}
	abs := amount.Abs()

	million := decimal.NewFromInt(1_000_000)
	thousand := decimal.NewFromInt(1_000)

	switch {
	case abs.GreaterThanOrEqual(million):
		return sign + abs.Div(million).StringFixed(1) + "M"
	case abs.GreaterThanOrEqual(thousand):
		return sign + abs.Div(thousand).StringFixed(1) + "K"
	default:
		return sign + abs.Round(0).String()
	}
}
