package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
	billion  = decimal.NewFromInt(1_000_000_000)
)

// Format renders an amount as whole currency with thousands separators,
// e.g. $1,234,567.
func Format(d decimal.Decimal) string {
	rounded := d.Round(0)
	negative := rounded.IsNegative()
	digits := rounded.Abs().StringFixed(0)

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// FormatCompact renders large amounts in a short scale suitable for headline
// metrics, e.g. $1.2M, $3.4B; amounts under a thousand keep full precision.
func FormatCompact(d decimal.Decimal) string {
	abs := d.Abs()
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	switch {
	case abs.GreaterThanOrEqual(billion):
		return fmt.Sprintf("%s$%sB", sign, abs.Div(billion).StringFixed(1))
	case abs.GreaterThanOrEqual(million):
		return fmt.Sprintf("%s$%sM", sign, abs.Div(million).StringFixed(1))
	case abs.GreaterThanOrEqual(thousand):
		return fmt.Sprintf("%s$%sK", sign, abs.Div(thousand).StringFixed(1))
	}
	return fmt.Sprintf("%s$%s", sign, abs.StringFixed(0))
}

// FormatUnits renders an asset quantity to four decimal places.
func FormatUnits(d decimal.Decimal) string {
	return d.StringFixed(4)
}

// FormatMultiple renders an ROI-style multiplier, e.g. 2.41x.
func FormatMultiple(d decimal.Decimal) string {
	return d.StringFixed(2) + "x"
}
