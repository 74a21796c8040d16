// Package money converts between decimal currency amounts and integer minor
// units (cents). All persisted amounts are cents; decimals exist only at the
// edges, for input coercion and display.
package money

import (
	"math"
	"strconv"
	"strings"
)

// ToCents converts a decimal amount to cents, rounding half away from zero.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromCents converts cents back to a decimal amount.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}

// FormatUSD renders cents as a display string, e.g. 123456 -> "$1,234.56".
func FormatUSD(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	dollars := cents / 100
	rem := cents % 100

	var b strings.Builder
	b.WriteString(sign)
	b.WriteByte('$')
	b.WriteString(groupThousands(strconv.FormatInt(dollars, 10)))
	b.WriteByte('.')
	if rem < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(rem, 10))
	return b.String()
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
