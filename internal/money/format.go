package money

import (
	"fmt"
	"strings"
)

// Format: iznos u hrvatskom zapisu, npr. 1234.5 -> "1.234,50"
func Format(v float64) string {
	s := fmt.Sprintf("%.2f", v)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	parts := strings.SplitN(s, ".", 2)
	intPart, decPart := parts[0], parts[1]

	// Točka kao separator tisućica
	var b strings.Builder
	pre := len(intPart) % 3
	if pre > 0 {
		b.WriteString(intPart[:pre])
	}
	for i := pre; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(intPart[i : i+3])
	}

	out := b.String() + "," + decPart
	if neg {
		out = "-" + out
	}
	return out
}

// FormatEUR: iznos s oznakom valute, npr. "1.234,50 EUR"
func FormatEUR(v float64) string {
	return Format(v) + " EUR"
}
