// Package core holds the dashboard domain model and currency normalization.
//
// Sheet cells are user-edited: amounts arrive as "Rp 50.000", "1.234,56",
// "1,234.56" or plain digits, and frequently as blanks or stray text. The
// parser here resolves the separator ambiguity and coerces anything
// unresolvable to zero, never an error.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseCurrency normalizes a loosely formatted currency string into an amount.
// It keeps only digits and the characters `.,-`, disambiguates the decimal
// separator by its last occurrence (Indonesian 1.234,56 vs US 1,234.56), and
// returns 0 for anything that still fails to parse. Pure and deterministic.
func ParseCurrency(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			b.WriteByte(byte(r))
		}
	}
	s := b.String()
	if s == "" {
		return 0
	}

	lastComma := strings.LastIndexByte(s, ',')
	lastDot := strings.LastIndexByte(s, '.')
	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			// Indonesian style: dots group thousands, comma marks decimals.
			s = keepDecimalMark(strings.ReplaceAll(s, ".", ""), ',')
		} else {
			s = keepDecimalMark(strings.ReplaceAll(s, ",", ""), '.')
		}
	case lastComma >= 0:
		s = resolveLoneSeparator(s, ',')
	case lastDot >= 0:
		s = resolveLoneSeparator(s, '.')
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}

// keepDecimalMark turns the last occurrence of sep into the decimal point and
// drops any earlier ones as grouping marks.
func keepDecimalMark(s string, sep byte) string {
	last := strings.LastIndexByte(s, sep)
	if last < 0 {
		return s
	}
	head := strings.ReplaceAll(s[:last], string(sep), "")
	return head + "." + s[last+1:]
}

// resolveLoneSeparator handles strings carrying only one kind of separator.
// Repeated separators are grouping marks ("1.234.567"). A single separator
// followed by exactly three digits reads as a thousands mark ("50.000"),
// otherwise it is the decimal point ("1234,56").
func resolveLoneSeparator(s string, sep byte) string {
	if strings.Count(s, string(sep)) > 1 {
		return strings.ReplaceAll(s, string(sep), "")
	}
	i := strings.IndexByte(s, sep)
	frac := s[i+1:]
	if len(frac) == 3 && allDigits(frac) {
		return s[:i] + frac
	}
	return s[:i] + "." + frac
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
