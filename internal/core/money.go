// Package core holds the wallet domain: transactions, categories, and the
// pure aggregation and formatting helpers the rest of the app builds on.
//
// This file contains functions for parsing rupiah amounts from user input
// and formatting them for display in the id-ID convention.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseAmount converts user input to a whole-rupiah amount.
//
// It accepts plain digits ("50000") as well as grouped input with one
// separator kind in valid thousand positions ("50.000", "50,000",
// "1.000.000") and an optional "Rp" prefix. Amounts carry no subdivision,
// so decimal-looking input ("1,5", "12.34") is rejected rather than
// collapsed into a larger number.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "Rp")
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}

	sep := ""
	switch {
	case strings.ContainsRune(s, '.') && strings.ContainsRune(s, ','):
		return 0, ErrInvalidAmount
	case strings.ContainsRune(s, '.'):
		sep = "."
	case strings.ContainsRune(s, ','):
		sep = ","
	}

	digits := s
	if sep != "" {
		// First group 1-3 digits, every following group exactly 3.
		groups := strings.Split(s, sep)
		for i, g := range groups {
			if i == 0 {
				if len(g) < 1 || len(g) > 3 {
					return 0, ErrInvalidAmount
				}
			} else if len(g) != 3 {
				return 0, ErrInvalidAmount
			}
		}
		digits = strings.Join(groups, "")
	}

	for _, r := range digits {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return n, nil
}

// FormatNumber renders n with id-ID thousand grouping ("50000" -> "50.000").
func FormatNumber(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}

	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
		if len(s) > lead {
			b.WriteByte('.')
		}
	}
	for i := lead; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// FormatRupiah renders n as a display amount, e.g. "Rp 50.000".
func FormatRupiah(n int64) string {
	return "Rp " + FormatNumber(n)
}
