// Package pricing converts between the dot-grouped price strings used in
// forms and templates (e.g. "5.950.000") and numeric values.
package pricing

import (
	"math"
	"strconv"
	"strings"
)

// Parse reads a dot-grouped price string into a number. Empty or
// non-numeric input yields nil rather than an error; callers treat that as
// "no price given".
func Parse(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	clean := strings.ReplaceAll(s, ".", "")
	value, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return nil
	}
	return &value
}

// Format renders a price with dot grouping, rounded to whole units.
// Nil and zero both render as "" — a zero-priced listing is indistinguishable
// from one with no price set. Known limitation, kept for compatibility with
// the templates that rely on it.
func Format(p *float64) string {
	if p == nil || *p == 0 {
		return ""
	}

	n := int64(math.Round(*p))
	negative := n < 0
	if negative {
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	out := strings.Join(groups, ".")
	if negative {
		out = "-" + out
	}
	return out
}
