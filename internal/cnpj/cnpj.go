package cnpj

import (
	"fmt"
	"regexp"
	"strings"
)

var pattern = regexp.MustCompile(`\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}`)

// Extract returns every CNPJ-shaped substring in the textual representation
// of value, in left-to-right order. Non-matching or empty input yields nil.
func Extract(value any) []string {
	if value == nil {
		return nil
	}
	return pattern.FindAllString(fmt.Sprint(value), -1)
}

// Digits strips everything but digits from a formatted CNPJ. The registry
// endpoint only accepts the bare 14-digit form.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Unique collapses duplicates while preserving first-appearance order, so a
// CNPJ repeated across the sheet is looked up exactly once and reports stay
// deterministic.
func Unique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
