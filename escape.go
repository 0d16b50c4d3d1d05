package cssjit

import (
	"fmt"
	"strconv"
	"strings"
)

// escapedChars are escaped with a backslash when a class name becomes a selector.
const escapedChars = `:/[].#(),%'"!+*&=<>?@~{};$^|` + "`\\"

// EscapeSelector escapes a raw class name for use after "." in a selector.
// It must be applied once, to the literal class attribute value.
func EscapeSelector(className string) string {
	var b strings.Builder
	b.Grow(len(className) + 8)

	for i, r := range className {
		switch {
		case i == 0 && r >= '0' && r <= '9':
			// ".2xl" is not an identifier, the digit needs a code point escape
			fmt.Fprintf(&b, `\%x `, r)
		case i == 1 && className[0] == '-' && r >= '0' && r <= '9':
			fmt.Fprintf(&b, `\%x `, r)
		case strings.ContainsRune(escapedChars, r):
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// classSelector returns ".{escaped}" for a raw class name.
func classSelector(className string) string {
	return "." + EscapeSelector(className)
}

// parseDecimal parses a plain non-negative decimal such as "2.5".
func parseDecimal(s string) (float64, bool) {
	if s == "" || s[0] == '+' || s[0] == '-' {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parseCount parses a positive integer no larger than limit.
func parseCount(s string, limit int) (int, bool) {
	if s == "" || s[0] == '+' || s[0] == '-' {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > limit {
		return 0, false
	}
	return n, true
}

// formatNumber renders f with at most four decimals and no trailing zeros.
func formatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
