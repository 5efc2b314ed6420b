package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeString lowercases and trims the textual form of input.
// It performs no validation and never fails.
func NormalizeString(input any) string {
	return normalize(ToText(input))
}

func normalize(s string) string {
	// Casers carry state, one per call keeps this goroutine-safe.
	lowered := cases.Lower(language.Und).String(s)
	return strings.TrimFunc(lowered, isTrimmable)
}

// unicode.IsSpace plus U+FEFF, which is commonly pasted along with addresses.
// U+0085 NEL is not trimmed.
func isTrimmable(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r) || r == '\uFEFF'
}
