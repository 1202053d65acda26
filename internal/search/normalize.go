package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes text for comparison: lowercase, NFD decomposition,
// combining diacritical marks stripped. "Ténis" and "tenis" normalize to the
// same string. Idempotent; whitespace and punctuation are left alone.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	lowered := strings.ToLower(text)
	decomposed := norm.NFD.String(lowered)

	b := strings.Builder{}
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
