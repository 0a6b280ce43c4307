// Package slug turns titles into URL and filename friendly identifiers.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const fallback = "untitled"

// Make lowercases s, strips diacritics and joins every run of letters or
// digits with a single hyphen. "Café Déjà Vu!" becomes "cafe-deja-vu".
func Make(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingSep = false
			continue
		}
		pendingSep = true
	}

	if b.Len() == 0 {
		return fallback
	}
	return b.String()
}
