package services

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes to NFD, drops combining marks, and recomposes.
// Composed accented characters lose their diacritics; non-Latin scripts
// without combining marks pass through untouched.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases text, strips accents, removes punctuation and
// collapses whitespace. Idempotent, pure, never fails.
func Normalize(text string) string {
	text = strings.ToLower(text)

	if stripped, _, err := transform.String(stripAccents, text); err == nil {
		text = stripped
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize splits normalized text on whitespace. No stemming, no stop words.
func Tokenize(normalized string) []string {
	return strings.Fields(normalized)
}
