// Package identity derives stable keys from free-form display names.
package identity

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonLetterRegex  = regexp.MustCompile(`[^a-zA-Z\s]`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// Normalize decomposes text, strips everything that is not an ASCII letter or
// whitespace, collapses whitespace runs to a single space and trims the
// result. "  João  da Silva! " becomes "Joao da Silva".
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	t := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
	)
	ascii, _, err := transform.String(t, text)
	if err != nil {
		return ""
	}

	clean := nonLetterRegex.ReplaceAllString(ascii, "")
	clean = whitespaceRegex.ReplaceAllString(clean, " ")

	return strings.TrimSpace(clean)
}

// Slug returns the lower-case, underscore-joined key for text, e.g.
// "João da Silva" -> "joao_da_silva". The result only holds [a-z_].
// Underscores in the input count as word separators, so Slug(Slug(x)) == Slug(x).
func Slug(text string) string {
	lower := strings.ToLower(Normalize(strings.ReplaceAll(text, "_", " ")))

	noMarks, _, err := transform.String(runes.Remove(runes.In(unicode.Mn)), lower)
	if err != nil {
		return ""
	}

	slug := whitespaceRegex.ReplaceAllString(noMarks, "_")

	return strings.Trim(slug, "_")
}
