package offerbuilder

import (
	"iter"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases s, strips diacritics and collapses whitespace, so that
// "Αστάρι" and "ασταρι" compare equal.
func Normalize(s string) string {
	// Transformers keep state between calls; build one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		out = strings.ToLower(s)
	}
	return strings.Join(strings.Fields(out), " ")
}

// Tokens splits a keyword blob on commas and whitespace and yields the
// normalized, non-empty tokens in input order.
func Tokens(blob string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, raw := range strings.FieldsFunc(blob, isKeywordSeparator) {
			tok := Normalize(raw)
			if tok == "" {
				continue
			}
			if !yield(tok) {
				return
			}
		}
	}
}

func isKeywordSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}
