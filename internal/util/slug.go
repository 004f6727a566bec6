package util

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldAccents decomposes characters and drops the combining marks, so
// "Café" becomes "Cafe". A chain holds state, so build one per call.
func foldAccents() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Slugify turns a file stem into a lowercase, hyphen separated name that is
// safe to use in output file names, e.g. "Run 3 (Café)" -> "run-3-cafe".
func Slugify(s string) string {
	return strings.Join(SlugWords(s), "-")
}

// SlugWords returns the lowercase ASCII letter and digit runs of s after
// folding accents. Returns nil when s has none.
func SlugWords(s string) []string {
	folded, _, err := transform.String(foldAccents(), strings.ToLower(s))
	if err != nil {
		folded = strings.ToLower(s)
	}

	words := strings.FieldsFunc(folded, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	if len(words) == 0 {
		return nil
	}
	return words
}
