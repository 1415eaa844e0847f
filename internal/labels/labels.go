// Package labels normalizes authoritative center labels for matching.
// Center assignment is exact and case-sensitive by default; deployments
// whose labels arrive with inconsistent casing or accents can opt into
// folding both sides of the comparison with Fold.
package labels

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold returns a lowercase, accent-stripped version of s suitable for
// tolerant label comparison ("MEDELLÍN" -> "medellin"). Whitespace is
// trimmed; interior spacing is preserved. If the transform fails on
// malformed input, the lowercased original is returned so a bad label
// degrades to a non-match rather than an error.
//
// The transformer chain is stateful, so it is built per call; Fold is
// safe for concurrent use.
func Fold(s string) string {
	s = strings.TrimSpace(s)
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(folder, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}
