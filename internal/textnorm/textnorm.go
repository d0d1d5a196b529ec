// Package textnorm normalizes free-form submission text into a comparable
// token stream. Latin text is case-folded and stripped of diacritics; Arabic
// code points pass through untouched so Arabic labels keep their shape.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks removes combining marks after canonical decomposition, except
// inside the Arabic block where marks carry meaning.
var stripMarks = transform.Chain(
	norm.NFD,
	runes.Remove(runes.Predicate(isStrippableMark)),
	norm.NFC,
)

func isStrippableMark(r rune) bool {
	return unicode.Is(unicode.Mn, r) && !unicode.Is(unicode.Arabic, r)
}

// Normalize lowercases the text, strips diacritics, and replaces every
// character outside [a-z0-9 Arabic whitespace] with a space. The result is
// single-spaced with no leading or trailing whitespace.
func Normalize(s string) string {
	return strings.Join(Tokenize(s), " ")
}

// Tokenize returns the ordered sequence of non-empty normalized tokens.
// Empty input yields an empty slice; there are no failure modes.
func Tokenize(s string) []string {
	s = strings.ToLower(s)

	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.Is(unicode.Arabic, r):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	return strings.Fields(b.String())
}

// TokenSet builds a membership set from a token sequence.
func TokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

// ContainsAll reports whether every token in want is present in the set.
// An empty want slice is vacuously contained.
func ContainsAll(set map[string]struct{}, want []string) bool {
	for _, tok := range want {
		if _, ok := set[tok]; !ok {
			return false
		}
	}
	return true
}

// ContainsAny reports whether at least one token in want is present.
func ContainsAny(set map[string]struct{}, want []string) bool {
	for _, tok := range want {
		if _, ok := set[tok]; ok {
			return true
		}
	}
	return false
}
