package textmatch

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// accentFold maps composed accented vowels to their plain forms.
// The ñ is deliberately absent: it is a distinct letter in Spanish,
// not an accented n.
var accentFold = map[rune]rune{
	'á': 'a', 'é': 'e', 'í': 'i', 'ó': 'o', 'ú': 'u', 'ü': 'u',
}

// NormalizeLight trims surrounding whitespace and lowercases.
// Accents and punctuation are preserved.
func NormalizeLight(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeFull applies NormalizeLight, folds accented vowels and
// removes everything outside lowercase letters, digits, ñ and spaces.
// Question and exclamation marks, Spanish inverted ones included, are
// dropped. Interior whitespace runs collapse to a single space.
func NormalizeFull(s string) string {
	// Compose first so decomposed input ("e" + combining acute)
	// folds the same way as the precomposed form.
	t := norm.NFC.String(NormalizeLight(s))

	var b strings.Builder
	b.Grow(len(t))
	pendingSpace := false
	for _, r := range t {
		if folded, ok := accentFold[r]; ok {
			r = folded
		}
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == 'ñ':
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		case unicode.IsSpace(r):
			pendingSpace = true
		}
	}
	return b.String()
}

// Tokenize lowercases s and splits it into word runs over the accented
// Spanish alphabet. Digits and punctuation act as separators.
func Tokenize(s string) []string {
	lower := strings.ToLower(s)
	var tokens []string
	var current strings.Builder

	for _, r := range lower {
		if isSpanishLetter(r) {
			current.WriteRune(r)
		} else if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}

func isSpanishLetter(r rune) bool {
	if r >= 'a' && r <= 'z' {
		return true
	}
	switch r {
	case 'á', 'é', 'í', 'ó', 'ú', 'ü', 'ñ':
		return true
	}
	return false
}
