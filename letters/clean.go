package letters

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldStroke maps Latin letters that carry a stroke instead of a combining
// mark, so canonical decomposition leaves them intact.
func foldStroke(r rune) rune {
	switch r {
	case 'đ', 'ð':
		return 'd'
	case 'Đ', 'Ð':
		return 'D'
	case 'ø':
		return 'o'
	case 'Ø':
		return 'O'
	case 'ł':
		return 'l'
	case 'Ł':
		return 'L'
	}

	return r
}

// CleanName projects raw onto the A..Z alphabet: diacritics removed,
// uppercased, every other character dropped, order preserved.
// Transformers and casers are stateful, so each call builds its own.
// Complexity: O(len(raw)).
func CleanName(raw string) string {
	if raw == "" {
		return ""
	}

	// 1) Decompose, drop combining marks, fold stroked letters, recompose.
	strip := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Map(foldStroke),
		norm.NFC,
	)
	folded, _, err := transform.String(strip, raw)
	if err != nil {
		// Fall back to the raw input; the alphabet filter below still applies.
		folded = raw
	}

	// 2) Full uppercase mapping (ß → SS).
	upper := cases.Upper(language.Und).String(folded)

	// 3) Keep A..Z only.
	var b strings.Builder
	b.Grow(len(upper))
	for _, r := range upper {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// IsVowel reports whether r is one of A, E, I, O, U. Y is a consonant.
func IsVowel(r rune) bool {
	switch r {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}

	return false
}
