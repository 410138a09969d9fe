package numerology

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const cipherCycle = 9

// LetterValue is the Pythagorean value of a Latin letter (A=1 ... I=9, J=1 ...).
// Anything outside A-Z, in either case, is worth 0.
func LetterValue(r rune) int {
	r = unicode.ToUpper(r)
	if r < 'A' || r > 'Z' {
		return 0
	}
	return int(r-'A')%cipherCycle + 1
}

// CJKValue is the stroke-derived value of a Han character. Characters missing
// from the dictionary fall back to (code point mod 9) + 1.
func CJKValue(r rune) int {
	if v, ok := strokeCounts[r]; ok {
		return v
	}
	return int(r)%cipherCycle + 1
}

// IsCJK reports whether r is a Han ideograph.
func IsCJK(r rune) bool {
	return unicode.Is(unicode.Han, r)
}

// RuneValue scores a single name character: Latin letters by the cipher,
// Han characters by stroke table, everything else 0.
func RuneValue(r rune) int {
	if IsCJK(r) {
		return CJKValue(r)
	}
	return LetterValue(r)
}

func isVowel(r rune) bool {
	switch unicode.ToUpper(r) {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

func isLatinLetter(r rune) bool {
	return LetterValue(r) > 0
}

// FoldName strips diacritics so that "José" scores like "Jose". Han
// characters and other scripts pass through unchanged.
func FoldName(name string) string {
	// transformers carry state, so each call builds its own chain
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		return strings.TrimSpace(name)
	}
	return strings.TrimSpace(folded)
}
