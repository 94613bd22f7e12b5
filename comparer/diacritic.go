package comparer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// latinFoldMap covers the multi-rune Latin folds canonical decomposition
// alone won't produce: ligatures, the German sharp s, and the Turkish
// dotless/dotted I pair (NFD has no decomposition for the dotless ı, and
// the dotted İ is mapped here before NFD would split it into I plus a
// combining dot).
var latinFoldMap = map[rune]string{
	'ß': "ss",
	'æ': "ae", 'Æ': "ae",
	'œ': "oe", 'Œ': "oe",
	'ı': "i", 'İ': "i",
	'ø': "o", 'Ø': "o",
	'ł': "l", 'Ł': "l",
	'đ': "d", 'Đ': "d",
	'þ': "th", 'Þ': "th",
	'ð': "d", 'Ð': "d",
}

type diacriticFold struct{}

func (diacriticFold) Equal(a, b rune) bool {
	if a == b {
		return true
	}
	return diacriticFold{}.Fold(string(a)) == diacriticFold{}.Fold(string(b))
}

func (diacriticFold) EqualString(a, b string) bool {
	if a == b {
		return true
	}
	return diacriticFold{}.Fold(a) == diacriticFold{}.Fold(b)
}

// Fold strips Latin diacritics and folds the result to lowercase: accented
// and ligature letters decompose to their closest plain-ASCII equivalent,
// and combining marks are dropped. Non-Latin text decomposes as far as NFD
// allows and otherwise passes through unchanged.
func (diacriticFold) Fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if ascii, ok := latinFoldMap[r]; ok {
			b.WriteString(ascii)
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	decomposed := norm.NFD.String(b.String())

	var out strings.Builder
	out.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}

// DiacriticFold folds Latin diacritics and ligatures to their closest
// plain-ASCII letters before comparing case-insensitively — "café" and
// "CAFE" compare equal, as do "naïve" and "naive". Unlike
// InvariantIgnoreCase, it is lossy: distinct accented letters that share
// a base letter become indistinguishable.
var DiacriticFold TextFolder = diacriticFold{}
