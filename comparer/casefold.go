package comparer

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// TextFolder additionally exposes the whole-string fold a TextComparer
// applies, so callers on a hot path (the Levenshtein string overloads)
// can fold once up front and then compare folded runes with Ordinal,
// instead of paying a per-rune folding cost inside the DP kernel.
type TextFolder interface {
	TextComparer
	Fold(s string) string
}

type caseFold struct {
	caser     cases.Caser
	decompose bool
}

func (c caseFold) Equal(a, b rune) bool {
	if a == b {
		return true
	}
	return c.Fold(string(a)) == c.Fold(string(b))
}

func (c caseFold) EqualString(a, b string) bool {
	if a == b {
		return true
	}
	return c.Fold(a) == c.Fold(b)
}

func (c caseFold) Fold(s string) string {
	if c.decompose {
		s = norm.NFD.String(s)
	}
	return c.caser.String(s)
}

// InvariantIgnoreCase folds case using Unicode's locale-independent
// caseless-matching rule, after canonical decomposition, so
// canonically equivalent accented forms fold identically regardless of
// precomposed vs. decomposed input encoding.
var InvariantIgnoreCase TextFolder = caseFold{caser: cases.Fold(), decompose: true}

// CurrentCultureIgnoreCase folds case the way the given locale would.
// Go has no ambient OS locale the way a desktop runtime does, so the
// caller supplies the tag explicitly; language.Und applies plain Unicode
// lower-casing with no decomposition pass. It lower-cases rather than
// case-folds, so unlike InvariantIgnoreCase it keeps "ß" and "ss"
// distinct. Locale sensitivity
// matters for languages with special casing rules — Turkish's dotted
// and dotless I being the canonical example.
func CurrentCultureIgnoreCase(tag language.Tag) TextFolder {
	return caseFold{caser: cases.Lower(tag)}
}
