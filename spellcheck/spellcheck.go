// Package spellcheck provides dictionary-backed spelling correction,
// built on a bktree.Tree keyed by Levenshtein distance.
package spellcheck

import (
	"lexdist/bktree"
	"lexdist/levenshtein"
	"lexdist/metric"
)

// Suggestion is a candidate correction and its distance from the
// misspelled word.
type Suggestion struct {
	Word     string
	Distance int
}

// SpellChecker is the capability search.Provider needs to normalize
// query terms against a known vocabulary before ranking results.
type SpellChecker interface {
	CheckSpelling(word string) bool
	TryFixSpelling(word string) (string, bool)
	Suggestions(word string, limit int) []Suggestion
}

// NullChecker treats every word as correctly spelled. It's the
// SpellChecker a search.Provider falls back to when no vocabulary was
// supplied, so spell-normalization becomes a no-op instead of a
// required step.
type NullChecker struct{}

func (NullChecker) CheckSpelling(string) bool                 { return true }
func (NullChecker) TryFixSpelling(word string) (string, bool) { return word, true }
func (NullChecker) Suggestions(string, int) []Suggestion      { return nil }

// Checker is a bktree-backed SpellChecker over a fixed vocabulary.
type Checker struct {
	tree      *bktree.Tree[string, int]
	tolerance metric.MaxDistance[string, int]
}

// New builds a Checker over words, comparing and distancing them under
// opts, and capping correction search at tolerance.
func New(words []string, opts levenshtein.Options, tolerance metric.MaxDistance[string, int]) *Checker {
	tree := bktree.New[string, int](levenshtein.StringMetric(opts))
	for _, w := range words {
		tree.Insert(w)
	}
	return &Checker{tree: tree, tolerance: tolerance}
}

// NewDefault builds a Checker with ordinal comparison and a tolerance
// of one edit per four characters of the query word.
func NewDefault(words []string) *Checker {
	return New(words, levenshtein.DefaultOptions(), metric.TextRatioMaxDistance(0.25))
}

// Size returns the number of words in the vocabulary.
func (c *Checker) Size() int { return c.tree.Size() }

// CheckSpelling reports whether word is in the vocabulary.
func (c *Checker) CheckSpelling(word string) bool {
	return c.tree.Contains(word)
}

// TryFixSpelling returns word unchanged if already correct, otherwise
// the closest vocabulary entry within tolerance. The second result
// reports whether a usable spelling — original or corrected — was
// found.
func (c *Checker) TryFixSpelling(word string) (string, bool) {
	if c.tree.Contains(word) {
		return word, true
	}
	r, ok := c.tree.Find(word, c.tolerance.Max(word))
	if !ok {
		return word, false
	}
	return r.Value, true
}

// Suggestions returns every vocabulary entry within tolerance of word,
// ranked by ascending distance and capped at limit (0 for no cap).
func (c *Checker) Suggestions(word string, limit int) []Suggestion {
	results := c.tree.FindAll(word, c.tolerance.Max(word))
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	out := make([]Suggestion, len(results))
	for i, r := range results {
		out[i] = Suggestion{Word: r.Value, Distance: r.Distance}
	}
	return out
}
