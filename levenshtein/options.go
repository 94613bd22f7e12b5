package levenshtein

import (
	"lexdist/comparer"
	"lexdist/edit"
	"lexdist/metric"
)

// Options configures every string-level convenience function. Every
// one of them — Distance, Ratio, Match, Matches, Count, IsMatch, and
// their *WithOptions counterparts — routes through the *WithOptions
// form with DefaultOptions() filled in for the omitted fields, so a
// caller can never observe Count and Matches disagreeing about what
// counts as a match.
type Options struct {
	// Comparer decides character equivalence. comparer.Ordinal (the
	// default) compares runes exactly; a comparer.TextFolder such as
	// comparer.InvariantIgnoreCase folds both operands before comparing,
	// so multi-rune folds (German "ß" to "ss") are handled correctly
	// instead of failing a per-rune equality check. Only the Fold of a
	// TextFolder is applied: the comparer's own Equal is not called and
	// the folded runes are compared exactly, so a TextComparer that is
	// not a TextFolder behaves like comparer.Ordinal here.
	Comparer comparer.TextComparer
	// Costs weights deletions, insertions, and substitutions.
	Costs metric.Costs[int]
	// MaxDistance caps how far a match may be from a perfect alignment.
	// Nil means "no cap, only strictly-improving matches, stop at the
	// first zero-distance one".
	MaxDistance *int
}

// DefaultOptions is ordinal comparison with unit costs and no distance
// cap.
func DefaultOptions() Options {
	return Options{Comparer: comparer.Ordinal, Costs: metric.DefaultCosts[int]()}
}

// canonicalize folds s (if cmp is a TextFolder) and returns it as
// runes, ready to compare with comparer.Ordinal at the rune level —
// folding happens once per whole string rather than per DP cell.
func canonicalize(s string, cmp comparer.TextComparer) []rune {
	if folder, ok := cmp.(comparer.TextFolder); ok {
		s = folder.Fold(s)
	}
	return []rune(s)
}

func resolveOptions(opts Options) Options {
	if opts.Comparer == nil {
		opts.Comparer = comparer.Ordinal
	}
	var zeroCosts metric.Costs[int]
	if opts.Costs == zeroCosts {
		opts.Costs = metric.DefaultCosts[int]()
	}
	return opts
}

// DistanceWithOptions computes the full-match edit distance between a
// and b.
func DistanceWithOptions(a, b string, opts Options) int {
	opts = resolveOptions(opts)
	ra, rb := canonicalize(a, opts.Comparer), canonicalize(b, opts.Comparer)
	return DistanceSeq(ra, rb, comparer.Ordinal, opts.Costs)
}

// SubsequenceDistanceWithOptions computes the minimum full-match
// distance between pattern and any contiguous substring of text.
func SubsequenceDistanceWithOptions(pattern, text string, opts Options) int {
	opts = resolveOptions(opts)
	rp, rt := canonicalize(pattern, opts.Comparer), canonicalize(text, opts.Comparer)
	return SubsequenceDistanceSeq(rp, rt, comparer.Ordinal, opts.Costs)
}

// RatioWithOptions scores similarity between a and b in [0,1].
func RatioWithOptions(a, b string, opts Options) float64 {
	opts = resolveOptions(opts)
	ra, rb := canonicalize(a, opts.Comparer), canonicalize(b, opts.Comparer)
	return RatioSeq(ra, rb, comparer.Ordinal, opts.Costs)
}

// SubsequenceRatioWithOptions scores how well pattern matches somewhere
// inside text, in [0,1].
func SubsequenceRatioWithOptions(pattern, text string, opts Options) float64 {
	opts = resolveOptions(opts)
	rp, rt := canonicalize(pattern, opts.Comparer), canonicalize(text, opts.Comparer)
	return SubsequenceRatioSeq(rp, rt, comparer.Ordinal, opts.Costs)
}

// IsFullMatchWithOptions reports whether the full-match distance
// between a and b is within maxDistance.
func IsFullMatchWithOptions(a, b string, maxDistance int, opts Options) bool {
	opts = resolveOptions(opts)
	ra, rb := canonicalize(a, opts.Comparer), canonicalize(b, opts.Comparer)
	return IsFullMatchSeq(ra, rb, comparer.Ordinal, opts.Costs, maxDistance)
}

// FullMatchWithOptions returns the edit trace for the whole-string
// alignment of a against b.
func FullMatchWithOptions(a, b string, opts Options) edit.Trace {
	opts = resolveOptions(opts)
	ra, rb := canonicalize(a, opts.Comparer), canonicalize(b, opts.Comparer)
	return FullMatchSeq(ra, rb, comparer.Ordinal, opts.Costs)
}

// MatchWithOptions returns the leftmost qualifying match of pattern
// within text.
func MatchWithOptions(pattern, text string, opts Options) (MatchResult[int], bool) {
	opts = resolveOptions(opts)
	rp, rt := canonicalize(pattern, opts.Comparer), canonicalize(text, opts.Comparer)
	return MatchSeq(rp, rt, comparer.Ordinal, opts.Costs, opts.MaxDistance)
}

// LastMatchWithOptions returns the rightmost qualifying match of
// pattern within text.
func LastMatchWithOptions(pattern, text string, opts Options) (MatchResult[int], bool) {
	opts = resolveOptions(opts)
	rp, rt := canonicalize(pattern, opts.Comparer), canonicalize(text, opts.Comparer)
	return LastMatchSeq(rp, rt, comparer.Ordinal, opts.Costs, opts.MaxDistance)
}

// MatchesWithOptions returns every qualifying match of pattern within
// text as an eager Collection.
func MatchesWithOptions(pattern, text string, opts Options) *Collection[int] {
	opts = resolveOptions(opts)
	rp, rt := canonicalize(pattern, opts.Comparer), canonicalize(text, opts.Comparer)
	return MatchesSeq(rp, rt, comparer.Ordinal, opts.Costs, opts.MaxDistance)
}

// EnumerateMatchesWithOptions returns every qualifying match of
// pattern within text as a lazy Iterator.
func EnumerateMatchesWithOptions(pattern, text string, opts Options) *Iterator[int] {
	opts = resolveOptions(opts)
	rp, rt := canonicalize(pattern, opts.Comparer), canonicalize(text, opts.Comparer)
	return EnumerateMatchesSeq(rp, rt, comparer.Ordinal, opts.Costs, opts.MaxDistance)
}

// CountWithOptions reports how many matches MatchesWithOptions would
// return.
func CountWithOptions(pattern, text string, opts Options) int {
	return MatchesWithOptions(pattern, text, opts).Len()
}

// IsMatchWithOptions reports whether pattern matches anywhere in text
// within opts.MaxDistance (0 if unset, meaning an exact substring
// match).
func IsMatchWithOptions(pattern, text string, opts Options) bool {
	opts = resolveOptions(opts)
	max := 0
	if opts.MaxDistance != nil {
		max = *opts.MaxDistance
	}
	opts.MaxDistance = &max
	_, ok := MatchWithOptions(pattern, text, opts)
	return ok
}
