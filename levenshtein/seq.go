// Package levenshtein implements the generic Levenshtein edit-distance
// engine: distance and subsequence-distance computation, ratio scoring,
// and edit-trace-backed match extraction, over any element type with an
// explicit comparer. A string-specific convenience layer sits on top
// (see Options, Distance, Match, and friends).
package levenshtein

import (
	"lexdist/comparer"
	"lexdist/edit"
	"lexdist/metric"
)

// DistanceSeq computes the full-match edit distance between a and b
// under the given comparer and unit costs.
func DistanceSeq[E any, D metric.Numeric](a, b []E, cmp comparer.Comparer[E], costs metric.Costs[D]) D {
	return distanceKernel(a, b, cmp, costs, fullMatch)
}

// SubsequenceDistanceSeq computes the minimum full-match distance
// between pattern and any contiguous sub-slice of text.
func SubsequenceDistanceSeq[E any, D metric.Numeric](pattern, text []E, cmp comparer.Comparer[E], costs metric.Costs[D]) D {
	return distanceKernel(pattern, text, cmp, costs, subsequence)
}

// RatioSeq scores similarity in [0,1]: 1 when a and b are identical
// under cmp, trending to 0 as the weighted distance approaches the
// longer sequence's own deletion cost.
func RatioSeq[E any, D metric.Numeric](a, b []E, cmp comparer.Comparer[E], costs metric.Costs[D]) float64 {
	dist := DistanceSeq(a, b, cmp, costs)
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1
	}
	worst := float64(maxLen) * float64(costs.Deletion)
	if worst <= 0 {
		return 1
	}
	ratio := 1 - float64(dist)/worst
	if ratio < 0 {
		ratio = 0
	}
	return ratio
}

// SubsequenceRatioSeq scores how well pattern matches somewhere inside
// text, in [0,1]: 1 when pattern occurs verbatim as a contiguous
// sub-slice, trending to 0 as the best subsequence alignment's weighted
// distance approaches the pattern's own deletion cost.
func SubsequenceRatioSeq[E any, D metric.Numeric](pattern, text []E, cmp comparer.Comparer[E], costs metric.Costs[D]) float64 {
	dist := SubsequenceDistanceSeq(pattern, text, cmp, costs)
	n := len(pattern)
	if n == 0 {
		return 1
	}
	worst := float64(n) * float64(costs.Deletion)
	if worst <= 0 {
		return 1
	}
	ratio := 1 - float64(dist)/worst
	if ratio < 0 {
		ratio = 0
	}
	return ratio
}

// IsFullMatchSeq reports whether the full-match distance between a and
// b is within maxDistance.
func IsFullMatchSeq[E any, D metric.Numeric](a, b []E, cmp comparer.Comparer[E], costs metric.Costs[D], maxDistance D) bool {
	return DistanceSeq(a, b, cmp, costs) <= maxDistance
}

// FullMatchSeq returns the full edit trace between a and b: how many
// deletions, insertions, and substitutions the optimal alignment of the
// whole of a against the whole of b used.
func FullMatchSeq[E any, D metric.Numeric](a, b []E, cmp comparer.Comparer[E], costs metric.Costs[D]) edit.Trace {
	buf := traceKernel(a, b, cmp, costs, fullMatch)
	defer buf.Release()
	row := buf.Slice()
	return row[len(b)]
}

func computeGroups[E any, D metric.Numeric](pattern, text []E, cmp comparer.Comparer[E], costs metric.Costs[D]) []candidate {
	buf := traceKernel(pattern, text, cmp, costs, subsequence)
	defer buf.Release()
	return groupCandidates(buf.Slice(), len(pattern))
}

// MatchSeq returns the leftmost qualifying match of pattern within
// text, or false if none qualifies. With a nil maxDistance it returns
// the leftmost candidate with the lowest distance: the last of the
// strictly-improving candidates, which stop at the first exact hit.
func MatchSeq[E any, D metric.Numeric](pattern, text []E, cmp comparer.Comparer[E], costs metric.Costs[D], maxDistance *D) (MatchResult[D], bool) {
	groups := computeGroups(pattern, text, cmp, costs)
	var matches []MatchResult[D]
	if maxDistance != nil {
		matches = filterWithinMax(groups, costs, *maxDistance)
	} else {
		matches = filterImproving(groups, costs)
	}
	if len(matches) == 0 {
		return MatchResult[D]{}, false
	}
	if maxDistance == nil {
		return matches[len(matches)-1], true
	}
	return matches[0], true
}

// LastMatchSeq returns the rightmost qualifying match of pattern
// within text, or false if none qualifies.
func LastMatchSeq[E any, D metric.Numeric](pattern, text []E, cmp comparer.Comparer[E], costs metric.Costs[D], maxDistance *D) (MatchResult[D], bool) {
	groups := computeGroups(pattern, text, cmp, costs)
	return bestLast(groups, costs, maxDistance)
}

// MatchesSeq returns every qualifying match of pattern within text as
// an eager Collection.
func MatchesSeq[E any, D metric.Numeric](pattern, text []E, cmp comparer.Comparer[E], costs metric.Costs[D], maxDistance *D) *Collection[D] {
	groups := computeGroups(pattern, text, cmp, costs)
	var matches []MatchResult[D]
	if maxDistance != nil {
		matches = filterWithinMax(groups, costs, *maxDistance)
	} else {
		matches = filterImproving(groups, costs)
	}
	return newCollection(matches)
}

// EnumerateMatchesSeq returns every qualifying match of pattern within
// text as a lazy, single-pass Iterator.
func EnumerateMatchesSeq[E any, D metric.Numeric](pattern, text []E, cmp comparer.Comparer[E], costs metric.Costs[D], maxDistance *D) *Iterator[D] {
	groups := computeGroups(pattern, text, cmp, costs)
	var matches []MatchResult[D]
	if maxDistance != nil {
		matches = filterWithinMax(groups, costs, *maxDistance)
	} else {
		matches = filterImproving(groups, costs)
	}
	return newIterator(matches)
}

// CountSeq reports how many matches MatchesSeq would return. It is
// computed from MatchesSeq itself, so the two can never disagree about
// what counts as a match.
func CountSeq[E any, D metric.Numeric](pattern, text []E, cmp comparer.Comparer[E], costs metric.Costs[D], maxDistance *D) int {
	return MatchesSeq(pattern, text, cmp, costs, maxDistance).Len()
}

// IsMatchSeq reports whether pattern matches anywhere in text within
// maxDistance.
func IsMatchSeq[E any, D metric.Numeric](pattern, text []E, cmp comparer.Comparer[E], costs metric.Costs[D], maxDistance D) bool {
	_, ok := MatchSeq(pattern, text, cmp, costs, &maxDistance)
	return ok
}
