package levenshtein

import (
	"lexdist/edit"
	"lexdist/metric"
)

// MatchResult describes one occurrence of a pattern within a longer input,
// located within some edit-distance tolerance (spec §4.5).
type MatchResult[D metric.Numeric] struct {
	start    int
	length   int
	distance D
	trace    edit.Trace
}

// Start is the index in the input where the match begins.
func (m MatchResult[D]) Start() int { return m.start }

// Length is the number of input elements the match consumes.
func (m MatchResult[D]) Length() int { return m.length }

// End is Start()+Length(), the index just past the match.
func (m MatchResult[D]) End() int { return m.start + m.length }

// Distance is the weighted edit distance of the match.
func (m MatchResult[D]) Distance() D { return m.distance }

// Trace is the underlying edit trace the match was extracted from.
func (m MatchResult[D]) Trace() edit.Trace { return m.trace }

type candidate struct {
	tr     edit.Trace
	start  int
	length int
}

// groupCandidates walks the final trace row of a subsequence-mode DP
// pass and collapses it to one candidate per distinct start position
// (spec §4.5 steps 1-2):
//
//  1. for every row index k, derive the span it represents in the
//     input: length(k) = patternLen - deletions(k) + insertions(k),
//     start(k) = k - length(k);
//  2. group consecutive k's that share the same start and keep only the
//     one with the fewest total edits per group (ties keep the first,
//     i.e. the smallest k).
//
// The result is in ascending start order, unfiltered by distance or
// success — callers apply whichever filter fits the entry point
// (forward scan vs. last-match) as a separate pass, so grouping never
// has to know about filtering.
func groupCandidates(row []edit.Trace, patternLen int) []candidate {
	var groups []candidate
	curStart := 0
	var best candidate
	hasBest := false

	flush := func() {
		if hasBest {
			groups = append(groups, best)
		}
	}

	for k := 0; k < len(row); k++ {
		tr := row[k]
		length := patternLen - tr.Deletions() + tr.Insertions()
		if length == 0 && patternLen > 0 {
			continue
		}
		start := k - length
		if !hasBest || start != curStart {
			flush()
			curStart = start
			best = candidate{tr: tr, start: start, length: length}
			hasBest = true
			continue
		}
		if tr.TotalEdits() < best.tr.TotalEdits() {
			best = candidate{tr: tr, start: start, length: length}
		}
	}
	flush()
	return groups
}

// filterWithinMax keeps every successful candidate within maxDistance,
// in ascending start order.
func filterWithinMax[D metric.Numeric](groups []candidate, costs metric.Costs[D], maxDistance D) []MatchResult[D] {
	var matches []MatchResult[D]
	for _, c := range groups {
		if !c.tr.Success() {
			continue
		}
		d := edit.Weighted(c.tr, costs)
		if d <= maxDistance {
			matches = append(matches, MatchResult[D]{start: c.start, length: c.length, distance: d, trace: c.tr})
		}
	}
	return matches
}

// filterImproving keeps only the strictly-improving candidates in
// ascending start order, stopping as soon as a zero-distance match is
// found — the behavior used when no max distance was given.
func filterImproving[D metric.Numeric](groups []candidate, costs metric.Costs[D]) []MatchResult[D] {
	var matches []MatchResult[D]
	var bestSoFar D
	first := true
	for _, c := range groups {
		if !c.tr.Success() {
			continue
		}
		d := edit.Weighted(c.tr, costs)
		if first || d < bestSoFar {
			matches = append(matches, MatchResult[D]{start: c.start, length: c.length, distance: d, trace: c.tr})
			bestSoFar = d
			first = false
			var zero D
			if d == zero {
				break
			}
		}
	}
	return matches
}

// bestLast scans groups from the end looking for the rightmost
// candidate achieving the global minimum distance (or, with
// maxDistance given, the rightmost candidate within it) — the
// counterpart callers use for LastMatch instead of re-running the
// forward filters and taking the tail.
func bestLast[D metric.Numeric](groups []candidate, costs metric.Costs[D], maxDistance *D) (MatchResult[D], bool) {
	if maxDistance != nil {
		for i := len(groups) - 1; i >= 0; i-- {
			c := groups[i]
			if !c.tr.Success() {
				continue
			}
			d := edit.Weighted(c.tr, costs)
			if d <= *maxDistance {
				return MatchResult[D]{start: c.start, length: c.length, distance: d, trace: c.tr}, true
			}
		}
		return MatchResult[D]{}, false
	}

	var best D
	var bestIdx = -1
	for i, c := range groups {
		if !c.tr.Success() {
			continue
		}
		d := edit.Weighted(c.tr, costs)
		if bestIdx == -1 || d < best {
			best, bestIdx = d, i
		}
	}
	if bestIdx == -1 {
		return MatchResult[D]{}, false
	}
	for i := len(groups) - 1; i >= 0; i-- {
		c := groups[i]
		if !c.tr.Success() {
			continue
		}
		if edit.Weighted(c.tr, costs) == best {
			return MatchResult[D]{start: c.start, length: c.length, distance: best, trace: c.tr}, true
		}
	}
	return MatchResult[D]{}, false
}
