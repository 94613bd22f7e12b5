package levenshtein

import (
	"fmt"

	"lexdist/comparer"
	"lexdist/edit"
	"lexdist/internal/lexerr"
	"lexdist/internal/pool"
	"lexdist/metric"
)

// mode selects which of the two DP-kernel boundary conventions applies:
// fullMatch aligns the whole of a against the whole of b, subsequence
// allows a to align against any contiguous sub-slice of b.
type mode int

const (
	fullMatch mode = iota
	subsequence
)

// distanceKernel is the scalar two-row DP kernel (spec §4.3, "Distance
// kernel"). It never allocates beyond the two pooled rows: short inputs
// come from direct heap slices under pool.stackThreshold, long ones rent
// from the process-wide pool.
func distanceKernel[E any, D metric.Numeric](a, b []E, cmp comparer.Comparer[E], costs metric.Costs[D], m mode) D {
	if cmp == nil {
		panic(fmt.Errorf("lexdist: distanceKernel called with a nil comparer: %w", lexerr.ErrNullArgument))
	}
	if m == fullMatch && len(a) < len(b) {
		a, b = b, a
		costs = costs.Swapped()
	}
	lb := len(b)

	rowPool := pool.For[D]()
	buf0 := rowPool.Get(lb + 1)
	buf1 := rowPool.Get(lb + 1)
	defer buf0.Release()
	defer buf1.Release()
	row0 := buf0.Slice()
	row1 := buf1.Slice()

	if m == fullMatch {
		for j := 0; j <= lb; j++ {
			row0[j] = D(j) * costs.Insertion
		}
	} else {
		for j := 0; j <= lb; j++ {
			row0[j] = 0
		}
	}

	for i := range a {
		row1[0] = row0[0] + costs.Deletion
		for j := 0; j < lb; j++ {
			cost := costs.Substitution
			if cmp.Equal(a[i], b[j]) {
				cost = 0
			}
			del := row0[j+1] + costs.Deletion
			ins := row1[j] + costs.Insertion
			sub := row0[j] + cost
			row1[j+1] = minOf3(del, ins, sub)
		}
		row0, row1 = row1, row0
	}

	if m == fullMatch {
		return row0[lb]
	}
	return minOfRow(row0)
}

func minOf3[D metric.Numeric](a, b, c D) D {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func minOfRow[D metric.Numeric](row []D) D {
	m := row[0]
	for _, v := range row[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// traceKernel is the trace two-row DP kernel (spec §4.3, "Trace
// kernel"). Unlike distanceKernel it never swaps operands — the caller
// needs index/length semantics tied to b as the pattern, which a swap
// would invert. It hands back ownership of the surviving row's pooled
// buffer; the caller (FullMatchSeq or computeGroups) releases it exactly
// once when done.
func traceKernel[E any, D metric.Numeric](a, b []E, cmp comparer.Comparer[E], costs metric.Costs[D], m mode) *pool.Buffer[edit.Trace] {
	if cmp == nil {
		panic(fmt.Errorf("lexdist: traceKernel called with a nil comparer: %w", lexerr.ErrNullArgument))
	}
	lb := len(b)

	tracePool := pool.For[edit.Trace]()
	buf0 := tracePool.Get(lb + 1)
	buf1 := tracePool.Get(lb + 1)
	row0 := buf0.Slice()
	row1 := buf1.Slice()

	if m == fullMatch {
		for j := 0; j <= lb; j++ {
			row0[j] = edit.New(0, j, 0, true)
		}
	} else {
		for j := 0; j <= lb; j++ {
			row0[j] = edit.Zero
		}
	}

	for i := range a {
		row1[0] = row0[0].WithDeletion()
		for j := 0; j < lb; j++ {
			delta := 1
			if cmp.Equal(a[i], b[j]) {
				delta = 0
			}
			del := row0[j+1].WithDeletion()
			ins := row1[j].WithInsertion()
			sub := row0[j].WithSubstitution(delta)
			row1[j+1] = pickBest(del, ins, sub, costs)
		}
		row0, row1 = row1, row0
		buf0, buf1 = buf1, buf0
	}

	buf1.Release()
	return buf0
}

// pickBest chooses the winning candidate by weighted distance,
// preferring deletion, then insertion, then substitution on ties.
func pickBest[D metric.Numeric](del, ins, sub edit.Trace, costs metric.Costs[D]) edit.Trace {
	best := del
	bestWeight := edit.Weighted(del, costs)
	if w := edit.Weighted(ins, costs); w < bestWeight {
		best, bestWeight = ins, w
	}
	if w := edit.Weighted(sub, costs); w < bestWeight {
		best = sub
	}
	return best
}

// GetBufferSize returns the scalar-unit size of scratch an
// EnumerateMatches caller should preallocate to cover both rolling rows
// of the trace kernel for a pattern of the given length. Each edit.Trace
// is three packed 32-bit fields, and two rows of patternLen+1 traces are
// needed, hence 6*(patternLen+1).
func GetBufferSize(patternLen int) int {
	return 6 * (patternLen + 1)
}
