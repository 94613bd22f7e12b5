package levenshtein

import "lexdist/metric"

// Iterator is the lazy, single-pass counterpart to Collection: callers
// who only want the first match, or want to stop as soon as a condition
// is met, step through matches one at a time instead of taking the
// whole set. It shares the same already-computed, already-filtered
// match order as Collection; only the consumption pattern differs.
type Iterator[D metric.Numeric] struct {
	matches []MatchResult[D]
	pos     int
	cur     MatchResult[D]
}

// Next advances to the next match and reports whether one was
// available. Call Current after a true result.
func (it *Iterator[D]) Next() bool {
	if it.pos >= len(it.matches) {
		return false
	}
	it.cur = it.matches[it.pos]
	it.pos++
	return true
}

// Current returns the match Next most recently advanced to.
func (it *Iterator[D]) Current() MatchResult[D] { return it.cur }

func newIterator[D metric.Numeric](matches []MatchResult[D]) *Iterator[D] {
	return &Iterator[D]{matches: matches}
}
