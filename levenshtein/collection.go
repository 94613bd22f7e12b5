package levenshtein

import (
	"fmt"

	"lexdist/internal/lexerr"
	"lexdist/metric"
)

// Collection is the eager match result set: every match is extracted
// and filtered up front, and Collection exposes it as an ordinary
// indexable slice-like value. The underlying DP scratch row is released
// the moment extraction finishes — a Collection never holds a pooled
// resource past its constructor, so it needs no Close method. It is
// read-only: there is no way to add or remove a match once built.
type Collection[D metric.Numeric] struct {
	matches []MatchResult[D]
}

// Len is the number of matches found.
func (c *Collection[D]) Len() int { return len(c.matches) }

// At returns the i'th match in scan order. It panics, wrapping
// lexerr.ErrOutOfRange, if i is not a valid index — indexing past the
// end of a match collection is a programmer contract violation, not a
// recoverable runtime condition.
func (c *Collection[D]) At(i int) MatchResult[D] {
	if i < 0 || i >= len(c.matches) {
		panic(fmt.Errorf("lexdist: Collection.At(%d) with Len()=%d: %w", i, len(c.matches), lexerr.ErrOutOfRange))
	}
	return c.matches[i]
}

// All returns every match found, in scan order.
func (c *Collection[D]) All() []MatchResult[D] { return c.matches }

// CopyTo copies every match into dst in scan order, starting at
// dst[0], and reports how many were copied. It returns
// lexerr.ErrInsufficientDestination, wrapped, if dst cannot hold
// c.Len() elements; no partial copy happens in that case.
func (c *Collection[D]) CopyTo(dst []MatchResult[D]) (int, error) {
	if len(dst) < len(c.matches) {
		return 0, fmt.Errorf("lexdist: CopyTo needs room for %d matches, dst has %d: %w", len(c.matches), len(dst), lexerr.ErrInsufficientDestination)
	}
	return copy(dst, c.matches), nil
}

// Remove always fails: Collection is read-only, so any attempt to
// mutate it surfaces lexerr.ErrReadOnly rather than silently doing
// nothing or panicking.
func (c *Collection[D]) Remove(i int) error {
	return fmt.Errorf("lexdist: Collection is read-only, cannot remove index %d: %w", i, lexerr.ErrReadOnly)
}

func newCollection[D metric.Numeric](matches []MatchResult[D]) *Collection[D] {
	return &Collection[D]{matches: matches}
}
