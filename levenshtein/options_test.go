package levenshtein

import (
	"testing"

	"lexdist/comparer"
)

func TestDistanceWithOptionsCaseFold(t *testing.T) {
	opts := DefaultOptions()
	opts.Comparer = comparer.InvariantIgnoreCase
	if got := DistanceWithOptions("HELLO", "hello", opts); got != 0 {
		t.Errorf("DistanceWithOptions case-fold = %d, want 0", got)
	}
}

func TestDistanceOrdinalIsCaseSensitive(t *testing.T) {
	if got := DistanceWithOptions("HELLO", "hello", DefaultOptions()); got == 0 {
		t.Error("ordinal comparison should be case-sensitive")
	}
}

func TestMatchWithOptionsCaseFold(t *testing.T) {
	opts := DefaultOptions()
	opts.Comparer = comparer.InvariantIgnoreCase
	m, ok := MatchWithOptions("WORLD", "hello world", opts)
	if !ok {
		t.Fatal("expected a case-insensitive match")
	}
	if m.Distance() != 0 {
		t.Errorf("Distance() = %d, want 0", m.Distance())
	}
}
