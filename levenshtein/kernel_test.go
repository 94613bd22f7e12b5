package levenshtein

import (
	"testing"

	"lexdist/comparer"
	"lexdist/metric"
)

func runes(s string) []rune { return []rune(s) }

func TestDistanceSeqBasic(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"flaw", "lawn", 2},
		{"same", "same", 0},
	}
	costs := metric.DefaultCosts[int]()
	for _, tt := range tests {
		got := DistanceSeq(runes(tt.a), runes(tt.b), comparer.Ordinal, costs)
		if got != tt.want {
			t.Errorf("DistanceSeq(%q,%q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDistanceSeqSymmetricUnderSwap(t *testing.T) {
	costs := metric.DefaultCosts[int]()
	a, b := runes("short"), runes("a much longer string entirely")
	d1 := DistanceSeq(a, b, comparer.Ordinal, costs)
	d2 := DistanceSeq(b, a, comparer.Ordinal, costs)
	if d1 != d2 {
		t.Errorf("DistanceSeq not symmetric: %d vs %d", d1, d2)
	}
}

func TestSubsequenceDistanceSeq(t *testing.T) {
	costs := metric.DefaultCosts[int]()
	got := SubsequenceDistanceSeq(runes("world"), runes("hello world of go"), comparer.Ordinal, costs)
	if got != 0 {
		t.Errorf("SubsequenceDistanceSeq exact substring = %d, want 0", got)
	}
	got = SubsequenceDistanceSeq(runes("wrld"), runes("hello world"), comparer.Ordinal, costs)
	if got != 1 {
		t.Errorf("SubsequenceDistanceSeq near substring = %d, want 1", got)
	}
}

func TestRatioSeq(t *testing.T) {
	costs := metric.DefaultCosts[int]()
	if r := RatioSeq(runes("abc"), runes("abc"), comparer.Ordinal, costs); r != 1 {
		t.Errorf("RatioSeq identical = %v, want 1", r)
	}
	if r := RatioSeq(runes(""), runes(""), comparer.Ordinal, costs); r != 1 {
		t.Errorf("RatioSeq empty/empty = %v, want 1", r)
	}
	r := RatioSeq(runes("abc"), runes("xyz"), comparer.Ordinal, costs)
	if r != 0 {
		t.Errorf("RatioSeq fully disjoint same-length = %v, want 0", r)
	}
}

func TestFullMatchSeqTrace(t *testing.T) {
	costs := metric.DefaultCosts[int]()
	tr := FullMatchSeq(runes("kitten"), runes("sitting"), comparer.Ordinal, costs)
	if !tr.Success() {
		t.Fatal("expected a successful trace")
	}
	if tr.TotalEdits() != 3 {
		t.Errorf("TotalEdits() = %d, want 3", tr.TotalEdits())
	}
}
