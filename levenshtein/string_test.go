package levenshtein

import "testing"

func TestDistance(t *testing.T) {
	if got := Distance("kitten", "sitting"); got != 3 {
		t.Errorf("Distance() = %d, want 3", got)
	}
}

func TestMatchFindsExactSubstring(t *testing.T) {
	m, ok := Match("world", "hello world of go")
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Distance() != 0 {
		t.Errorf("Distance() = %d, want 0", m.Distance())
	}
	if got, want := "hello world of go"[m.Start():m.End()], "world"; got != want {
		t.Errorf("matched span = %q, want %q", got, want)
	}
}

func TestMatchWithTypo(t *testing.T) {
	m, ok := Match("wrld", "hello world of go")
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Distance() != 1 {
		t.Errorf("Distance() = %d, want 1", m.Distance())
	}
}

func TestMatchesReturnsAllQualifying(t *testing.T) {
	max := 1
	opts := DefaultOptions()
	opts.MaxDistance = &max
	coll := MatchesWithOptions("cat", "the cat sat on a cot mat", opts)
	if coll.Len() == 0 {
		t.Fatal("expected at least one match")
	}
	for i := 0; i < coll.Len(); i++ {
		if coll.At(i).Distance() > max {
			t.Errorf("match %d exceeds max distance: %d", i, coll.At(i).Distance())
		}
	}
}

func TestEnumerateMatchesMatchesCollection(t *testing.T) {
	max := 1
	opts := DefaultOptions()
	opts.MaxDistance = &max
	coll := MatchesWithOptions("cat", "the cat sat on a cot mat", opts)
	it := EnumerateMatchesWithOptions("cat", "the cat sat on a cot mat", opts)
	n := 0
	for it.Next() {
		if it.Current() != coll.At(n) {
			t.Errorf("iterator[%d] = %+v, want %+v", n, it.Current(), coll.At(n))
		}
		n++
	}
	if n != coll.Len() {
		t.Errorf("iterator produced %d matches, collection has %d", n, coll.Len())
	}
}

func TestLastMatch(t *testing.T) {
	max := 0
	opts := DefaultOptions()
	opts.MaxDistance = &max
	m, ok := LastMatchWithOptions("cat", "cat and cat and cat", opts)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Start() != len("cat and cat and ") {
		t.Errorf("LastMatch start = %d, want %d", m.Start(), len("cat and cat and "))
	}
}

func TestCountMatchesConsistency(t *testing.T) {
	max := 1
	opts := DefaultOptions()
	opts.MaxDistance = &max
	want := MatchesWithOptions("cat", "the cat sat on a cot mat", opts).Len()
	got := CountWithOptions("cat", "the cat sat on a cot mat", opts)
	if got != want {
		t.Errorf("Count() = %d, want %d (must match Matches().Len())", got, want)
	}
}

func TestIsMatchWithMaxDistance(t *testing.T) {
	if !IsMatchWithMaxDistance("wrld", "hello world", 1) {
		t.Error("expected IsMatchWithMaxDistance true within distance 1")
	}
	if IsMatchWithMaxDistance("xyz123", "hello world", 1) {
		t.Error("expected IsMatchWithMaxDistance false, nothing close enough")
	}
}

func TestIsMatchDefaultCap(t *testing.T) {
	// cap = floor(0.25 * len("word")) = 1, distance("word","World") == 1
	if !IsMatch("word", "World") {
		t.Error(`IsMatch("word","World") = false, want true`)
	}
	if IsMatch("xyz123", "hello world") {
		t.Error("expected IsMatch false, nothing close enough")
	}
}

func TestSubsequenceRatio(t *testing.T) {
	if got := SubsequenceRatio("cat", "the cat sat"); got != 1 {
		t.Errorf(`SubsequenceRatio("cat","the cat sat") = %v, want 1`, got)
	}
	if got := SubsequenceRatio("", "anything"); got != 1 {
		t.Errorf(`SubsequenceRatio("","anything") = %v, want 1`, got)
	}
	if got := SubsequenceRatio("xyz", "abc def"); got >= 1 {
		t.Errorf(`SubsequenceRatio("xyz","abc def") = %v, want < 1`, got)
	}
}

func TestIsFullMatch(t *testing.T) {
	if !IsFullMatch("kitten", "sitting", 3) {
		t.Error(`IsFullMatch("kitten","sitting",3) = false, want true`)
	}
	if IsFullMatch("kitten", "sitting", 2) {
		t.Error(`IsFullMatch("kitten","sitting",2) = true, want false`)
	}
}

func TestRatioIdentical(t *testing.T) {
	if Ratio("same", "same") != 1 {
		t.Error("Ratio of identical strings should be 1")
	}
}
