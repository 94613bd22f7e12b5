package search

import (
	"testing"

	"lexdist/tokenizer"
)

func sampleDocs() []Document {
	return []Document{
		{ID: "1", Text: "the quick brown fox jumps over the lazy dog"},
		{ID: "2", Text: "a slow green turtle naps under a warm lamp"},
		{ID: "3", Text: "quick silver foxes are rare in the wild"},
	}
}

func suggestedIDs(r Result) map[string]bool {
	ids := map[string]bool{}
	for _, s := range r.Suggestions {
		ids[s.Item.ID] = true
	}
	return ids
}

func TestSearchExactTerm(t *testing.T) {
	p := Create(sampleDocs(), DefaultOptions())
	result := p.Search("fox", SearchOptions{MaxSuggestions: -1})
	ids := suggestedIDs(result)
	if !ids["1"] || ids["3"] {
		t.Errorf("expected doc 1 but not doc 3 (which only has 'foxes') to match 'fox', got %+v", result)
	}
}

func TestSearchSpellCorrected(t *testing.T) {
	p := Create(sampleDocs(), DefaultOptions())
	result := p.Search("qwick", SearchOptions{MaxSuggestions: -1})
	if len(result.Suggestions) == 0 {
		t.Fatal("expected a spelling-corrected match for 'qwick'")
	}
}

func TestSearchRanksMultiTermOverlapHigher(t *testing.T) {
	p := Create(sampleDocs(), DefaultOptions())
	result := p.Search("quick fox", SearchOptions{MaxSuggestions: -1})
	if len(result.Suggestions) == 0 {
		t.Fatal("expected suggestions")
	}
	if result.Suggestions[0].Item.ID != "1" {
		t.Errorf("top suggestion = %q, want doc 1 (matches both terms)", result.Suggestions[0].Item.ID)
	}
	if result.Suggestions[0].Rank != 0 {
		t.Errorf("doc 1 rank = %v, want 0", result.Suggestions[0].Rank)
	}
}

func TestSearchNoMatch(t *testing.T) {
	p := Create(sampleDocs(), DefaultOptions())
	result := p.Search("xyzzyplugh", SearchOptions{MaxSuggestions: -1})
	if result.Success || len(result.Suggestions) != 0 {
		t.Errorf("expected no match, got %+v", result)
	}
}

func TestSearchRespectsMaxSuggestions(t *testing.T) {
	p := Create(sampleDocs(), DefaultOptions())
	result := p.Search("the", SearchOptions{MaxSuggestions: 1})
	if len(result.Suggestions) > 1 {
		t.Errorf("got %d suggestions, want at most 1", len(result.Suggestions))
	}
}

func TestSearchDefaultOptionsEmitsNoSuggestions(t *testing.T) {
	p := Create(sampleDocs(), DefaultOptions())
	result := p.Search("the", DefaultSearchOptions())
	if result.Suggestions != nil {
		t.Errorf("expected no suggestions under default options, got %+v", result.Suggestions)
	}
}

func TestSearchLastMatchesSearch(t *testing.T) {
	docs := []Document{
		{ID: "a", Text: "cat sat mat cat sat mat cat"},
		{ID: "b", Text: "cat"},
	}
	p := Create(docs, DefaultOptions())
	opts := SearchOptions{MaxSuggestions: -1}
	search := p.Search("cat", opts)
	last := p.SearchLast("cat", opts)
	if search.Success != last.Success || len(search.Suggestions) != len(last.Suggestions) {
		t.Errorf("SearchLast diverged from Search: %+v vs %+v", last, search)
	}
}

func TestSearchExactNameBecomesPrimary(t *testing.T) {
	docs := []Document{{ID: "1", Text: "cat"}}
	p := Create(docs, DefaultOptions())
	result := p.Search("cat", DefaultSearchOptions())
	if !result.Success || result.Value.ID != "1" {
		t.Errorf("expected doc 1 to become the primary result, got %+v", result)
	}
}

func TestCombineReturnsFirstSuccessAndMergesSuggestions(t *testing.T) {
	a := Result{
		Success:     true,
		Value:       Document{ID: "1"},
		Suggestions: []Suggestion{{Item: Document{ID: "x"}, Rank: 0.5}},
	}
	b := Result{
		Success:     true,
		Value:       Document{ID: "2"},
		Suggestions: []Suggestion{{Item: Document{ID: "y"}, Rank: 0.1}},
	}
	combined := Combine(-1, a, b)
	if !combined.Success || combined.Value.ID != "1" {
		t.Errorf("expected first successful result (doc 1) to win, got %+v", combined)
	}
	if len(combined.Suggestions) != 2 || combined.Suggestions[0].Item.ID != "y" {
		t.Errorf("expected merged suggestions sorted by rank, got %+v", combined.Suggestions)
	}
}

func TestCombineCapsSuggestions(t *testing.T) {
	a := Result{Success: true, Value: Document{ID: "1"}, Suggestions: []Suggestion{{Item: Document{ID: "x"}, Rank: 0.5}}}
	b := Result{Success: true, Value: Document{ID: "2"}, Suggestions: []Suggestion{{Item: Document{ID: "y"}, Rank: 0.1}}}
	combined := Combine(1, a, b)
	if len(combined.Suggestions) != 1 || combined.Suggestions[0].Item.ID != "y" {
		t.Errorf("expected exactly the lowest-rank suggestion, got %+v", combined.Suggestions)
	}
}

func TestInvertedIndexVocabulary(t *testing.T) {
	idx := NewInvertedIndex(tokenizer.NewWordTokenizer())
	idx.Add(Document{ID: "1", Text: "hello world"})
	vocab := idx.Vocabulary()
	if len(vocab) != 2 {
		t.Errorf("Vocabulary() = %v, want 2 entries", vocab)
	}
}
