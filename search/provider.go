package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"lexdist/comparer"
	"lexdist/levenshtein"
	"lexdist/metric"
	"lexdist/spellcheck"
	"lexdist/tokenizer"
)

// Options configures a Provider at construction time.
type Options struct {
	// Tokenizer splits documents and queries into terms. Defaults to
	// tokenizer.NewWordTokenizer().
	Tokenizer tokenizer.Tokenizer
	// LevenshteinOptions controls how terms are compared for spelling
	// correction, and supplies the name comparer used to decide
	// whether a zero-rank candidate's name equals the query.
	LevenshteinOptions levenshtein.Options
	// SpellTolerance caps how far a misspelled query term may be from
	// a vocabulary entry to still be corrected. Defaults to one edit
	// per four characters.
	SpellTolerance metric.MaxDistance[string, int]
	// FuzzyPrefilter widens a query token that is neither an exact
	// vocabulary hit nor spell-correctable with a subsequence-fuzzy
	// lookup against the vocabulary, on top of (not instead of) the
	// spell-normalization step.
	FuzzyPrefilter bool
}

// DefaultOptions is a word tokenizer, ordinal comparison, a quarter-
// length spelling tolerance, and the fuzzy prefilter enabled.
func DefaultOptions() Options {
	return Options{
		Tokenizer:          tokenizer.NewWordTokenizer(),
		LevenshteinOptions: levenshtein.DefaultOptions(),
		SpellTolerance:     metric.TextRatioMaxDistance(0.25),
		FuzzyPrefilter:     true,
	}
}

func resolveProviderOptions(opts Options) Options {
	if opts.Tokenizer == nil {
		opts.Tokenizer = tokenizer.NewWordTokenizer()
	}
	var zeroLO levenshtein.Options
	if opts.LevenshteinOptions == zeroLO {
		opts.LevenshteinOptions = levenshtein.DefaultOptions()
	}
	if opts.LevenshteinOptions.Comparer == nil {
		opts.LevenshteinOptions.Comparer = comparer.Ordinal
	}
	if opts.SpellTolerance == nil {
		opts.SpellTolerance = metric.TextRatioMaxDistance(0.25)
	}
	return opts
}

// SearchOptions configures a single Search/SearchLast call.
type SearchOptions struct {
	// MaxSuggestions: 0 emits no suggestions (default), -1 emits every
	// suggestion uncapped, n>0 caps the suggestion list at n entries.
	MaxSuggestions int
}

// DefaultSearchOptions emits no suggestions, matching the primary-only
// default most callers want.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{}
}

// Provider is a spelling-tolerant, ranked full-text search index over
// an inverted index of tokenized document names.
type Provider struct {
	index        *InvertedIndex
	checker      spellcheck.SpellChecker
	opts         Options
	nameComparer comparer.TextComparer
}

// Create builds a Provider over docs.
func Create(docs []Document, opts Options) *Provider {
	opts = resolveProviderOptions(opts)
	idx := NewInvertedIndex(opts.Tokenizer)
	for _, d := range docs {
		idx.Add(d)
	}

	var checker spellcheck.SpellChecker = spellcheck.NullChecker{}
	if vocab := idx.Vocabulary(); len(vocab) > 0 {
		checker = spellcheck.New(vocab, opts.LevenshteinOptions, opts.SpellTolerance)
	}
	return &Provider{index: idx, checker: checker, opts: opts, nameComparer: opts.LevenshteinOptions.Comparer}
}

// Vocabulary returns every distinct indexed term.
func (p *Provider) Vocabulary() []string { return p.index.Vocabulary() }

// resolveQueryToken normalizes one query token to the single
// vocabulary term its bucket lookup should use: itself if indexed
// verbatim, its spell-corrected form if the checker can fix it, a
// subsequence-fuzzy vocabulary match if FuzzyPrefilter is enabled and
// finds one, or the token unchanged.
func (p *Provider) resolveQueryToken(term string) string {
	term = strings.ToLower(term)
	if p.index.DocIDsForTerm(term) != nil {
		return term
	}
	if fixed, ok := p.checker.TryFixSpelling(term); ok {
		return fixed
	}
	if p.opts.FuzzyPrefilter {
		ranks := fuzzy.RankFindNormalizedFold(term, p.index.Vocabulary())
		if len(ranks) > 0 {
			sort.Sort(ranks)
			return ranks[0].Target
		}
	}
	return term
}

// Search tokenizes query, spell-normalizes each token, and ranks every
// document whose bucket any normalized token lands in. The first
// zero-rank candidate whose name equals query under the name comparer
// becomes the primary result; the rest, up to opts.MaxSuggestions,
// populate the suggestion list.
func (p *Provider) Search(query string, opts SearchOptions) Result {
	tokens := p.opts.Tokenizer.Tokenize(query)
	if len(tokens) == 0 {
		return Result{}
	}

	hits := make(map[string]int)
	for _, tok := range tokens {
		term := p.resolveQueryToken(tok.Text)
		for id := range p.index.DocIDsForTerm(term) {
			hits[id]++
		}
	}
	if len(hits) == 0 {
		return Result{}
	}

	type candidate struct {
		docID string
		rank  float64
	}
	candidates := make([]candidate, 0, len(hits))
	for id, h := range hits {
		candidates = append(candidates, candidate{docID: id, rank: 1 - float64(h)/float64(len(tokens))})
	}

	queryLen := len([]rune(query))
	tiebreak := func(id string) int { return abs(len([]rune(p.index.Text(id))) - queryLen) }

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].rank != candidates[j].rank {
			return candidates[i].rank < candidates[j].rank
		}
		ti, tj := tiebreak(candidates[i].docID), tiebreak(candidates[j].docID)
		if ti != tj {
			return ti < tj
		}
		return candidates[i].docID < candidates[j].docID
	})

	var result Result
	primaryFound := false
	var suggestions []Suggestion
	for _, c := range candidates {
		doc := Document{ID: c.docID, Text: p.index.Text(c.docID)}
		if !primaryFound && c.rank == 0 && p.nameComparer.EqualString(doc.Text, query) {
			result.Success = true
			result.Value = doc
			primaryFound = true
			continue
		}
		suggestions = append(suggestions, Suggestion{Item: doc, Rank: c.rank})
	}
	result.Suggestions = capSuggestions(suggestions, opts.MaxSuggestions)
	return result
}

// SearchLast is semantically identical to Search for an inverted-index
// provider — it exists only for parity with the Levenshtein engine's
// Match/LastMatch naming.
func (p *Provider) SearchLast(query string, opts SearchOptions) Result {
	return p.Search(query, opts)
}

// Combine merges the results of an ordered sequence of providers: the
// first successful result becomes the combined primary, and every
// result's suggestions are concatenated, re-sorted by rank, and capped
// at maxSuggestions.
func Combine(maxSuggestions int, results ...Result) Result {
	var primary Result
	found := false
	var all []Suggestion
	for _, r := range results {
		if r.Success && !found {
			primary, found = r, true
		}
		all = append(all, r.Suggestions...)
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Rank < all[j].Rank })
	primary.Suggestions = capSuggestions(all, maxSuggestions)
	return primary
}
