// Package search provides an inverted-index text search provider with
// spelling-tolerant query normalization and fuzzy ranking.
package search

import (
	"strings"

	"lexdist/tokenizer"
)

// Document is one unit of indexed text.
type Document struct {
	ID   string
	Text string
}

// InvertedIndex maps lowercased terms to the set of document IDs they
// occur in.
type InvertedIndex struct {
	postings map[string]map[string]struct{}
	docs     map[string]string
	tok      tokenizer.Tokenizer
}

// NewInvertedIndex returns an empty index using tok to split documents
// into terms.
func NewInvertedIndex(tok tokenizer.Tokenizer) *InvertedIndex {
	return &InvertedIndex{
		postings: make(map[string]map[string]struct{}),
		docs:     make(map[string]string),
		tok:      tok,
	}
}

// Add indexes doc, tokenizing its text and recording a postings entry
// per distinct term.
func (idx *InvertedIndex) Add(doc Document) {
	idx.docs[doc.ID] = doc.Text
	seen := make(map[string]struct{})
	for _, tok := range idx.tok.Tokenize(doc.Text) {
		key := strings.ToLower(tok.Text)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		set, ok := idx.postings[key]
		if !ok {
			set = make(map[string]struct{})
			idx.postings[key] = set
		}
		set[doc.ID] = struct{}{}
	}
}

// DocIDsForTerm returns the set of document IDs term occurs in.
func (idx *InvertedIndex) DocIDsForTerm(term string) map[string]struct{} {
	return idx.postings[strings.ToLower(term)]
}

// Vocabulary returns every distinct term in the index.
func (idx *InvertedIndex) Vocabulary() []string {
	out := make([]string, 0, len(idx.postings))
	for term := range idx.postings {
		out = append(out, term)
	}
	return out
}

// Text returns the original text of docID.
func (idx *InvertedIndex) Text(docID string) string { return idx.docs[docID] }

// DocCount returns how many documents are indexed.
func (idx *InvertedIndex) DocCount() int { return len(idx.docs) }
