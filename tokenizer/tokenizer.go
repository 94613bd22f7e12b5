// Package tokenizer splits text into the tokens a search.Provider
// indexes and queries against.
package tokenizer

import (
	"regexp"
	"unicode/utf8"
)

// Token is one piece of tokenized text, with its position in runes
// within the original input.
type Token struct {
	Text  string
	Start int
	End   int
}

// Tokenizer is the capability a search provider needs from its text
// splitter: an eager form for callers who want everything at once, and
// a lazy form for callers who might stop early.
type Tokenizer interface {
	Tokenize(s string) []Token
	Enumerate(s string) *Iterator
}

// defaultWordPattern splits on runs of characters that aren't letters,
// digits, or underscore, leaving case untouched.
var defaultWordPattern = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

// WordTokenizer tokenizes by splitting on runs matching a delimiter
// pattern, discarding the delimiters and any resulting empty pieces.
type WordTokenizer struct {
	pattern *regexp.Regexp
}

// NewWordTokenizer returns a WordTokenizer that splits on runs of
// non-word characters.
func NewWordTokenizer() *WordTokenizer {
	return &WordTokenizer{pattern: defaultWordPattern}
}

// NewWordTokenizerWithPattern returns a WordTokenizer that splits on
// runs matching pattern instead of the default word-boundary pattern.
func NewWordTokenizerWithPattern(pattern *regexp.Regexp) *WordTokenizer {
	return &WordTokenizer{pattern: pattern}
}

// Tokenize splits s into every token, eagerly.
func (wt *WordTokenizer) Tokenize(s string) []Token {
	var tokens []Token
	it := wt.Enumerate(s)
	for it.Next() {
		tokens = append(tokens, it.Current())
	}
	return tokens
}

// Enumerate returns a lazy, single-pass Iterator over s's tokens. Each
// Next call runs one regexp search over the unconsumed suffix rather
// than splitting the whole string up front, so a caller that stops
// after the first few tokens never pays for the rest.
func (wt *WordTokenizer) Enumerate(s string) *Iterator {
	return &Iterator{text: s, pattern: wt.pattern}
}

// Iterator is the lazy, single-pass cursor WordTokenizer.Enumerate
// returns.
type Iterator struct {
	text       string
	pattern    *regexp.Regexp
	pos        int
	runeOffset int
	done       bool
	cur        Token
}

// Next advances to the next non-empty token and reports whether one
// was found. Call Current after a true result.
func (it *Iterator) Next() bool {
	for {
		if it.done || it.pos >= len(it.text) {
			it.done = true
			return false
		}
		rest := it.text[it.pos:]
		loc := it.pattern.FindStringIndex(rest)

		var tokenBytes string
		var consumed int
		if loc == nil {
			tokenBytes = rest
			consumed = len(rest)
		} else {
			tokenBytes = rest[:loc[0]]
			consumed = loc[1]
		}

		startRune := it.runeOffset
		tokenRunes := utf8.RuneCountInString(tokenBytes)
		it.runeOffset += tokenRunes
		if loc != nil {
			it.runeOffset += utf8.RuneCountInString(rest[loc[0]:loc[1]])
		}
		it.pos += consumed
		if it.pos >= len(it.text) {
			it.done = true
		}

		if tokenBytes == "" {
			continue
		}
		it.cur = Token{Text: tokenBytes, Start: startRune, End: startRune + tokenRunes}
		return true
	}
}

// Current returns the token Next most recently advanced to.
func (it *Iterator) Current() Token { return it.cur }
