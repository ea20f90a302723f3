// Package tokenizer splits learner-facing text into surface tokens while
// preserving punctuation and paragraph markers, and merges detected idioms
// into single tokens. It is pure: no I/O, no shared state.
package tokenizer

import (
	"unicode/utf8"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

// Kind classifies a token.
type Kind string

const (
	KindWord      Kind = "word"
	KindPunct     Kind = "punct"
	KindParagraph Kind = "paragraph"
	KindIdiom     Kind = "idiom"
)

// Token is one semantic unit of text. Produced transiently per text; never
// persisted.
type Token struct {
	Text string
	Kind Kind
}

// punctuation is the fixed set of runes that are never merged into an
// adjacent word token. The paragraph marker is handled separately and is
// neither word nor punctuation.
var punctuation = map[rune]struct{}{
	'.': {}, ',': {}, ':': {}, ';': {}, '!': {}, '?': {},
	'¿': {}, '¡': {},
	'。': {}, '！': {}, '？': {}, '、': {},
	'"': {}, '“': {}, '”': {}, '‘': {}, '’': {}, '\'': {},
	'(': {}, ')': {}, '[': {}, ']': {}, '{': {}, '}': {}, '<': {}, '>': {},
	'%': {}, '@': {}, '&': {}, '#': {},
}

// Tokenize splits text into word, punctuation, and paragraph-marker tokens
// using the profile registered for lang. Unknown language codes fail with
// domain.ErrUnsupportedLanguage.
//
// Concatenating the emitted word and punctuation tokens preserves every
// non-whitespace character of the input in order; whitespace itself emits
// nothing.
func Tokenize(text, lang string) ([]Token, error) {
	p, err := profileFor(lang)
	if err != nil {
		return nil, err
	}
	return scan(text, p), nil
}

// scan walks text once, emitting paragraph markers and punctuation runes as
// their own tokens and delegating the spans in between to the profile's
// word splitter.
func scan(text string, p profile) []Token {
	var tokens []Token
	spanStart := -1

	flush := func(end int) {
		if spanStart == -1 {
			return
		}
		for _, w := range p.splitWords(text[spanStart:end]) {
			tokens = append(tokens, Token{Text: w, Kind: KindWord})
		}
		spanStart = -1
	}

	for i := 0; i < len(text); {
		// The paragraph marker is a two-rune sequence; check before the
		// single-rune punctuation class (its rune is also punctuation).
		if hasMarkerAt(text, i) {
			flush(i)
			tokens = append(tokens, Token{Text: domain.ParagraphMarker, Kind: KindParagraph})
			i += len(domain.ParagraphMarker)
			continue
		}

		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case isSpace(r):
			flush(i)
		case isPunct(r):
			flush(i)
			tokens = append(tokens, Token{Text: string(r), Kind: KindPunct})
		default:
			if spanStart == -1 {
				spanStart = i
			}
		}
		i += size
	}
	flush(len(text))

	return tokens
}

func hasMarkerAt(text string, i int) bool {
	return len(text)-i >= len(domain.ParagraphMarker) &&
		text[i:i+len(domain.ParagraphMarker)] == domain.ParagraphMarker
}

func isPunct(r rune) bool {
	_, ok := punctuation[r]
	return ok
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f', ' ', '　':
		return true
	}
	return false
}

// Texts returns just the surface strings of tokens, in order. No tokens
// yields nil.
func Texts(tokens []Token) []string {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}
