package tokenizer

import (
	"unicode"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

// profile is a language-specific word-splitting routine. It receives spans
// that contain no recognized punctuation or paragraph markers and decides
// which runes belong to words.
type profile interface {
	splitWords(span string) []string
}

// profiles maps supported language codes to their splitting profile.
var profiles = map[string]profile{
	"en": latinProfile{},
	"hi": devanagariProfile{},
}

func profileFor(lang string) (profile, error) {
	p, ok := profiles[lang]
	if !ok {
		return nil, domain.ErrUnsupportedLanguage
	}
	return p, nil
}

// latinProfile is the default aggressive splitter: letters and digits form
// words, every other rune separates. "don't" splits into "don" and "t".
type latinProfile struct{}

func (latinProfile) splitWords(span string) []string {
	return splitBy(span, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsNumber(r)
	})
}

// devanagariProfile keeps combining vowel signs (matras) and other marks
// attached to their consonants; splitting on IsLetter alone would tear
// Devanagari words apart at every matra.
type devanagariProfile struct{}

func (devanagariProfile) splitWords(span string) []string {
	return splitBy(span, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsNumber(r) ||
			unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)
	})
}

// splitBy collects maximal runs of runes satisfying isWordRune.
func splitBy(span string, isWordRune func(rune) bool) []string {
	var words []string
	start := -1
	for i, r := range span {
		if isWordRune(r) {
			if start == -1 {
				start = i
			}
			continue
		}
		if start != -1 {
			words = append(words, span[start:i])
			start = -1
		}
	}
	if start != -1 {
		words = append(words, span[start:])
	}
	return words
}
