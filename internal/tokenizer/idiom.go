package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// emphasisMarker delimits idiomatic spans in model responses. The idiom
// detection prompt instructs the model to wrap each idiom or phrasal verb in
// a pair of these.
const emphasisMarker = "**"

// ExtractIdioms returns the phrases enclosed in emphasis-marker pairs, in
// order of appearance. Each phrase is trimmed, a single trailing colon is
// stripped, and the first rune is lowercased. Duplicates are kept; set
// semantics belong to vocabulary tracking, not here.
//
// Text without emphasis markers yields an empty list, never an error.
func ExtractIdioms(text string) []string {
	var idioms []string

	rest := text
	for {
		start := strings.Index(rest, emphasisMarker)
		if start == -1 {
			break
		}
		rest = rest[start+len(emphasisMarker):]

		end := strings.Index(rest, emphasisMarker)
		if end == -1 {
			break
		}

		phrase := strings.TrimSpace(rest[:end])
		phrase = strings.TrimSuffix(phrase, ":")
		rest = rest[end+len(emphasisMarker):]

		if phrase == "" {
			continue
		}
		idioms = append(idioms, lowerFirst(phrase))
	}

	return idioms
}

// lowerFirst lowercases only the first rune of s.
func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	lower := unicode.ToLower(r)
	if lower == r {
		return s
	}
	return string(lower) + s[size:]
}
