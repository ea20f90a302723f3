package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

// SegmentWithIdioms tokenizes text like Tokenize but treats each occurrence
// of a listed idiom as a single atomic token, matched case-insensitively.
//
// The scan is leftmost-match, not longest-match: at each step the idiom whose
// first occurrence in the remaining text starts earliest wins, and on a tie
// the idiom listed first wins. The emitted token carries the idiom's own
// text, not the source casing. Idioms that never occur in the remaining text
// contribute nothing. Consumed text is never rescanned.
//
// A pair of paragraph markers flanking a matched idiom delimits the idiom's
// span: the opening marker is emitted as a paragraph token and the closing
// marker is consumed with the idiom instead of emitting a second one.
func SegmentWithIdioms(text string, idioms []string, lang string) ([]Token, error) {
	p, err := profileFor(lang)
	if err != nil {
		return nil, err
	}

	var tokens []Token
	remaining := text

	for len(remaining) > 0 {
		bestOff := -1
		bestLen := 0
		bestIdiom := ""

		for _, idiom := range idioms {
			if idiom == "" {
				continue
			}
			off, n := indexFold(remaining, idiom)
			if off == -1 {
				continue
			}
			// Strict < keeps the earlier-listed idiom on equal offsets.
			if bestOff == -1 || off < bestOff {
				bestOff, bestLen, bestIdiom = off, n, idiom
			}
		}

		if bestOff == -1 {
			tokens = append(tokens, scan(remaining, p)...)
			break
		}

		prefix := remaining[:bestOff]
		tokens = append(tokens, scan(prefix, p)...)
		tokens = append(tokens, Token{Text: bestIdiom, Kind: KindIdiom})
		remaining = remaining[bestOff+bestLen:]
		if endsWithMarker(prefix) {
			remaining = trimClosingMarker(remaining)
		}
	}

	return tokens, nil
}

func endsWithMarker(s string) bool {
	return strings.HasSuffix(strings.TrimRight(s, " \t"), domain.ParagraphMarker)
}

// trimClosingMarker drops one paragraph marker, and any spaces before it,
// from the start of s. With no marker there, s is returned untouched.
func trimClosingMarker(s string) string {
	trimmed := strings.TrimLeft(s, " \t")
	if strings.HasPrefix(trimmed, domain.ParagraphMarker) {
		return trimmed[len(domain.ParagraphMarker):]
	}
	return s
}

// indexFold finds the first case-insensitive occurrence of substr in s by
// explicit suffix-offset scanning. It returns the byte offset of the match
// and the byte length of the matched span in s (which can differ from
// len(substr) when case folding changes encoding width), or (-1, 0).
func indexFold(s, substr string) (offset, matchedLen int) {
	if substr == "" {
		return -1, 0
	}
	for i := 0; i < len(s); {
		if n, ok := foldPrefixLen(s[i:], substr); ok {
			return i, n
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return -1, 0
}

// foldPrefixLen reports whether s starts with a case-insensitive match of
// substr, returning the byte length of the matched prefix of s.
func foldPrefixLen(s, substr string) (int, bool) {
	n := 0
	for _, want := range substr {
		if n >= len(s) {
			return 0, false
		}
		r, size := utf8.DecodeRuneInString(s[n:])
		if unicode.ToLower(r) != unicode.ToLower(want) {
			return 0, false
		}
		n += size
	}
	return n, true
}
