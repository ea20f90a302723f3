package domain

import (
	"strings"
)

// NormalizeTerm prepares a vocabulary term for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
//
// Term identity is case-insensitive; every stored term goes through this.
func NormalizeTerm(term string) string {
	term = strings.TrimSpace(term)
	if term == "" {
		return ""
	}
	term = strings.ToLower(term)

	// Compress multiple spaces into one.
	var b strings.Builder
	b.Grow(len(term))
	prevSpace := false
	for _, r := range term {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
