// Package tokenize turns raw learn-language text into the token stream the
// client renders, with multi-word idioms detected upstream and kept whole.
package tokenize

import (
	"context"
	"log/slog"
)

type generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service provides text tokenization with idiom detection.
type Service struct {
	genai generator
	log   *slog.Logger
}

// NewService creates a new Tokenize service.
func NewService(
	log *slog.Logger,
	genai generator,
) *Service {
	return &Service{
		genai: genai,
		log:   log.With("service", "tokenize"),
	}
}
