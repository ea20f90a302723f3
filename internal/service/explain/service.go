// Package explain produces structured lexical explanations for terms a
// learner clicks on. Explanations come from the generative model once and are
// cached in a shared per-language-pair dictionary, with a pronunciation clip
// stored alongside for anything that can be spoken.
package explain

import (
	"context"
	"log/slog"

	"github.com/bolchaal/bolchaal-backend/internal/config"
	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

type dictRepo interface {
	FindByTerm(ctx context.Context, pair domain.LangPair, term string) ([]domain.DictEntry, error)
	CreateBatch(ctx context.Context, entries []domain.DictEntry) error
}

type generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type synthesizer interface {
	Synthesize(ctx context.Context, text, lang string) ([]byte, error)
}

type blobStore interface {
	Exists(ctx context.Context, bucket, key string) (bool, error)
	Put(ctx context.Context, bucket, key string, body []byte, contentType string) error
	URL(bucket, key string) string
}

// Service provides term explanation with dictionary caching.
type Service struct {
	dict    dictRepo
	genai   generator
	tts     synthesizer
	blobs   blobStore
	storage config.StorageConfig
	log     *slog.Logger
}

// NewService creates a new Explain service.
func NewService(
	log *slog.Logger,
	dict dictRepo,
	genai generator,
	tts synthesizer,
	blobs blobStore,
	storage config.StorageConfig,
) *Service {
	return &Service{
		dict:    dict,
		genai:   genai,
		tts:     tts,
		blobs:   blobs,
		storage: storage,
		log:     log.With("service", "explain"),
	}
}

// Input identifies the term to explain within a language pair.
type Input struct {
	Pair domain.LangPair
	Term string
}

// Validate checks the input fields.
func (i Input) Validate() error {
	if err := i.Pair.Validate(); err != nil {
		return err
	}
	if i.Term == "" {
		return domain.NewValidationError("term", "required")
	}
	return nil
}
