// Package story implements generated short stories: creation via the
// generative model with a level-scaled prompt, cover art, and a published
// story catalog.
package story

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bolchaal/bolchaal-backend/internal/config"
	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

type storyRepo interface {
	Create(ctx context.Context, s *domain.Story) (*domain.Story, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Story, error)
	List(ctx context.Context, filter domain.StoryFilter) ([]*domain.Story, error)
	IncrementViews(ctx context.Context, id uuid.UUID) (int, error)
	SetCoverURL(ctx context.Context, id uuid.UUID, url string) error
}

type generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type coverGenerator interface {
	GenerateCover(ctx context.Context, prompt string) ([]byte, error)
}

type blobStore interface {
	Put(ctx context.Context, bucket, key string, body []byte, contentType string) error
	URL(bucket, key string) string
}

// Service provides story generation and browsing.
type Service struct {
	stories storyRepo
	genai   generator
	covers  coverGenerator
	blobs   blobStore
	storage config.StorageConfig
	log     *slog.Logger
}

// NewService creates a new Story service.
func NewService(
	log *slog.Logger,
	stories storyRepo,
	genai generator,
	covers coverGenerator,
	blobs blobStore,
	storage config.StorageConfig,
) *Service {
	return &Service{
		stories: stories,
		genai:   genai,
		covers:  covers,
		blobs:   blobs,
		storage: storage,
		log:     log.With("service", "story"),
	}
}
