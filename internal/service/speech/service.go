// Package speech turns arbitrary text into a stored pronunciation clip and
// returns its public URL. Clips are content-addressed, so repeating a text
// reuses the stored object instead of synthesizing again.
package speech

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bolchaal/bolchaal-backend/internal/config"
	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

type synthesizer interface {
	Synthesize(ctx context.Context, text, lang string) ([]byte, error)
}

type blobStore interface {
	Exists(ctx context.Context, bucket, key string) (bool, error)
	Put(ctx context.Context, bucket, key string, body []byte, contentType string) error
	URL(bucket, key string) string
}

// Service provides text-to-speech with blob-backed caching.
type Service struct {
	tts     synthesizer
	blobs   blobStore
	storage config.StorageConfig
	log     *slog.Logger
}

// NewService creates a new Speech service.
func NewService(
	log *slog.Logger,
	tts synthesizer,
	blobs blobStore,
	storage config.StorageConfig,
) *Service {
	return &Service{
		tts:     tts,
		blobs:   blobs,
		storage: storage,
		log:     log.With("service", "speech"),
	}
}

// Input names the text to speak and its language.
type Input struct {
	Text string
	Lang string
}

// Validate checks the input fields.
func (i Input) Validate() error {
	if strings.TrimSpace(i.Text) == "" {
		return domain.NewValidationError("text", "required")
	}
	if i.Lang == "" {
		return domain.NewValidationError("lang", "required")
	}
	return nil
}

// Synthesize returns the public URL of an audio clip speaking the text.
func (s *Service) Synthesize(ctx context.Context, input Input) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	bucket := s.storage.AudioBucket(input.Lang)
	if bucket == "" {
		return "", fmt.Errorf("audio for %q: %w", input.Lang, domain.ErrUnsupportedLanguage)
	}
	key := clipKey(input.Text)

	exists, err := s.blobs.Exists(ctx, bucket, key)
	if err != nil {
		return "", fmt.Errorf("check clip %s: %w", key, err)
	}
	if exists {
		return s.blobs.URL(bucket, key), nil
	}

	audio, err := s.tts.Synthesize(ctx, input.Text, input.Lang)
	if err != nil {
		return "", fmt.Errorf("synthesize: %w", err)
	}
	if err := s.blobs.Put(ctx, bucket, key, audio, "audio/mpeg"); err != nil {
		return "", fmt.Errorf("store clip %s: %w", key, err)
	}

	s.log.DebugContext(ctx, "clip synthesized", "lang", input.Lang, "key", key)

	return s.blobs.URL(bucket, key), nil
}

// clipKey addresses a clip by its text content.
func clipKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "tts/" + hex.EncodeToString(sum[:8]) + ".mp3"
}
