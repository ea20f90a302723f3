// Package imagegen generates story cover images via the OpenAI image API.
package imagegen

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

// Client generates PNG cover art from a text prompt.
type Client struct {
	client *openai.Client
	log    *slog.Logger
}

// New creates a Client with the given API key.
func New(apiKey string, logger *slog.Logger) *Client {
	return &Client{
		client: openai.NewClient(apiKey),
		log:    logger.With("adapter", "imagegen"),
	}
}

// GenerateCover renders a square cover image for the prompt and returns the
// raw PNG bytes.
func (c *Client) GenerateCover(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Model:          openai.CreateImageModelDallE3,
		Prompt:         prompt,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("imagegen: %w: %v", domain.ErrUpstreamTimeout, err)
		}
		return nil, fmt.Errorf("imagegen: %w: %v", domain.ErrUpstreamUnavailable, err)
	}

	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("imagegen: %w: empty response", domain.ErrUpstreamUnavailable)
	}

	img, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("imagegen: decode image: %w", err)
	}

	c.log.DebugContext(ctx, "cover generated", slog.Int("bytes", len(img)))

	return img, nil
}
