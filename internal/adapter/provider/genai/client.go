// Package genai wraps the Anthropic Messages API behind the narrow surface
// the services need: one-shot generation and multi-turn chat.
package genai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/bolchaal/bolchaal-backend/internal/config"
	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

// Turn is one message in a chat history.
type Turn struct {
	Role string // "user" or "assistant"
	Text string
}

// Client calls the generative model with the configured deadline. Timeouts and
// transport failures surface as domain.ErrUpstreamTimeout and
// domain.ErrUpstreamUnavailable so callers can degrade without inspecting
// SDK error types.
type Client struct {
	client     anthropic.Client
	model      anthropic.Model
	maxTokens  int64
	chatTokens int64
	timeout    time.Duration
	log        *slog.Logger
}

// New creates a Client from LLM configuration.
func New(cfg config.LLMConfig, logger *slog.Logger) *Client {
	return &Client{
		client:     anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:      anthropic.Model(cfg.Model),
		maxTokens:  int64(cfg.MaxTokens),
		chatTokens: int64(cfg.ChatTokens),
		timeout:    cfg.Timeout,
		log:        logger.With("adapter", "genai"),
	}
}

// Generate sends a single prompt and returns the raw response text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	return c.complete(ctx, c.maxTokens, "", []anthropic.MessageParam{
		anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
	})
}

// Chat sends a multi-turn history ending on a user turn and returns the
// assistant's reply, steered by a persona system instruction. Shorter
// responses than Generate: chat replies are conversational, not documents.
func (c *Client) Chat(ctx context.Context, system string, turns []Turn) (string, error) {
	msgs := make([]anthropic.MessageParam, 0, len(turns))
	for _, turn := range turns {
		block := anthropic.NewTextBlock(turn.Text)
		switch turn.Role {
		case "assistant":
			msgs = append(msgs, anthropic.NewAssistantMessage(block))
		default:
			msgs = append(msgs, anthropic.NewUserMessage(block))
		}
	}

	return c.complete(ctx, c.chatTokens, system, msgs)
}

func (c *Client) complete(ctx context.Context, maxTokens int64, system string, msgs []anthropic.MessageParam) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: maxTokens,
		Messages:  msgs,
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	started := time.Now()
	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", c.mapErr(ctx, err)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("genai: %w: empty response", domain.ErrUpstreamUnavailable)
	}

	c.log.DebugContext(ctx, "genai response",
		slog.Int("turns", len(msgs)),
		slog.Duration("took", time.Since(started)))

	return msg.Content[0].Text, nil
}

func (c *Client) mapErr(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("genai: %w: %v", domain.ErrUpstreamTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("genai: %w: %v", domain.ErrUpstreamUnavailable, err)
}
