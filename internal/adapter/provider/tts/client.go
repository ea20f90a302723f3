// Package tts synthesizes pronunciation audio via the Google Cloud
// Text-to-Speech REST API.
package tts

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/bolchaal/bolchaal-backend/internal/config"
	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

// voice holds the synthesis voice parameters for one learn language.
type voice struct {
	languageCode string
	name         string
}

var voices = map[string]voice{
	"en": {languageCode: "en-US", name: "en-US-Neural2-C"},
	"hi": {languageCode: "hi-IN", name: "hi-IN-Wavenet-A"},
}

// Client calls the synthesis endpoint with an API key.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Client from TTS configuration.
func New(cfg config.TTSConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "tts"),
	}
}

type synthesizeRequest struct {
	Input struct {
		Text string `json:"text"`
	} `json:"input"`
	Voice struct {
		LanguageCode string `json:"languageCode"`
		Name         string `json:"name"`
	} `json:"voice"`
	AudioConfig struct {
		AudioEncoding string `json:"audioEncoding"`
	} `json:"audioConfig"`
}

type synthesizeResponse struct {
	AudioContent string `json:"audioContent"`
}

// Synthesize renders text to MP3 audio in the given learn language.
// Returns domain.ErrUnsupportedLanguage when no voice is configured for lang.
func (c *Client) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	v, ok := voices[lang]
	if !ok {
		return nil, fmt.Errorf("tts: %w: %q", domain.ErrUnsupportedLanguage, lang)
	}

	var payload synthesizeRequest
	payload.Input.Text = text
	payload.Voice.LanguageCode = v.languageCode
	payload.Voice.Name = v.name
	payload.AudioConfig.AudioEncoding = "MP3"

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("tts: marshal request: %w", err)
	}

	reqURL := c.baseURL + "/text:synthesize?key=" + c.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("tts: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.DebugContext(ctx, "tts request", slog.String("lang", lang), slog.Int("chars", len(text)))

	resp, err := c.doWithRetry(ctx, req, body)
	if err != nil {
		return nil, fmt.Errorf("tts: %w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tts: %w: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tts: read body: %w", err)
	}

	var out synthesizeResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("tts: decode json: %w", err)
	}

	audio, err := base64.StdEncoding.DecodeString(out.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("tts: decode audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("tts: %w: empty audio", domain.ErrUpstreamUnavailable)
	}

	return audio, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
// The request body is rebuilt for the retry since the first attempt consumes it.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, body []byte) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "tts retry", slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	retry := req.Clone(ctx)
	retry.Body = io.NopCloser(bytes.NewReader(body))
	return c.httpClient.Do(retry)
}
