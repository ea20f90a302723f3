package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks business rules beyond what cleanenv tags enforce.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port))
	}
	if c.Server.RatePerMinute < 1 {
		errs = append(errs, fmt.Errorf("server.rate_per_minute must be positive, got %d", c.Server.RatePerMinute))
	}

	if c.Database.MaxConns < c.Database.MinConns {
		errs = append(errs, fmt.Errorf("database.max_conns (%d) must be >= min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns))
	}

	if len(c.Auth.JWTSecret) < 32 {
		errs = append(errs, errors.New("auth.jwt_secret must be at least 32 characters"))
	}

	if c.LLM.MaxTokens < 1 {
		errs = append(errs, fmt.Errorf("llm.max_tokens must be positive, got %d", c.LLM.MaxTokens))
	}
	if c.LLM.Timeout <= 0 {
		errs = append(errs, errors.New("llm.timeout must be positive"))
	}

	if !strings.HasPrefix(c.TTS.BaseURL, "http") {
		errs = append(errs, fmt.Errorf("tts.base_url must be an http(s) URL, got %q", c.TTS.BaseURL))
	}

	if c.Vocab.MasteryThreshold < 1 {
		errs = append(errs, fmt.Errorf("vocab.mastery_threshold must be positive, got %d", c.Vocab.MasteryThreshold))
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of debug|info|warn|error, got %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text, got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

// AudioBucket returns the audio bucket for a learn language, or "" when the
// language has no configured voice storage.
func (c *StorageConfig) AudioBucket(lang string) string {
	switch lang {
	case "en":
		return c.AudioBucketEN
	case "hi":
		return c.AudioBucketHI
	default:
		return ""
	}
}
