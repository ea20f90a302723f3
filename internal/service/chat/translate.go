package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/bolchaal/bolchaal-backend/internal/adapter/provider/genai"
	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

const translatorSystem = "You are a translator. Your task is to just translate the given text into the requested language. Output should be just the translated text, do not add any other information or text."

// TranslateInput names the text to translate and the target language code.
type TranslateInput struct {
	Text       string
	TargetLang string
}

// Validate checks the input fields.
func (i TranslateInput) Validate() error {
	if i.Text == "" {
		return domain.NewValidationError("text", "required")
	}
	if i.TargetLang == "" {
		return domain.NewValidationError("targetLang", "required")
	}
	return nil
}

// Translate renders the text in the target language.
func (s *Service) Translate(ctx context.Context, input TranslateInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	prompt := fmt.Sprintf("Translate this text to %s: %q", languageName(input.TargetLang), input.Text)
	translated, err := s.genai.Chat(ctx, translatorSystem, []genai.Turn{{Role: "user", Text: prompt}})
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}

	return strings.TrimSpace(translated), nil
}
