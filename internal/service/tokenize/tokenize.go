package tokenize

import (
	"context"
	"fmt"
	"strings"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
	"github.com/bolchaal/bolchaal-backend/internal/tokenizer"
)

// idiomPromptFmt asks the model to echo the text back with every idiomatic
// span wrapped in emphasis markers. The extractor only reads the markers, so
// any extra commentary outside them is harmless.
const idiomPromptFmt = `Identify every idiom, phrasal verb, and fixed expression in the following %s text. Return the text with each such span wrapped in double asterisks, like **break the ice**. Change nothing else and add no commentary.

Text:
%s`

var langNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
}

// Input is a tokenization request.
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

// Result is the token stream for one text, plus the idioms that were merged
// into single tokens.
type Result struct {
	Tokens []tokenizer.Token
	Idioms []string
}

// Tokenize splits text into tokens with idioms kept whole. Idiom detection
// goes through the generative service; when that call fails the text is still
// tokenized plainly, with an empty idiom list, so a flaky upstream never
// blanks a page. An unsupported language is a client error and is not
// degraded.
func (s *Service) Tokenize(ctx context.Context, input Input) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Plain tokenization doubles as the language check and as the fallback.
	plain, err := tokenizer.Tokenize(input.Text, input.Lang)
	if err != nil {
		return nil, err
	}

	marked, err := s.genai.Generate(ctx, idiomPrompt(input.Text, input.Lang))
	if err != nil {
		s.log.WarnContext(ctx, "idiom detection failed, returning plain tokens",
			"lang", input.Lang, "error", err)
		return &Result{Tokens: plain}, nil
	}

	idioms := tokenizer.ExtractIdioms(marked)
	if len(idioms) == 0 {
		return &Result{Tokens: plain}, nil
	}

	tokens, err := tokenizer.SegmentWithIdioms(input.Text, idioms, input.Lang)
	if err != nil {
		return nil, fmt.Errorf("segment with idioms: %w", err)
	}

	return &Result{Tokens: tokens, Idioms: idioms}, nil
}

func idiomPrompt(text, lang string) string {
	name, ok := langNames[lang]
	if !ok {
		name = lang
	}
	return fmt.Sprintf(idiomPromptFmt, name, text)
}
