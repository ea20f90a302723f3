package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bolchaal/bolchaal-backend/internal/adapter/provider/genai"
	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

const coachSystemFmt = `You are a language coach. The user is interacting with a barista in %s. Your task is to suggest plausible response options the user can give, given the chat history. Your suggestions must always be in %s. Format your options as a JSON object: {"0": "<option 1>", "1": "<option 2>"}.`

// Hint suggests two plausible next replies for the user, based on the
// conversation so far.
func (s *Service) Hint(ctx context.Context, pair domain.LangPair, history []Message) ([]string, error) {
	if err := pair.Validate(); err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, domain.NewValidationError("history", "required")
	}

	learn := languageName(pair.LearnLang)
	system := fmt.Sprintf(coachSystemFmt, learn, learn)
	prompt := `Given the chat history, suggest two plausible response options the user can give. Limit yourself to 2 options and answer with only the JSON object: {"0": "<option 1>", "1": "<option 2>"}.`

	raw, err := s.genai.Chat(ctx, system, turns(history, prompt))
	if err != nil {
		return nil, fmt.Errorf("hint: %w", err)
	}

	return parseOptions(raw)
}

// InitialHints suggests three conversation openers for a fresh barista chat.
func (s *Service) InitialHints(ctx context.Context, pair domain.LangPair) ([]string, error) {
	if err := pair.Validate(); err != nil {
		return nil, err
	}

	learn := languageName(pair.LearnLang)
	system := fmt.Sprintf(coachSystemFmt, learn, learn)
	prompt := fmt.Sprintf(`Generate three hints to help a user start a conversation with a barista in %s, as if the user is fluent and starts the conversation themselves. Answer with only the JSON object: {"0": "<hint 1>", "1": "<hint 2>", "2": "<hint 3>"}.`, learn)

	raw, err := s.genai.Chat(ctx, system, []genai.Turn{{Role: "user", Text: prompt}})
	if err != nil {
		return nil, fmt.Errorf("initial hints: %w", err)
	}

	return parseOptions(raw)
}

// parseOptions reads a {"0": ..., "1": ...} object from a model response,
// returning the options in index order. Anything else fails explicitly with
// the raw response attached.
func parseOptions(raw string) ([]string, error) {
	jsonStr, err := genai.ExtractJSON(raw)
	if err != nil {
		return nil, &domain.ExplanationParseError{Reason: err.Error(), Raw: raw}
	}

	var indexed map[string]string
	if err := json.Unmarshal([]byte(jsonStr), &indexed); err != nil {
		return nil, &domain.ExplanationParseError{Reason: "unmarshal: " + err.Error(), Raw: raw}
	}

	var options []string
	for i := 0; ; i++ {
		option, ok := indexed[strconv.Itoa(i)]
		if !ok {
			break
		}
		options = append(options, option)
	}
	if len(options) == 0 {
		return nil, &domain.ExplanationParseError{Reason: "no indexed options", Raw: raw}
	}

	return options, nil
}
