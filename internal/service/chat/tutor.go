package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bolchaal/bolchaal-backend/internal/adapter/provider/genai"
	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

const tutorSystemFmt = "You are a friendly %s language tutor. You help the user with queries they have about their language learning journey in %s."

const drillSystemFmt = "You are a %s tutor who is an expert at generating practice questions for students. Follow the user's instructions to generate a question, its options, and the correct answer."

// TutorConverse relays one turn of a tutor conversation about the learn
// language.
func (s *Service) TutorConverse(ctx context.Context, input ConverseInput) (*Reply, error) {
	if err := input.Pair.Validate(); err != nil {
		return nil, err
	}
	if err := validateMessage(input.Message); err != nil {
		return nil, err
	}

	learn := languageName(input.Pair.LearnLang)
	system := fmt.Sprintf(tutorSystemFmt, learn, learn)
	response, err := s.genai.Chat(ctx, system, turns(input.History, input.Message))
	if err != nil {
		return nil, fmt.Errorf("tutor chat: %w", err)
	}

	return &Reply{
		Response: response,
		History:  extendHistory(input.History, input.Message, response),
	}, nil
}

// Drill is one generated practice question.
type Drill struct {
	Question      string   `json:"Question"`
	Options       []string `json:"Options"`
	CorrectAnswer string   `json:"CorrectAnswer"`
}

// DrillInput scopes the practice question to a learner and their recent
// tutor conversation.
type DrillInput struct {
	Pair      domain.LangPair
	Expertise string
	History   []Message
}

// Validate checks the input fields.
func (i DrillInput) Validate() error {
	if err := i.Pair.Validate(); err != nil {
		return err
	}
	if i.Expertise == "" {
		return domain.NewValidationError("expertise", "required")
	}
	return nil
}

const drillPromptFmt = `Generate a practice question for a student learning %s at a %s level. The question should focus on topics raised by the user in the recent chat history.
Follow these guidelines:
- Only use multiple choice or fill-in-the-blank questions.
- Cover vocabulary, grammar, sentence structure, or idiomatic expressions as appropriate for the level.
- Provide a brief context or scenario when applicable.
- The question should differ from previous practice questions in the chat history; if the user answered correctly, make the new question slightly harder.
- Use culturally relevant content when possible.
Answer with only this JSON object: {"Question": "<question>", "Options": ["<option>", "<option>"], "CorrectAnswer": "<correct answer>"}.`

// GenerateDrill produces one practice question grounded in the recent tutor
// conversation. A response that does not carry the expected JSON shape fails
// explicitly; it is never retried.
func (s *Service) GenerateDrill(ctx context.Context, input DrillInput) (*Drill, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	learn := languageName(input.Pair.LearnLang)
	system := fmt.Sprintf(drillSystemFmt, learn)
	prompt := fmt.Sprintf(drillPromptFmt, learn, input.Expertise)

	raw, err := s.genai.Chat(ctx, system, turns(input.History, prompt))
	if err != nil {
		return nil, fmt.Errorf("generate drill: %w", err)
	}

	return parseDrill(raw)
}

func parseDrill(raw string) (*Drill, error) {
	jsonStr, err := genai.ExtractJSON(raw)
	if err != nil {
		return nil, &domain.ExplanationParseError{Reason: err.Error(), Raw: raw}
	}

	var drill Drill
	if err := json.Unmarshal([]byte(jsonStr), &drill); err != nil {
		return nil, &domain.ExplanationParseError{Reason: "unmarshal: " + err.Error(), Raw: raw}
	}
	if drill.Question == "" || len(drill.Options) == 0 || drill.CorrectAnswer == "" {
		return nil, &domain.ExplanationParseError{Reason: "incomplete drill", Raw: raw}
	}

	for i, option := range drill.Options {
		drill.Options[i] = strings.Trim(option, `"'`)
	}

	return &drill, nil
}
