// Package chat implements conversational practice: a barista role-play the
// learner chats with in the learn language, a tutor persona for questions
// about the language itself, inline translation, response hints, and practice
// drills. All of it is stateless relay over the generative model; history
// lives on the client.
package chat

import (
	"context"
	"log/slog"

	"github.com/bolchaal/bolchaal-backend/internal/adapter/provider/genai"
	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

type chatter interface {
	Chat(ctx context.Context, system string, turns []genai.Turn) (string, error)
}

// Service provides chat, translation, hint, and drill operations.
type Service struct {
	genai chatter
	log   *slog.Logger
}

// NewService creates a new Chat service.
func NewService(log *slog.Logger, genai chatter) *Service {
	return &Service{
		genai: genai,
		log:   log.With("service", "chat"),
	}
}

// Message is one turn of a client-held chat history. Role is "user" or
// "assistant".
type Message struct {
	Role    string
	Content string
}

// turns converts a history plus the new user message into model turns.
func turns(history []Message, message string) []genai.Turn {
	out := make([]genai.Turn, 0, len(history)+1)
	for _, m := range history {
		out = append(out, genai.Turn{Role: m.Role, Text: m.Content})
	}
	if message != "" {
		out = append(out, genai.Turn{Role: "user", Text: message})
	}
	return out
}

// extendHistory returns history plus the latest user/assistant exchange.
func extendHistory(history []Message, message, reply string) []Message {
	out := make([]Message, 0, len(history)+2)
	out = append(out, history...)
	out = append(out,
		Message{Role: "user", Content: message},
		Message{Role: "assistant", Content: reply},
	)
	return out
}

var languageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
}

func languageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

func validateMessage(message string) error {
	if message == "" {
		return domain.NewValidationError("message", "required")
	}
	return nil
}
