package chat

import (
	"context"
	"fmt"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

const baristaSystemFmt = "You are a barista. You are interacting with a customer and you always speak in %s."

// ConverseInput carries one user turn of a barista conversation.
type ConverseInput struct {
	Pair    domain.LangPair
	Message string
	History []Message
}

// Reply is the assistant's answer plus the extended history the client
// should carry into the next turn.
type Reply struct {
	Response string
	History  []Message
}

// Converse relays one turn of the barista role-play. An empty history starts
// a fresh conversation.
func (s *Service) Converse(ctx context.Context, input ConverseInput) (*Reply, error) {
	if err := input.Pair.Validate(); err != nil {
		return nil, err
	}
	if err := validateMessage(input.Message); err != nil {
		return nil, err
	}

	system := fmt.Sprintf(baristaSystemFmt, languageName(input.Pair.LearnLang))
	response, err := s.genai.Chat(ctx, system, turns(input.History, input.Message))
	if err != nil {
		return nil, fmt.Errorf("barista chat: %w", err)
	}

	return &Reply{
		Response: response,
		History:  extendHistory(input.History, input.Message, response),
	}, nil
}
