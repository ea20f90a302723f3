package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
	"github.com/bolchaal/bolchaal-backend/internal/service/chat"
)

type chatService interface {
	Converse(ctx context.Context, input chat.ConverseInput) (*chat.Reply, error)
	Translate(ctx context.Context, input chat.TranslateInput) (string, error)
	Hint(ctx context.Context, pair domain.LangPair, history []chat.Message) ([]string, error)
	InitialHints(ctx context.Context, pair domain.LangPair) ([]string, error)
}

// ChatHandler serves the barista conversation endpoints.
type ChatHandler struct {
	svc chatService
	log *slog.Logger
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(svc chatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{svc: svc, log: logger.With("handler", "chat")}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest multiplexes the three POST modes, mirroring the client
// contract: translate set means translate mode, hint set means hint mode,
// otherwise the message continues the conversation.
type chatRequest struct {
	Message      string        `json:"message"`
	History      []chatMessage `json:"history"`
	Translate    string        `json:"translate"`
	Hint         bool          `json:"hint"`
	InstructLang string        `json:"instructLang"`
	LearnLang    string        `json:"learnLang"`
}

type chatReplyResponse struct {
	Response string        `json:"response"`
	History  []chatMessage `json:"history"`
}

// Converse handles POST /api/chat.
func (h *ChatHandler) Converse(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pair := domain.LangPair{InstructLang: req.InstructLang, LearnLang: req.LearnLang}

	if req.Translate != "" {
		translated, err := h.svc.Translate(r.Context(), chat.TranslateInput{
			Text:       req.Message,
			TargetLang: req.Translate,
		})
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"translatedMessage": translated})
		return
	}

	if req.Hint {
		hints, err := h.svc.Hint(r.Context(), pair, fromChatMessages(req.History))
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string][]string{"message": hints})
		return
	}

	reply, err := h.svc.Converse(r.Context(), chat.ConverseInput{
		Pair:    pair,
		Message: req.Message,
		History: fromChatMessages(req.History),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, chatReplyResponse{
		Response: reply.Response,
		History:  toChatMessages(reply.History),
	})
}

// Hints handles GET /api/chat?instructLang=..&learnLang=.. with conversation
// openers for a fresh chat.
func (h *ChatHandler) Hints(w http.ResponseWriter, r *http.Request) {
	hints, err := h.svc.InitialHints(r.Context(), pairFromQuery(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]string{"hints": hints})
}

func fromChatMessages(msgs []chatMessage) []chat.Message {
	out := make([]chat.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, chat.Message{Role: m.Role, Content: m.Content})
	}
	return out
}

func toChatMessages(msgs []chat.Message) []chatMessage {
	out := make([]chatMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, chatMessage{Role: m.Role, Content: m.Content})
	}
	return out
}
