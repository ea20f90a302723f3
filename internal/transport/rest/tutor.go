package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
	"github.com/bolchaal/bolchaal-backend/internal/service/chat"
)

type tutorService interface {
	TutorConverse(ctx context.Context, input chat.ConverseInput) (*chat.Reply, error)
	Translate(ctx context.Context, input chat.TranslateInput) (string, error)
	GenerateDrill(ctx context.Context, input chat.DrillInput) (*chat.Drill, error)
}

// TutorHandler serves the language tutor endpoint.
type TutorHandler struct {
	svc tutorService
	log *slog.Logger
}

// NewTutorHandler creates a TutorHandler.
func NewTutorHandler(svc tutorService, logger *slog.Logger) *TutorHandler {
	return &TutorHandler{svc: svc, log: logger.With("handler", "tutor")}
}

type tutorRequest struct {
	Message      string        `json:"message"`
	History      []chatMessage `json:"history"`
	Translate    string        `json:"translate"`
	Drill        bool          `json:"drill"`
	Expertise    string        `json:"expertise"`
	InstructLang string        `json:"instructLang"`
	LearnLang    string        `json:"learnLang"`
}

type drillResponse struct {
	Question      string   `json:"Question"`
	Options       []string `json:"Options"`
	CorrectAnswer string   `json:"CorrectAnswer"`
}

// Converse handles POST /api/tutor. Translate and drill requests share the
// endpoint with regular tutor turns, distinguished by which fields are set.
func (h *TutorHandler) Converse(w http.ResponseWriter, r *http.Request) {
	var req tutorRequest
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

	if req.Drill {
		drill, err := h.svc.GenerateDrill(r.Context(), chat.DrillInput{
			Pair:      pair,
			Expertise: req.Expertise,
			History:   fromChatMessages(req.History),
		})
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, drillResponse{
			Question:      drill.Question,
			Options:       drill.Options,
			CorrectAnswer: drill.CorrectAnswer,
		})
		return
	}

	reply, err := h.svc.TutorConverse(r.Context(), chat.ConverseInput{
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
