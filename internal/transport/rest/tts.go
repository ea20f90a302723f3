package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bolchaal/bolchaal-backend/internal/service/speech"
)

type speechService interface {
	Synthesize(ctx context.Context, input speech.Input) (string, error)
}

// SpeechHandler serves the text-to-speech endpoint.
type SpeechHandler struct {
	svc speechService
	log *slog.Logger
}

// NewSpeechHandler creates a SpeechHandler.
func NewSpeechHandler(svc speechService, logger *slog.Logger) *SpeechHandler {
	return &SpeechHandler{svc: svc, log: logger.With("handler", "tts")}
}

type ttsRequest struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

// Synthesize handles POST /api/tts.
func (h *SpeechHandler) Synthesize(w http.ResponseWriter, r *http.Request) {
	var req ttsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	url, err := h.svc.Synthesize(r.Context(), speech.Input{Text: req.Text, Lang: req.Lang})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"audioUrl": url})
}
