package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
	"github.com/bolchaal/bolchaal-backend/internal/service/explain"
)

type explainService interface {
	Explain(ctx context.Context, input explain.Input) ([]domain.DictEntry, error)
}

// ExplainHandler serves the term explanation endpoint.
type ExplainHandler struct {
	svc explainService
	log *slog.Logger
}

// NewExplainHandler creates an ExplainHandler.
func NewExplainHandler(svc explainService, logger *slog.Logger) *ExplainHandler {
	return &ExplainHandler{svc: svc, log: logger.With("handler", "explain")}
}

type explainRequest struct {
	Text         string `json:"text"`
	InstructLang string `json:"instructLang"`
	LearnLang    string `json:"learnLang"`
}

type entryResponse struct {
	Category      string            `json:"category"`
	Term          string            `json:"term"`
	Pronunciation *string           `json:"pronunciation,omitempty"`
	PartOfSpeech  *string           `json:"partOfSpeech,omitempty"`
	Definition    string            `json:"definition"`
	Usage         *string           `json:"usage,omitempty"`
	OtherForms    map[string]string `json:"otherForms,omitempty"`
	Explanation   *string           `json:"explanation,omitempty"`
	Audio         *string           `json:"audio,omitempty"`
}

type explainResponse struct {
	Result []entryResponse `json:"result"`
}

// Explain handles POST /api/explain.
func (h *ExplainHandler) Explain(w http.ResponseWriter, r *http.Request) {
	var req explainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entries, err := h.svc.Explain(r.Context(), explain.Input{
		Pair: domain.LangPair{InstructLang: req.InstructLang, LearnLang: req.LearnLang},
		Term: req.Text,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := explainResponse{Result: make([]entryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Result = append(resp.Result, entryResponse{
			Category:      string(e.Category),
			Term:          e.Term,
			Pronunciation: e.Pronunciation,
			PartOfSpeech:  e.PartOfSpeech,
			Definition:    e.Definition,
			Usage:         e.Usage,
			OtherForms:    e.OtherForms,
			Explanation:   e.Explanation,
			Audio:         e.AudioURL,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}
