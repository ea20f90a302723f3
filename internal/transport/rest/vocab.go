package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
	"github.com/bolchaal/bolchaal-backend/internal/service/vocab"
)

type vocabService interface {
	List(ctx context.Context, pair domain.LangPair) (*vocab.Buckets, error)
	Update(ctx context.Context, input vocab.UpdateInput) (*vocab.Buckets, error)
}

// VocabHandler serves per-course vocabulary endpoints.
type VocabHandler struct {
	svc vocabService
	log *slog.Logger
}

// NewVocabHandler creates a VocabHandler.
func NewVocabHandler(svc vocabService, logger *slog.Logger) *VocabHandler {
	return &VocabHandler{svc: svc, log: logger.With("handler", "vocab")}
}

type vocabUpdateRequest struct {
	Token          *string  `json:"token"`
	UniqueTokens   []string `json:"uniqueTokens"`
	DecrementToken *string  `json:"decrementToken"`
}

type vocabResponse struct {
	LearnVocab  map[string]int `json:"learnVocab"`
	MasterVocab []string       `json:"masterVocab"`
}

// Get handles GET /api/vocab/{email}?instructLang=..&learnLang=..
func (h *VocabHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOwnEmail(w, r); !ok {
		return
	}

	buckets, err := h.svc.List(r.Context(), pairFromQuery(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toVocabResponse(buckets))
}

// Update handles PATCH /api/vocab/{email}?instructLang=..&learnLang=..
func (h *VocabHandler) Update(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOwnEmail(w, r); !ok {
		return
	}

	var req vocabUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	buckets, err := h.svc.Update(r.Context(), vocab.UpdateInput{
		Pair:           pairFromQuery(r),
		Token:          req.Token,
		UniqueTokens:   req.UniqueTokens,
		DecrementToken: req.DecrementToken,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toVocabResponse(buckets))
}

func toVocabResponse(b *vocab.Buckets) vocabResponse {
	resp := vocabResponse{
		LearnVocab:  b.Learning,
		MasterVocab: b.Unseen,
	}
	if resp.LearnVocab == nil {
		resp.LearnVocab = map[string]int{}
	}
	if resp.MasterVocab == nil {
		resp.MasterVocab = []string{}
	}
	return resp
}
