package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bolchaal/bolchaal-backend/internal/service/tokenize"
	"github.com/bolchaal/bolchaal-backend/internal/tokenizer"
)

type tokenizeService interface {
	Tokenize(ctx context.Context, input tokenize.Input) (*tokenize.Result, error)
}

// TokenizeHandler serves the tokenization endpoint.
type TokenizeHandler struct {
	svc tokenizeService
	log *slog.Logger
}

// NewTokenizeHandler creates a TokenizeHandler.
func NewTokenizeHandler(svc tokenizeService, logger *slog.Logger) *TokenizeHandler {
	return &TokenizeHandler{svc: svc, log: logger.With("handler", "tokenize")}
}

type tokenizeRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type tokenizeResponse struct {
	Tokens []string `json:"tokens"`
	Idioms []string `json:"idioms"`
}

// Tokenize handles POST /api/tokenize.
func (h *TokenizeHandler) Tokenize(w http.ResponseWriter, r *http.Request) {
	var req tokenizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Tokenize(r.Context(), tokenize.Input{
		Text: req.Text,
		Lang: req.Language,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	tokens := tokenizer.Texts(result.Tokens)
	if tokens == nil {
		tokens = []string{}
	}
	idioms := result.Idioms
	if idioms == nil {
		idioms = []string{}
	}

	writeJSON(w, http.StatusOK, tokenizeResponse{Tokens: tokens, Idioms: idioms})
}
