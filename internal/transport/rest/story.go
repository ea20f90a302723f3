package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
	"github.com/bolchaal/bolchaal-backend/internal/service/story"
)

type storyService interface {
	Generate(ctx context.Context, input story.GenerateInput) (*domain.Story, error)
	List(ctx context.Context, filter domain.StoryFilter) ([]*domain.Story, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Story, error)
}

// StoryHandler serves story endpoints.
type StoryHandler struct {
	svc storyService
	log *slog.Logger
}

// NewStoryHandler creates a StoryHandler.
func NewStoryHandler(svc storyService, logger *slog.Logger) *StoryHandler {
	return &StoryHandler{svc: svc, log: logger.With("handler", "story")}
}

type storyGenRequest struct {
	Prompt       string `json:"prompt"`
	InstructLang string `json:"instructLang"`
	LearnLang    string `json:"learnLang"`
	Level        int    `json:"level"`
}

type storyResponse struct {
	ID           string    `json:"id"`
	Prompt       string    `json:"prompt"`
	Content      string    `json:"content"`
	Cover        *string   `json:"cover,omitempty"`
	Level        int       `json:"level"`
	Views        int       `json:"views"`
	InstructLang string    `json:"instructLang"`
	LearnLang    string    `json:"learnLang"`
	InstructName string    `json:"instructName"`
	LearnName    string    `json:"learnName"`
	Creator      string    `json:"creator"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Generate handles POST /api/storygen.
func (h *StoryHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req storyGenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Generate(r.Context(), story.GenerateInput{
		Pair:   domain.LangPair{InstructLang: req.InstructLang, LearnLang: req.LearnLang},
		Prompt: req.Prompt,
		Level:  req.Level,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toStoryResponse(created))
}

// List handles GET /api/stories with optional instructLang, learnLang, and
// creator filters.
func (h *StoryHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter domain.StoryFilter
	q := r.URL.Query()
	if v := q.Get("instructLang"); v != "" {
		filter.InstructLang = &v
	}
	if v := q.Get("learnLang"); v != "" {
		filter.LearnLang = &v
	}
	if v := q.Get("creator"); v != "" {
		filter.Creator = &v
	}

	stories, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]storyResponse, 0, len(stories))
	for _, s := range stories {
		resp = append(resp, toStoryResponse(s))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/stories/{id}. Each fetch counts as a view.
func (h *StoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid story id")
		return
	}

	s, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStoryResponse(s))
}

func toStoryResponse(s *domain.Story) storyResponse {
	return storyResponse{
		ID:           s.ID.String(),
		Prompt:       s.Prompt,
		Content:      s.Content,
		Cover:        s.CoverURL,
		Level:        s.Level,
		Views:        s.Views,
		InstructLang: s.InstructLang,
		LearnLang:    s.LearnLang,
		InstructName: s.InstructName,
		LearnName:    s.LearnName,
		Creator:      s.Creator,
		CreatedAt:    s.CreatedAt,
	}
}
