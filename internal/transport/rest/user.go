package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
	"github.com/bolchaal/bolchaal-backend/internal/service/course"
)

type courseService interface {
	Register(ctx context.Context, input course.RegisterInput) (*course.Registration, error)
	Overview(ctx context.Context) (*course.Overview, error)
	Current(ctx context.Context) (*course.Registration, error)
	GetUser(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input course.ProfileInput) (*domain.User, error)
	SwitchCourse(ctx context.Context, input course.SwitchInput) (*course.Registration, error)
}

// UserHandler serves registration, course, and profile endpoints.
type UserHandler struct {
	svc courseService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc courseService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type registerRequest struct {
	InstructLang string `json:"instructLang"`
	LearnLang    string `json:"learnLang"`
	Level        int    `json:"level"`
}

// userPatchRequest carries either a course switch or a profile update. A
// language pair in the body means switch; otherwise the named profile fields
// are patched.
type userPatchRequest struct {
	InstructLang string  `json:"instructLang"`
	LearnLang    string  `json:"learnLang"`
	CurrentLevel int     `json:"currentLevel"`
	Name         *string `json:"name"`
	Goal         *string `json:"goal"`
}

type userResponse struct {
	Email        string    `json:"email"`
	Name         *string   `json:"name,omitempty"`
	Goal         *string   `json:"goal,omitempty"`
	InstructLang string    `json:"instructLang"`
	LearnLang    string    `json:"learnLang"`
	CurrentLevel int       `json:"currentLevel"`
	CreatedAt    time.Time `json:"createdAt"`
}

type courseResponse struct {
	ID           string    `json:"id"`
	InstructLang string    `json:"instructLang"`
	LearnLang    string    `json:"learnLang"`
	Level        int       `json:"level"`
	CreatedAt    time.Time `json:"createdAt"`
}

type registrationResponse struct {
	User   userResponse   `json:"user"`
	Course courseResponse `json:"course"`
}

// Register handles POST /api/register/{email}.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOwnEmail(w, r); !ok {
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reg, err := h.svc.Register(r.Context(), course.RegisterInput{
		Pair:  domain.LangPair{InstructLang: req.InstructLang, LearnLang: req.LearnLang},
		Level: req.Level,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRegistrationResponse(reg))
}

// Overview handles GET /api/register/{email} with the profile and every
// course the user studies.
func (h *UserHandler) Overview(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOwnEmail(w, r); !ok {
		return
	}

	overview, err := h.svc.Overview(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	courses := make([]courseResponse, 0, len(overview.Courses))
	for _, c := range overview.Courses {
		courses = append(courses, toCourseResponse(c))
	}

	writeJSON(w, http.StatusOK, struct {
		User    userResponse     `json:"user"`
		Courses []courseResponse `json:"courses"`
	}{
		User:    toUserResponse(overview.User),
		Courses: courses,
	})
}

// Current handles GET /api/course/{email} with the actively studied course.
func (h *UserHandler) Current(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOwnEmail(w, r); !ok {
		return
	}

	reg, err := h.svc.Current(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRegistrationResponse(reg))
}

// Get handles GET /api/user/{email}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOwnEmail(w, r); !ok {
		return
	}

	user, err := h.svc.GetUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// Patch handles PATCH /api/user/{email}. A body naming a language pair
// switches the active course; otherwise the profile fields are updated.
func (h *UserHandler) Patch(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOwnEmail(w, r); !ok {
		return
	}

	var req userPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.InstructLang != "" || req.LearnLang != "" {
		reg, err := h.svc.SwitchCourse(r.Context(), course.SwitchInput{
			Pair:  domain.LangPair{InstructLang: req.InstructLang, LearnLang: req.LearnLang},
			Level: req.CurrentLevel,
		})
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toRegistrationResponse(reg))
		return
	}

	user, err := h.svc.UpdateProfile(r.Context(), course.ProfileInput{
		Name: req.Name,
		Goal: req.Goal,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		Email:        u.Email,
		Name:         u.Name,
		Goal:         u.Goal,
		InstructLang: u.CurrentInstruct,
		LearnLang:    u.CurrentLearn,
		CurrentLevel: u.CurrentLevel,
		CreatedAt:    u.CreatedAt,
	}
}

func toCourseResponse(c *domain.Course) courseResponse {
	return courseResponse{
		ID:           c.ID.String(),
		InstructLang: c.InstructLang,
		LearnLang:    c.LearnLang,
		Level:        c.Level,
		CreatedAt:    c.CreatedAt,
	}
}

func toRegistrationResponse(reg *course.Registration) registrationResponse {
	return registrationResponse{
		User:   toUserResponse(reg.User),
		Course: toCourseResponse(reg.Course),
	}
}
