package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
	"github.com/bolchaal/bolchaal-backend/pkg/ctxutil"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleError maps service errors onto HTTP statuses. Upstream provider
// failures surface as gateway errors so the client can distinguish "we are
// broken" from "our model provider is".
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrUnsupportedLanguage):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrCourseNotFound):
		writeError(w, http.StatusNotFound, "course not found")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrExplanationParse):
		log.ErrorContext(r.Context(), "unparseable model response", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "model response could not be parsed")
	case errors.Is(err, domain.ErrUpstreamTimeout):
		writeError(w, http.StatusGatewayTimeout, "upstream timeout")
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		writeError(w, http.StatusServiceUnavailable, "upstream unavailable")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// requireOwnEmail checks that the {email} path segment names the
// authenticated caller. Routes keyed by email never expose other users' data.
func requireOwnEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	email := r.PathValue("email")
	caller, ok := ctxutil.UserEmailFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return "", false
	}
	if email != caller {
		writeError(w, http.StatusForbidden, "forbidden")
		return "", false
	}
	return email, true
}

// pairFromQuery reads instructLang/learnLang query parameters.
func pairFromQuery(r *http.Request) domain.LangPair {
	return domain.LangPair{
		InstructLang: r.URL.Query().Get("instructLang"),
		LearnLang:    r.URL.Query().Get("learnLang"),
	}
}
