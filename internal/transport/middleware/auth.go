package middleware

import (
	"net/http"
	"strings"

	"github.com/bolchaal/bolchaal-backend/pkg/ctxutil"
)

type tokenVerifier interface {
	VerifyToken(tokenString string) (string, error)
}

// Auth attaches the caller's email to the request context when a valid
// bearer token is present. Requests without a token stay anonymous; services
// that need an identity reject them downstream.
func Auth(verifier tokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			email, err := verifier.VerifyToken(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithUserEmail(r.Context(), email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
