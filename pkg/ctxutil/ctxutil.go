package ctxutil

import (
	"context"
)

type ctxKey string

const (
	userEmailKey ctxKey = "user_email"
	requestIDKey ctxKey = "request_id"
)

// WithUserEmail stores the authenticated user's email in the context.
func WithUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, userEmailKey, email)
}

// UserEmailFromCtx extracts the authenticated user's email from the context.
// Returns "" and false if the value is missing, empty, or wrong type.
func UserEmailFromCtx(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(userEmailKey).(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
