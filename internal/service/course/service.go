// Package course implements registration and profile management: creating a
// study track for a language pair, listing a user's tracks, and switching
// which one is active.
package course

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
	"github.com/bolchaal/bolchaal-backend/pkg/ctxutil"
)

type userRepo interface {
	Upsert(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, email string, name, goal *string) (*domain.User, error)
	SetCurrentCourse(ctx context.Context, email, instructLang, learnLang string, level int) (*domain.User, error)
}

type courseRepo interface {
	Create(ctx context.Context, c *domain.Course) (*domain.Course, error)
	GetByKey(ctx context.Context, email string, pair domain.LangPair) (*domain.Course, error)
	ListByEmail(ctx context.Context, email string) ([]*domain.Course, error)
	UpdateLevel(ctx context.Context, id uuid.UUID, level int) (*domain.Course, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides course and profile operations.
type Service struct {
	users   userRepo
	courses courseRepo
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new Course service.
func NewService(
	log *slog.Logger,
	users userRepo,
	courses courseRepo,
	tx txManager,
) *Service {
	return &Service{
		users:   users,
		courses: courses,
		tx:      tx,
		log:     log.With("service", "course"),
	}
}

// callerEmail returns the authenticated user's email from the context.
func callerEmail(ctx context.Context) (string, error) {
	email, ok := ctxutil.UserEmailFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	return email, nil
}
