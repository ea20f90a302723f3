// Package vocab implements per-course vocabulary tracking: which terms a
// learner has encountered, which they are actively studying, and when a
// studied term recycles back into rotation.
package vocab

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
	"github.com/bolchaal/bolchaal-backend/pkg/ctxutil"
)

type courseRepo interface {
	GetByKey(ctx context.Context, email string, pair domain.LangPair) (*domain.Course, error)
}

type vocabRepo interface {
	AddUnseen(ctx context.Context, courseID uuid.UUID, terms []string) (int, error)
	SelectTerm(ctx context.Context, courseID uuid.UUID, term string) error
	IncrementExposures(ctx context.Context, courseID uuid.UUID, terms []string, threshold int) ([]domain.VocabTerm, error)
	DecrementExposure(ctx context.Context, courseID uuid.UUID, term string) (int, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]domain.VocabTerm, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides vocabulary tracking operations.
type Service struct {
	courses   courseRepo
	vocab     vocabRepo
	tx        txManager
	threshold int
	log       *slog.Logger
}

// NewService creates a new Vocab service. threshold is the exposure count at
// which a learning term recycles back to unseen.
func NewService(
	log *slog.Logger,
	courses courseRepo,
	vocab vocabRepo,
	tx txManager,
	threshold int,
) *Service {
	if threshold < 1 {
		threshold = domain.MasteryThreshold
	}
	return &Service{
		courses:   courses,
		vocab:     vocab,
		tx:        tx,
		threshold: threshold,
		log:       log.With("service", "vocab"),
	}
}

// Buckets is a snapshot of one course's vocabulary.
type Buckets struct {
	Learning map[string]int
	Unseen   []string
}

// resolveCourse loads the caller's course for a language pair.
// A missing course is a client error, reported with the full lookup key.
func (s *Service) resolveCourse(ctx context.Context, pair domain.LangPair) (*domain.Course, error) {
	email, ok := ctxutil.UserEmailFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := pair.Validate(); err != nil {
		return nil, err
	}

	course, err := s.courses.GetByKey(ctx, email, pair)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.CourseNotFound(email, pair.InstructLang, pair.LearnLang)
		}
		return nil, fmt.Errorf("resolve course: %w", err)
	}

	return course, nil
}

func bucketize(terms []domain.VocabTerm) Buckets {
	b := Buckets{Learning: make(map[string]int)}
	for _, t := range terms {
		switch t.State {
		case domain.TermLearning:
			b.Learning[t.Term] = t.ExposureCount
		default:
			b.Unseen = append(b.Unseen, t.Term)
		}
	}
	return b
}
