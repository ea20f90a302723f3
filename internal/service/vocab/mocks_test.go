package vocab

import (
	"context"

	"github.com/google/uuid"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

var (
	_ courseRepo = &courseRepoMock{}
	_ vocabRepo  = &vocabRepoMock{}
	_ txManager  = &txManagerMock{}
)

type courseRepoMock struct {
	GetByKeyFunc func(ctx context.Context, email string, pair domain.LangPair) (*domain.Course, error)
}

func (m *courseRepoMock) GetByKey(ctx context.Context, email string, pair domain.LangPair) (*domain.Course, error) {
	if m.GetByKeyFunc == nil {
		panic("courseRepoMock.GetByKeyFunc: method is nil but courseRepo.GetByKey was just called")
	}
	return m.GetByKeyFunc(ctx, email, pair)
}

type vocabRepoMock struct {
	AddUnseenFunc          func(ctx context.Context, courseID uuid.UUID, terms []string) (int, error)
	SelectTermFunc         func(ctx context.Context, courseID uuid.UUID, term string) error
	IncrementExposuresFunc func(ctx context.Context, courseID uuid.UUID, terms []string, threshold int) ([]domain.VocabTerm, error)
	DecrementExposureFunc  func(ctx context.Context, courseID uuid.UUID, term string) (int, error)
	ListByCourseFunc       func(ctx context.Context, courseID uuid.UUID) ([]domain.VocabTerm, error)
}

func (m *vocabRepoMock) AddUnseen(ctx context.Context, courseID uuid.UUID, terms []string) (int, error) {
	if m.AddUnseenFunc == nil {
		panic("vocabRepoMock.AddUnseenFunc: method is nil but vocabRepo.AddUnseen was just called")
	}
	return m.AddUnseenFunc(ctx, courseID, terms)
}

func (m *vocabRepoMock) SelectTerm(ctx context.Context, courseID uuid.UUID, term string) error {
	if m.SelectTermFunc == nil {
		panic("vocabRepoMock.SelectTermFunc: method is nil but vocabRepo.SelectTerm was just called")
	}
	return m.SelectTermFunc(ctx, courseID, term)
}

func (m *vocabRepoMock) IncrementExposures(ctx context.Context, courseID uuid.UUID, terms []string, threshold int) ([]domain.VocabTerm, error) {
	if m.IncrementExposuresFunc == nil {
		panic("vocabRepoMock.IncrementExposuresFunc: method is nil but vocabRepo.IncrementExposures was just called")
	}
	return m.IncrementExposuresFunc(ctx, courseID, terms, threshold)
}

func (m *vocabRepoMock) DecrementExposure(ctx context.Context, courseID uuid.UUID, term string) (int, error) {
	if m.DecrementExposureFunc == nil {
		panic("vocabRepoMock.DecrementExposureFunc: method is nil but vocabRepo.DecrementExposure was just called")
	}
	return m.DecrementExposureFunc(ctx, courseID, term)
}

func (m *vocabRepoMock) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]domain.VocabTerm, error) {
	if m.ListByCourseFunc == nil {
		panic("vocabRepoMock.ListByCourseFunc: method is nil but vocabRepo.ListByCourse was just called")
	}
	return m.ListByCourseFunc(ctx, courseID)
}

// txManagerMock runs the callback directly, with no transaction.
type txManagerMock struct{}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
