package course

import (
	"context"

	"github.com/google/uuid"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

var (
	_ userRepo   = &userRepoMock{}
	_ courseRepo = &courseRepoMock{}
	_ txManager  = &txManagerMock{}
)

type userRepoMock struct {
	UpsertFunc           func(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByEmailFunc       func(ctx context.Context, email string) (*domain.User, error)
	UpdateProfileFunc    func(ctx context.Context, email string, name, goal *string) (*domain.User, error)
	SetCurrentCourseFunc func(ctx context.Context, email, instructLang, learnLang string, level int) (*domain.User, error)
}

func (m *userRepoMock) Upsert(ctx context.Context, u *domain.User) (*domain.User, error) {
	if m.UpsertFunc == nil {
		panic("userRepoMock.UpsertFunc: method is nil but userRepo.Upsert was just called")
	}
	return m.UpsertFunc(ctx, u)
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	return m.GetByEmailFunc(ctx, email)
}

func (m *userRepoMock) UpdateProfile(ctx context.Context, email string, name, goal *string) (*domain.User, error) {
	if m.UpdateProfileFunc == nil {
		panic("userRepoMock.UpdateProfileFunc: method is nil but userRepo.UpdateProfile was just called")
	}
	return m.UpdateProfileFunc(ctx, email, name, goal)
}

func (m *userRepoMock) SetCurrentCourse(ctx context.Context, email, instructLang, learnLang string, level int) (*domain.User, error) {
	if m.SetCurrentCourseFunc == nil {
		panic("userRepoMock.SetCurrentCourseFunc: method is nil but userRepo.SetCurrentCourse was just called")
	}
	return m.SetCurrentCourseFunc(ctx, email, instructLang, learnLang, level)
}

type courseRepoMock struct {
	CreateFunc      func(ctx context.Context, c *domain.Course) (*domain.Course, error)
	GetByKeyFunc    func(ctx context.Context, email string, pair domain.LangPair) (*domain.Course, error)
	ListByEmailFunc func(ctx context.Context, email string) ([]*domain.Course, error)
	UpdateLevelFunc func(ctx context.Context, id uuid.UUID, level int) (*domain.Course, error)
}

func (m *courseRepoMock) Create(ctx context.Context, c *domain.Course) (*domain.Course, error) {
	if m.CreateFunc == nil {
		panic("courseRepoMock.CreateFunc: method is nil but courseRepo.Create was just called")
	}
	return m.CreateFunc(ctx, c)
}

func (m *courseRepoMock) GetByKey(ctx context.Context, email string, pair domain.LangPair) (*domain.Course, error) {
	if m.GetByKeyFunc == nil {
		panic("courseRepoMock.GetByKeyFunc: method is nil but courseRepo.GetByKey was just called")
	}
	return m.GetByKeyFunc(ctx, email, pair)
}

func (m *courseRepoMock) ListByEmail(ctx context.Context, email string) ([]*domain.Course, error) {
	if m.ListByEmailFunc == nil {
		panic("courseRepoMock.ListByEmailFunc: method is nil but courseRepo.ListByEmail was just called")
	}
	return m.ListByEmailFunc(ctx, email)
}

func (m *courseRepoMock) UpdateLevel(ctx context.Context, id uuid.UUID, level int) (*domain.Course, error) {
	if m.UpdateLevelFunc == nil {
		panic("courseRepoMock.UpdateLevelFunc: method is nil but courseRepo.UpdateLevel was just called")
	}
	return m.UpdateLevelFunc(ctx, id, level)
}

// txManagerMock runs the callback directly, with no transaction.
type txManagerMock struct{}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
