package story

import (
	"context"

	"github.com/google/uuid"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

var (
	_ storyRepo      = &storyRepoMock{}
	_ generator      = &generatorMock{}
	_ coverGenerator = &coverGeneratorMock{}
	_ blobStore      = &blobStoreMock{}
)

type storyRepoMock struct {
	CreateFunc         func(ctx context.Context, s *domain.Story) (*domain.Story, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Story, error)
	ListFunc           func(ctx context.Context, filter domain.StoryFilter) ([]*domain.Story, error)
	IncrementViewsFunc func(ctx context.Context, id uuid.UUID) (int, error)
	SetCoverURLFunc    func(ctx context.Context, id uuid.UUID, url string) error
}

func (m *storyRepoMock) Create(ctx context.Context, s *domain.Story) (*domain.Story, error) {
	if m.CreateFunc == nil {
		panic("storyRepoMock.CreateFunc: method is nil but storyRepo.Create was just called")
	}
	return m.CreateFunc(ctx, s)
}

func (m *storyRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Story, error) {
	if m.GetByIDFunc == nil {
		panic("storyRepoMock.GetByIDFunc: method is nil but storyRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *storyRepoMock) List(ctx context.Context, filter domain.StoryFilter) ([]*domain.Story, error) {
	if m.ListFunc == nil {
		panic("storyRepoMock.ListFunc: method is nil but storyRepo.List was just called")
	}
	return m.ListFunc(ctx, filter)
}

func (m *storyRepoMock) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	if m.IncrementViewsFunc == nil {
		panic("storyRepoMock.IncrementViewsFunc: method is nil but storyRepo.IncrementViews was just called")
	}
	return m.IncrementViewsFunc(ctx, id)
}

func (m *storyRepoMock) SetCoverURL(ctx context.Context, id uuid.UUID, url string) error {
	if m.SetCoverURLFunc == nil {
		panic("storyRepoMock.SetCoverURLFunc: method is nil but storyRepo.SetCoverURL was just called")
	}
	return m.SetCoverURLFunc(ctx, id, url)
}

type generatorMock struct {
	GenerateFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *generatorMock) Generate(ctx context.Context, prompt string) (string, error) {
	if m.GenerateFunc == nil {
		panic("generatorMock.GenerateFunc: method is nil but generator.Generate was just called")
	}
	return m.GenerateFunc(ctx, prompt)
}

type coverGeneratorMock struct {
	GenerateCoverFunc func(ctx context.Context, prompt string) ([]byte, error)
}

func (m *coverGeneratorMock) GenerateCover(ctx context.Context, prompt string) ([]byte, error) {
	if m.GenerateCoverFunc == nil {
		panic("coverGeneratorMock.GenerateCoverFunc: method is nil but coverGenerator.GenerateCover was just called")
	}
	return m.GenerateCoverFunc(ctx, prompt)
}

type blobStoreMock struct {
	PutFunc func(ctx context.Context, bucket, key string, body []byte, contentType string) error
	URLFunc func(bucket, key string) string
}

func (m *blobStoreMock) Put(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	if m.PutFunc == nil {
		panic("blobStoreMock.PutFunc: method is nil but blobStore.Put was just called")
	}
	return m.PutFunc(ctx, bucket, key, body, contentType)
}

func (m *blobStoreMock) URL(bucket, key string) string {
	if m.URLFunc == nil {
		panic("blobStoreMock.URLFunc: method is nil but blobStore.URL was just called")
	}
	return m.URLFunc(bucket, key)
}
