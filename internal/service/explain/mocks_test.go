package explain

import (
	"context"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

var (
	_ dictRepo    = &dictRepoMock{}
	_ generator   = &generatorMock{}
	_ synthesizer = &synthesizerMock{}
	_ blobStore   = &blobStoreMock{}
)

type dictRepoMock struct {
	FindByTermFunc  func(ctx context.Context, pair domain.LangPair, term string) ([]domain.DictEntry, error)
	CreateBatchFunc func(ctx context.Context, entries []domain.DictEntry) error
}

func (m *dictRepoMock) FindByTerm(ctx context.Context, pair domain.LangPair, term string) ([]domain.DictEntry, error) {
	if m.FindByTermFunc == nil {
		panic("dictRepoMock.FindByTermFunc: method is nil but dictRepo.FindByTerm was just called")
	}
	return m.FindByTermFunc(ctx, pair, term)
}

func (m *dictRepoMock) CreateBatch(ctx context.Context, entries []domain.DictEntry) error {
	if m.CreateBatchFunc == nil {
		panic("dictRepoMock.CreateBatchFunc: method is nil but dictRepo.CreateBatch was just called")
	}
	return m.CreateBatchFunc(ctx, entries)
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

type synthesizerMock struct {
	SynthesizeFunc func(ctx context.Context, text, lang string) ([]byte, error)
}

func (m *synthesizerMock) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	if m.SynthesizeFunc == nil {
		panic("synthesizerMock.SynthesizeFunc: method is nil but synthesizer.Synthesize was just called")
	}
	return m.SynthesizeFunc(ctx, text, lang)
}

type blobStoreMock struct {
	ExistsFunc func(ctx context.Context, bucket, key string) (bool, error)
	PutFunc    func(ctx context.Context, bucket, key string, body []byte, contentType string) error
	URLFunc    func(bucket, key string) string
}

func (m *blobStoreMock) Exists(ctx context.Context, bucket, key string) (bool, error) {
	if m.ExistsFunc == nil {
		panic("blobStoreMock.ExistsFunc: method is nil but blobStore.Exists was just called")
	}
	return m.ExistsFunc(ctx, bucket, key)
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
