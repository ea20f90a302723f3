package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
	"github.com/bolchaal/bolchaal-backend/internal/service/tokenize"
	"github.com/bolchaal/bolchaal-backend/internal/tokenizer"
)

type tokenizeServiceMock struct {
	TokenizeFunc func(ctx context.Context, input tokenize.Input) (*tokenize.Result, error)
}

func (m *tokenizeServiceMock) Tokenize(ctx context.Context, input tokenize.Input) (*tokenize.Result, error) {
	if m.TokenizeFunc == nil {
		panic("tokenizeServiceMock.TokenizeFunc: method is nil but was just called")
	}
	return m.TokenizeFunc(ctx, input)
}

func postTokenize(svc tokenizeService, body string) *httptest.ResponseRecorder {
	h := NewTokenizeHandler(svc, testLogger())
	req := httptest.NewRequest(http.MethodPost, "/api/tokenize", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Tokenize(rec, req)
	return rec
}

func TestTokenize_ReturnsTokensAndIdioms(t *testing.T) {
	t.Parallel()

	svc := &tokenizeServiceMock{
		TokenizeFunc: func(_ context.Context, input tokenize.Input) (*tokenize.Result, error) {
			assert.Equal(t, "Break the ice first.", input.Text)
			assert.Equal(t, "en", input.Lang)
			return &tokenize.Result{
				Tokens: []tokenizer.Token{
					{Text: "Break the ice", Kind: tokenizer.KindIdiom},
					{Text: "first", Kind: tokenizer.KindWord},
					{Text: ".", Kind: tokenizer.KindPunct},
				},
				Idioms: []string{"Break the ice"},
			}, nil
		},
	}

	rec := postTokenize(svc, `{"text":"Break the ice first.","language":"en"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"tokens":["Break the ice","first","."],"idioms":["Break the ice"]}`, rec.Body.String())
}

func TestTokenize_EmptyResultStaysArrays(t *testing.T) {
	t.Parallel()

	svc := &tokenizeServiceMock{
		TokenizeFunc: func(context.Context, tokenize.Input) (*tokenize.Result, error) {
			return &tokenize.Result{}, nil
		},
	}

	rec := postTokenize(svc, `{"text":".","language":"en"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"tokens":[],"idioms":[]}`, rec.Body.String())
}

func TestTokenize_UnsupportedLanguage(t *testing.T) {
	t.Parallel()

	svc := &tokenizeServiceMock{
		TokenizeFunc: func(context.Context, tokenize.Input) (*tokenize.Result, error) {
			return nil, domain.ErrUnsupportedLanguage
		},
	}

	rec := postTokenize(svc, `{"text":"Bonjour","language":"fr"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTokenize_BadBody(t *testing.T) {
	t.Parallel()

	rec := postTokenize(&tokenizeServiceMock{}, `not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
