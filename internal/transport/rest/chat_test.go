package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
	"github.com/bolchaal/bolchaal-backend/internal/service/chat"
)

type chatServiceMock struct {
	ConverseFunc     func(ctx context.Context, input chat.ConverseInput) (*chat.Reply, error)
	TranslateFunc    func(ctx context.Context, input chat.TranslateInput) (string, error)
	HintFunc         func(ctx context.Context, pair domain.LangPair, history []chat.Message) ([]string, error)
	InitialHintsFunc func(ctx context.Context, pair domain.LangPair) ([]string, error)
}

func (m *chatServiceMock) Converse(ctx context.Context, input chat.ConverseInput) (*chat.Reply, error) {
	if m.ConverseFunc == nil {
		panic("chatServiceMock.ConverseFunc: method is nil but was just called")
	}
	return m.ConverseFunc(ctx, input)
}

func (m *chatServiceMock) Translate(ctx context.Context, input chat.TranslateInput) (string, error) {
	if m.TranslateFunc == nil {
		panic("chatServiceMock.TranslateFunc: method is nil but was just called")
	}
	return m.TranslateFunc(ctx, input)
}

func (m *chatServiceMock) Hint(ctx context.Context, pair domain.LangPair, history []chat.Message) ([]string, error) {
	if m.HintFunc == nil {
		panic("chatServiceMock.HintFunc: method is nil but was just called")
	}
	return m.HintFunc(ctx, pair, history)
}

func (m *chatServiceMock) InitialHints(ctx context.Context, pair domain.LangPair) ([]string, error) {
	if m.InitialHintsFunc == nil {
		panic("chatServiceMock.InitialHintsFunc: method is nil but was just called")
	}
	return m.InitialHintsFunc(ctx, pair)
}

func postChat(h *ChatHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Converse(rec, req)
	return rec
}

func TestChat_ConverseMode(t *testing.T) {
	t.Parallel()

	svc := &chatServiceMock{
		ConverseFunc: func(_ context.Context, input chat.ConverseInput) (*chat.Reply, error) {
			assert.Equal(t, "Ek chai please", input.Message)
			assert.Len(t, input.History, 2)
			return &chat.Reply{
				Response: "Zaroor! Kaunsi chai?",
				History: append(input.History,
					chat.Message{Role: "user", Content: input.Message},
					chat.Message{Role: "assistant", Content: "Zaroor! Kaunsi chai?"},
				),
			}, nil
		},
	}
	h := NewChatHandler(svc, testLogger())

	body := `{
		"message": "Ek chai please",
		"history": [
			{"role":"user","content":"Namaste"},
			{"role":"assistant","content":"Namaste! Kya loge?"}
		],
		"instructLang": "en",
		"learnLang": "hi"
	}`
	rec := postChat(h, body)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp chatReplyResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Zaroor! Kaunsi chai?", resp.Response)
	assert.Len(t, resp.History, 4)
}

func TestChat_TranslateModeWinsOverHint(t *testing.T) {
	t.Parallel()

	svc := &chatServiceMock{
		TranslateFunc: func(_ context.Context, input chat.TranslateInput) (string, error) {
			assert.Equal(t, "Ek chai please", input.Text)
			assert.Equal(t, "en", input.TargetLang)
			return "One tea please", nil
		},
	}
	h := NewChatHandler(svc, testLogger())

	// Both translate and hint set; translate takes precedence.
	body := `{"message":"Ek chai please","translate":"en","hint":true,"instructLang":"en","learnLang":"hi"}`
	rec := postChat(h, body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"translatedMessage":"One tea please"}`, rec.Body.String())
}

func TestChat_HintMode(t *testing.T) {
	t.Parallel()

	svc := &chatServiceMock{
		HintFunc: func(_ context.Context, pair domain.LangPair, history []chat.Message) ([]string, error) {
			assert.Equal(t, "hi", pair.LearnLang)
			assert.Len(t, history, 2)
			return []string{"Ek chai dena", "Menu dikhao"}, nil
		},
	}
	h := NewChatHandler(svc, testLogger())

	body := `{
		"hint": true,
		"history": [
			{"role":"user","content":"Namaste"},
			{"role":"assistant","content":"Namaste! Kya loge?"}
		],
		"instructLang": "en",
		"learnLang": "hi"
	}`
	rec := postChat(h, body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":["Ek chai dena","Menu dikhao"]}`, rec.Body.String())
}

func TestChat_UnparseableModelResponseIsBadGateway(t *testing.T) {
	t.Parallel()

	svc := &chatServiceMock{
		HintFunc: func(context.Context, domain.LangPair, []chat.Message) ([]string, error) {
			return nil, &domain.ExplanationParseError{Reason: "no options found", Raw: "sorry"}
		},
	}
	h := NewChatHandler(svc, testLogger())

	rec := postChat(h, `{"hint":true,"history":[{"role":"user","content":"hi"}],"instructLang":"en","learnLang":"hi"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestChat_InitialHints(t *testing.T) {
	t.Parallel()

	svc := &chatServiceMock{
		InitialHintsFunc: func(_ context.Context, pair domain.LangPair) ([]string, error) {
			assert.Equal(t, "en", pair.InstructLang)
			assert.Equal(t, "hi", pair.LearnLang)
			return []string{"Namaste", "Ek coffee dena", "Kya khaas hai?"}, nil
		},
	}
	h := NewChatHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/chat?instructLang=en&learnLang=hi", nil)
	rec := httptest.NewRecorder()
	h.Hints(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"hints":["Namaste","Ek coffee dena","Kya khaas hai?"]}`, rec.Body.String())
}

func TestChat_BadBody(t *testing.T) {
	t.Parallel()

	h := NewChatHandler(&chatServiceMock{}, testLogger())

	rec := postChat(h, `{broken`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
