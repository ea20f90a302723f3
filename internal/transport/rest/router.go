package rest

import "net/http"

// Handlers collects the REST handlers wired into the router.
type Handlers struct {
	Health   *HealthHandler
	Tokenize *TokenizeHandler
	Vocab    *VocabHandler
	Explain  *ExplainHandler
	Story    *StoryHandler
	Chat     *ChatHandler
	Tutor    *TutorHandler
	Speech   *SpeechHandler
	User     *UserHandler
}

// NewRouter builds the HTTP route table.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/tokenize", h.Tokenize.Tokenize)

	mux.HandleFunc("GET /api/vocab/{email}", h.Vocab.Get)
	mux.HandleFunc("PATCH /api/vocab/{email}", h.Vocab.Update)

	mux.HandleFunc("POST /api/explain", h.Explain.Explain)

	mux.HandleFunc("POST /api/storygen", h.Story.Generate)
	mux.HandleFunc("GET /api/stories", h.Story.List)
	mux.HandleFunc("GET /api/stories/{id}", h.Story.Get)

	mux.HandleFunc("POST /api/chat", h.Chat.Converse)
	mux.HandleFunc("GET /api/chat", h.Chat.Hints)

	mux.HandleFunc("POST /api/tutor", h.Tutor.Converse)

	mux.HandleFunc("POST /api/tts", h.Speech.Synthesize)

	mux.HandleFunc("POST /api/register/{email}", h.User.Register)
	mux.HandleFunc("GET /api/register/{email}", h.User.Overview)
	mux.HandleFunc("GET /api/course/{email}", h.User.Current)
	mux.HandleFunc("GET /api/user/{email}", h.User.Get)
	mux.HandleFunc("PATCH /api/user/{email}", h.User.Patch)

	return mux
}
