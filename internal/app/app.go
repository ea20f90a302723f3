package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/bolchaal/bolchaal-backend/internal/adapter/postgres"
	courserepo "github.com/bolchaal/bolchaal-backend/internal/adapter/postgres/course"
	dictrepo "github.com/bolchaal/bolchaal-backend/internal/adapter/postgres/dictionary"
	storyrepo "github.com/bolchaal/bolchaal-backend/internal/adapter/postgres/story"
	userrepo "github.com/bolchaal/bolchaal-backend/internal/adapter/postgres/user"
	vocabrepo "github.com/bolchaal/bolchaal-backend/internal/adapter/postgres/vocab"
	"github.com/bolchaal/bolchaal-backend/internal/adapter/provider/blobstore"
	"github.com/bolchaal/bolchaal-backend/internal/adapter/provider/genai"
	"github.com/bolchaal/bolchaal-backend/internal/adapter/provider/imagegen"
	"github.com/bolchaal/bolchaal-backend/internal/adapter/provider/tts"
	"github.com/bolchaal/bolchaal-backend/internal/auth"
	"github.com/bolchaal/bolchaal-backend/internal/config"
	"github.com/bolchaal/bolchaal-backend/internal/service/chat"
	"github.com/bolchaal/bolchaal-backend/internal/service/course"
	"github.com/bolchaal/bolchaal-backend/internal/service/explain"
	"github.com/bolchaal/bolchaal-backend/internal/service/speech"
	"github.com/bolchaal/bolchaal-backend/internal/service/story"
	"github.com/bolchaal/bolchaal-backend/internal/service/tokenize"
	"github.com/bolchaal/bolchaal-backend/internal/service/vocab"
	"github.com/bolchaal/bolchaal-backend/internal/transport/middleware"
	"github.com/bolchaal/bolchaal-backend/internal/transport/rest"
	"github.com/bolchaal/bolchaal-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires adapters, services, and HTTP transport, and serves
// until the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Providers.
	llm := genai.New(cfg.LLM, logger)
	voice := tts.New(cfg.TTS, logger)
	covers := imagegen.New(cfg.Image.APIKey, logger)
	blobs, err := blobstore.New(ctx, cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("init blob storage: %w", err)
	}

	// Repositories.
	users := userrepo.New(pool)
	courses := courserepo.New(pool)
	vocabTerms := vocabrepo.New(pool)
	dict := dictrepo.New(pool)
	stories := storyrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	// Services.
	courseSvc := course.NewService(logger, users, courses, tx)
	vocabSvc := vocab.NewService(logger, courses, vocabTerms, tx, cfg.Vocab.MasteryThreshold)
	tokenizeSvc := tokenize.NewService(logger, llm)
	explainSvc := explain.NewService(logger, dict, llm, voice, blobs, cfg.Storage)
	storySvc := story.NewService(logger, stories, llm, covers, blobs, cfg.Storage)
	chatSvc := chat.NewService(logger, llm)
	speechSvc := speech.NewService(logger, voice, blobs, cfg.Storage)

	router := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
		Tokenize: rest.NewTokenizeHandler(tokenizeSvc, logger),
		Vocab:    rest.NewVocabHandler(vocabSvc, logger),
		Explain:  rest.NewExplainHandler(explainSvc, logger),
		Story:    rest.NewStoryHandler(storySvc, logger),
		Chat:     rest.NewChatHandler(chatSvc, logger),
		Tutor:    rest.NewTutorHandler(chatSvc, logger),
		Speech:   rest.NewSpeechHandler(speechSvc, logger),
		User:     rest.NewUserHandler(courseSvc, logger),
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RatePerMinute),
		middleware.Auth(verifier),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}

// migrate applies pending schema migrations. goose needs database/sql, so a
// short-lived separate connection is used instead of the pgx pool.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
