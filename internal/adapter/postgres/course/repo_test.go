package course_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bolchaal/bolchaal-backend/internal/adapter/postgres/course"
	"github.com/bolchaal/bolchaal-backend/internal/adapter/postgres/testhelper"
	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

func newRepo(t *testing.T) (*course.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return course.New(pool), pool
}

func TestRepo_Create_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	got, err := repo.Create(ctx, &domain.Course{
		Email:        user.Email,
		InstructLang: "hi",
		LearnLang:    "en",
		Level:        2,
	})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if got.ID == uuid.Nil {
		t.Error("expected generated ID")
	}
	if got.Email != user.Email || got.InstructLang != "hi" || got.LearnLang != "en" || got.Level != 2 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should not be zero")
	}
}

func TestRepo_Create_DuplicatePair(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)
	seeded := testhelper.SeedCourse(t, pool, user.Email)

	_, err := repo.Create(ctx, &domain.Course{
		Email:        user.Email,
		InstructLang: seeded.InstructLang,
		LearnLang:    seeded.LearnLang,
		Level:        0,
	})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRepo_GetByKey(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)
	seeded := testhelper.SeedCourse(t, pool, user.Email)

	got, err := repo.GetByKey(ctx, user.Email, seeded.Pair())
	if err != nil {
		t.Fatalf("GetByKey: unexpected error: %v", err)
	}
	if got.ID != seeded.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, seeded.ID)
	}
}

func TestRepo_GetByKey_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.GetByKey(context.Background(), "nobody@example.com",
		domain.LangPair{InstructLang: "en", LearnLang: "hi"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_ListByEmail(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)
	testhelper.SeedCourse(t, pool, user.Email)

	_, err := repo.Create(ctx, &domain.Course{
		Email:        user.Email,
		InstructLang: "hi",
		LearnLang:    "en",
	})
	if err != nil {
		t.Fatalf("Create second course: %v", err)
	}

	courses, err := repo.ListByEmail(ctx, user.Email)
	if err != nil {
		t.Fatalf("ListByEmail: unexpected error: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(courses))
	}
	if !courses[0].CreatedAt.Before(courses[1].CreatedAt) && !courses[0].CreatedAt.Equal(courses[1].CreatedAt) {
		t.Error("expected oldest-first ordering")
	}
}

func TestRepo_UpdateLevel(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)
	seeded := testhelper.SeedCourse(t, pool, user.Email)

	got, err := repo.UpdateLevel(ctx, seeded.ID, 4)
	if err != nil {
		t.Fatalf("UpdateLevel: unexpected error: %v", err)
	}
	if got.Level != 4 {
		t.Errorf("level: got %d, want 4", got.Level)
	}

	_, err = repo.UpdateLevel(ctx, uuid.New(), 1)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown course, got %v", err)
	}
}
