// Package course implements the Course repository using PostgreSQL.
package course

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/bolchaal/bolchaal-backend/internal/adapter/postgres"
	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

// Repo provides course persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new course repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createCourseSQL = `
INSERT INTO courses (id, email, instruct_lang, learn_lang, level, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING id, email, instruct_lang, learn_lang, level, created_at, updated_at`

// Create inserts a new course. Returns domain.ErrAlreadyExists when the user
// already has a course for this language pair.
func (r *Repo) Create(ctx context.Context, c *domain.Course) (*domain.Course, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC()
	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var out domain.Course
	err := q.QueryRow(ctx, createCourseSQL, id, c.Email, c.InstructLang, c.LearnLang, c.Level, now).
		Scan(&out.ID, &out.Email, &out.InstructLang, &out.LearnLang, &out.Level, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "course", courseKey(c.Email, c.Pair()))
	}

	return &out, nil
}

const getCourseByIDSQL = `
SELECT id, email, instruct_lang, learn_lang, level, created_at, updated_at
FROM courses
WHERE id = $1`

// GetByID returns a course by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.Course
	err := q.QueryRow(ctx, getCourseByIDSQL, id).
		Scan(&out.ID, &out.Email, &out.InstructLang, &out.LearnLang, &out.Level, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "course", id.String())
	}

	return &out, nil
}

const getCourseByKeySQL = `
SELECT id, email, instruct_lang, learn_lang, level, created_at, updated_at
FROM courses
WHERE email = $1 AND instruct_lang = $2 AND learn_lang = $3`

// GetByKey returns the course a user has for a language pair.
// Returns domain.ErrNotFound when no such course exists; services translate
// that into the richer CourseNotFound error.
func (r *Repo) GetByKey(ctx context.Context, email string, pair domain.LangPair) (*domain.Course, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.Course
	err := q.QueryRow(ctx, getCourseByKeySQL, email, pair.InstructLang, pair.LearnLang).
		Scan(&out.ID, &out.Email, &out.InstructLang, &out.LearnLang, &out.Level, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "course", courseKey(email, pair))
	}

	return &out, nil
}

const listCoursesByEmailSQL = `
SELECT id, email, instruct_lang, learn_lang, level, created_at, updated_at
FROM courses
WHERE email = $1
ORDER BY created_at`

// ListByEmail returns all courses owned by a user, oldest first.
func (r *Repo) ListByEmail(ctx context.Context, email string) ([]*domain.Course, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listCoursesByEmailSQL, email)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var courses []*domain.Course
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.ID, &c.Email, &c.InstructLang, &c.LearnLang, &c.Level, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	return courses, nil
}

const updateCourseLevelSQL = `
UPDATE courses
SET level = $2, updated_at = now()
WHERE id = $1
RETURNING id, email, instruct_lang, learn_lang, level, created_at, updated_at`

// UpdateLevel sets the proficiency level of a course.
func (r *Repo) UpdateLevel(ctx context.Context, id uuid.UUID, level int) (*domain.Course, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.Course
	err := q.QueryRow(ctx, updateCourseLevelSQL, id, level).
		Scan(&out.ID, &out.Email, &out.InstructLang, &out.LearnLang, &out.Level, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "course", id.String())
	}

	return &out, nil
}

func courseKey(email string, pair domain.LangPair) string {
	return email + "/" + pair.String()
}
