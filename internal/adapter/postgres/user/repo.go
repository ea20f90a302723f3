// Package user implements the User profile repository using PostgreSQL.
package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/bolchaal/bolchaal-backend/internal/adapter/postgres"
	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

// Repo provides user profile persistence backed by PostgreSQL.
// Accounts live with the external identity provider; this table holds only
// the profile and the active course pointer, keyed by email.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, name, goal, current_instruct, current_learn, current_level, created_at, updated_at`

const upsertUserSQL = `
INSERT INTO users (id, email, name, goal, current_instruct, current_learn, current_level, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
ON CONFLICT (email) DO UPDATE
SET current_instruct = EXCLUDED.current_instruct,
    current_learn    = EXCLUDED.current_learn,
    current_level    = EXCLUDED.current_level,
    updated_at       = EXCLUDED.updated_at
RETURNING ` + userColumns

// Upsert creates the profile on first registration, or repoints the active
// course fields on re-registration. Name and goal survive re-registration.
func (r *Repo) Upsert(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	now := time.Now().UTC()

	var out domain.User
	err := q.QueryRow(ctx, upsertUserSQL,
		id, u.Email, u.Name, u.Goal, u.CurrentInstruct, u.CurrentLearn, u.CurrentLevel, now).
		Scan(&out.ID, &out.Email, &out.Name, &out.Goal,
			&out.CurrentInstruct, &out.CurrentLearn, &out.CurrentLevel,
			&out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}

	return &out, nil
}

const getUserByEmailSQL = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1`

// GetByEmail returns a user profile by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.User
	err := q.QueryRow(ctx, getUserByEmailSQL, email).
		Scan(&out.ID, &out.Email, &out.Name, &out.Goal,
			&out.CurrentInstruct, &out.CurrentLearn, &out.CurrentLevel,
			&out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}

	return &out, nil
}

const updateProfileSQL = `
UPDATE users
SET name       = COALESCE($2, name),
    goal       = COALESCE($3, goal),
    updated_at = now()
WHERE email = $1
RETURNING ` + userColumns

// UpdateProfile patches name and goal; nil fields are left unchanged.
func (r *Repo) UpdateProfile(ctx context.Context, email string, name, goal *string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.User
	err := q.QueryRow(ctx, updateProfileSQL, email, name, goal).
		Scan(&out.ID, &out.Email, &out.Name, &out.Goal,
			&out.CurrentInstruct, &out.CurrentLearn, &out.CurrentLevel,
			&out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}

	return &out, nil
}

const setCurrentCourseSQL = `
UPDATE users
SET current_instruct = $2,
    current_learn    = $3,
    current_level    = $4,
    updated_at       = now()
WHERE email = $1
RETURNING ` + userColumns

// SetCurrentCourse switches which course the user is actively studying.
func (r *Repo) SetCurrentCourse(ctx context.Context, email, instructLang, learnLang string, level int) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.User
	err := q.QueryRow(ctx, setCurrentCourseSQL, email, instructLang, learnLang, level).
		Scan(&out.ID, &out.Email, &out.Name, &out.Goal,
			&out.CurrentInstruct, &out.CurrentLearn, &out.CurrentLevel,
			&out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}

	return &out, nil
}
