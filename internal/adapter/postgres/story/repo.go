// Package story implements the Story repository using PostgreSQL.
package story

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/bolchaal/bolchaal-backend/internal/adapter/postgres"
	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

// Repo provides story persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new story repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const storyColumns = `id, prompt, content, cover_url, level, views, instruct_lang,
learn_lang, instruct_name, learn_name, published, creator, created_at`

const createStorySQL = `
INSERT INTO stories (` + storyColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING ` + storyColumns

// Create inserts a new story and returns the persisted row.
func (r *Repo) Create(ctx context.Context, s *domain.Story) (*domain.Story, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := s.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	createdAt := s.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	row := q.QueryRow(ctx, createStorySQL,
		id, s.Prompt, s.Content, s.CoverURL, s.Level, s.Views,
		s.InstructLang, s.LearnLang, s.InstructName, s.LearnName,
		s.Published, s.Creator, createdAt)

	out, err := scanStory(row)
	if err != nil {
		return nil, postgres.MapError(err, "story", id.String())
	}

	return out, nil
}

const getStoryByIDSQL = `
SELECT ` + storyColumns + `
FROM stories
WHERE id = $1`

// GetByID returns a story by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Story, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanStory(q.QueryRow(ctx, getStoryByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "story", id.String())
	}

	return out, nil
}

// List returns published stories matching the filter, newest first.
// Nil filter fields apply no constraint.
func (r *Repo) List(ctx context.Context, filter domain.StoryFilter) ([]*domain.Story, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.Select(
		"id", "prompt", "content", "cover_url", "level", "views",
		"instruct_lang", "learn_lang", "instruct_name", "learn_name",
		"published", "creator", "created_at").
		From("stories").
		Where(squirrel.Eq{"published": true}).
		OrderBy("created_at DESC")

	if filter.InstructLang != nil {
		builder = builder.Where(squirrel.Eq{"instruct_lang": *filter.InstructLang})
	}
	if filter.LearnLang != nil {
		builder = builder.Where(squirrel.Eq{"learn_lang": *filter.LearnLang})
	}
	if filter.Creator != nil {
		builder = builder.Where(squirrel.Eq{"creator": *filter.Creator})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build story query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}
	defer rows.Close()

	var stories []*domain.Story
	for rows.Next() {
		s, err := scanStory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan story: %w", err)
		}
		stories = append(stories, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}

	return stories, nil
}

const incrementViewsSQL = `
UPDATE stories
SET views = views + 1
WHERE id = $1
RETURNING views`

// IncrementViews bumps the view counter and returns the new value.
func (r *Repo) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var views int
	if err := q.QueryRow(ctx, incrementViewsSQL, id).Scan(&views); err != nil {
		return 0, postgres.MapError(err, "story", id.String())
	}

	return views, nil
}

const setCoverURLSQL = `
UPDATE stories
SET cover_url = $2
WHERE id = $1`

// SetCoverURL attaches a generated cover image to a story.
func (r *Repo) SetCoverURL(ctx context.Context, id uuid.UUID, url string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setCoverURLSQL, id, url)
	if err != nil {
		return postgres.MapError(err, "story", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("story %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStory(row rowScanner) (*domain.Story, error) {
	var s domain.Story
	err := row.Scan(&s.ID, &s.Prompt, &s.Content, &s.CoverURL, &s.Level, &s.Views,
		&s.InstructLang, &s.LearnLang, &s.InstructName, &s.LearnName,
		&s.Published, &s.Creator, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
