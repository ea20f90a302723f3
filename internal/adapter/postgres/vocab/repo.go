// Package vocab implements per-course vocabulary tracking using PostgreSQL.
//
// Each tracked term is one row keyed by (course_id, term) with a state column,
// so a term can never sit in both the unseen and learning buckets at once.
package vocab

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/bolchaal/bolchaal-backend/internal/adapter/postgres"
	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

// Repo provides vocabulary term persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vocab repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const addUnseenSQL = `
INSERT INTO vocab_terms (course_id, term, state, exposure_count, updated_at)
SELECT $1, unnest($2::text[]), 'UNSEEN', 0, now()
ON CONFLICT (course_id, term) DO NOTHING`

// AddUnseen registers terms in the unseen bucket. Terms already tracked for
// the course, in either state, are left untouched. Returns the number of terms
// actually added.
func (r *Repo) AddUnseen(ctx context.Context, courseID uuid.UUID, terms []string) (int, error) {
	if len(terms) == 0 {
		return 0, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, addUnseenSQL, courseID, terms)
	if err != nil {
		return 0, postgres.MapError(err, "vocab_term", courseID.String())
	}

	return int(tag.RowsAffected()), nil
}

const selectTermSQL = `
INSERT INTO vocab_terms (course_id, term, state, exposure_count, updated_at)
VALUES ($1, $2, 'LEARNING', 0, now())
ON CONFLICT (course_id, term) DO UPDATE
SET state = 'LEARNING', exposure_count = 0, updated_at = now()
WHERE vocab_terms.state = 'UNSEEN'`

// SelectTerm moves a term into the learning bucket with a zero exposure count.
// Unseen terms transition to learning; untracked terms are inserted directly
// as learning. Terms already learning are left untouched, so repeated selects
// never reset an accumulated count.
func (r *Repo) SelectTerm(ctx context.Context, courseID uuid.UUID, term string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, selectTermSQL, courseID, term); err != nil {
		return postgres.MapError(err, "vocab_term", termKey(courseID, term))
	}

	return nil
}

const incrementSQL = `
UPDATE vocab_terms
SET exposure_count = CASE WHEN exposure_count + 1 >= $3 THEN 0 ELSE exposure_count + 1 END,
    state          = CASE WHEN exposure_count + 1 >= $3 THEN 'UNSEEN' ELSE state END,
    updated_at     = now()
WHERE course_id = $1 AND term = ANY($2::text[]) AND state = 'LEARNING'
RETURNING term, state, exposure_count`

// IncrementExposures adds one exposure to each listed learning term. A term
// whose count reaches threshold is recycled in the same statement: it returns
// to the unseen bucket with its count reset to zero. Terms not in the learning
// bucket are ignored. Returns the updated rows, recycled terms included.
//
// The threshold comparison and the state flip happen inside one UPDATE, so
// concurrent exposure reports serialize on the row lock and a count can never
// cross the threshold without recycling.
func (r *Repo) IncrementExposures(ctx context.Context, courseID uuid.UUID, terms []string, threshold int) ([]domain.VocabTerm, error) {
	if len(terms) == 0 {
		return nil, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, incrementSQL, courseID, terms, threshold)
	if err != nil {
		return nil, postgres.MapError(err, "vocab_term", courseID.String())
	}
	defer rows.Close()

	var updated []domain.VocabTerm
	for rows.Next() {
		var t domain.VocabTerm
		if err := rows.Scan(&t.Term, &t.State, &t.ExposureCount); err != nil {
			return nil, fmt.Errorf("scan vocab_term: %w", err)
		}
		updated = append(updated, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("increment vocab_terms: %w", err)
	}

	return updated, nil
}

const decrementSQL = `
UPDATE vocab_terms
SET exposure_count = GREATEST(exposure_count - 1, 0), updated_at = now()
WHERE course_id = $1 AND term = $2 AND state = 'LEARNING'
RETURNING exposure_count`

// DecrementExposure subtracts one exposure from a learning term, clamped at
// zero. Returns the new count, or domain.ErrNotFound when the term is not in
// the learning bucket.
func (r *Repo) DecrementExposure(ctx context.Context, courseID uuid.UUID, term string) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := q.QueryRow(ctx, decrementSQL, courseID, term).Scan(&count)
	if err != nil {
		return 0, postgres.MapError(err, "vocab_term", termKey(courseID, term))
	}

	return count, nil
}

const listByCourseSQL = `
SELECT term, state, exposure_count
FROM vocab_terms
WHERE course_id = $1
ORDER BY term`

// ListByCourse returns every tracked term for a course, sorted by term.
func (r *Repo) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]domain.VocabTerm, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByCourseSQL, courseID)
	if err != nil {
		return nil, fmt.Errorf("list vocab_terms: %w", err)
	}
	defer rows.Close()

	var terms []domain.VocabTerm
	for rows.Next() {
		var t domain.VocabTerm
		if err := rows.Scan(&t.Term, &t.State, &t.ExposureCount); err != nil {
			return nil, fmt.Errorf("scan vocab_term: %w", err)
		}
		terms = append(terms, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vocab_terms: %w", err)
	}

	return terms, nil
}

func termKey(courseID uuid.UUID, term string) string {
	return courseID.String() + "/" + term
}
