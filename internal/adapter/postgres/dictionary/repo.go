// Package dictionary implements the shared explanation cache using PostgreSQL.
package dictionary

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/bolchaal/bolchaal-backend/internal/adapter/postgres"
	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

// Repo provides dictionary entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new dictionary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const entryColumns = `id, instruct_lang, learn_lang, category, term, pronunciation,
part_of_speech, definition, usage_note, other_forms, explanation, audio_url, created_at`

const findByTermSQL = `
SELECT ` + entryColumns + `
FROM dict_entries
WHERE instruct_lang = $1 AND learn_lang = $2 AND term = $3
ORDER BY created_at`

// FindByTerm returns all cached entries for an exact term within a language
// pair. An empty slice means the term has never been explained.
func (r *Repo) FindByTerm(ctx context.Context, pair domain.LangPair, term string) ([]domain.DictEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, findByTermSQL, pair.InstructLang, pair.LearnLang, term)
	if err != nil {
		return nil, fmt.Errorf("find dict_entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

const createEntrySQL = `
INSERT INTO dict_entries (` + entryColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

// CreateBatch persists a group of entries in one round trip.
func (r *Repo) CreateBatch(ctx context.Context, entries []domain.DictEntry) error {
	if len(entries) == 0 {
		return nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	now := time.Now().UTC()
	for i := range entries {
		e := &entries[i]
		if e.ID == uuid.Nil {
			e.ID = uuid.New()
		}
		if e.CreatedAt.IsZero() {
			e.CreatedAt = now
		}
		batch.Queue(createEntrySQL,
			e.ID, e.InstructLang, e.LearnLang, string(e.Category), e.Term,
			e.Pronunciation, e.PartOfSpeech, e.Definition, e.Usage,
			e.OtherForms, e.Explanation, e.AudioURL, e.CreatedAt)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range entries {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "dict_entry", pairKey(entries[0].InstructLang, entries[0].LearnLang))
		}
	}

	return nil
}

const setAudioURLSQL = `
UPDATE dict_entries
SET audio_url = $2
WHERE id = $1`

// SetAudioURL attaches a synthesized pronunciation clip to an entry.
func (r *Repo) SetAudioURL(ctx context.Context, id uuid.UUID, url string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setAudioURLSQL, id, url)
	if err != nil {
		return postgres.MapError(err, "dict_entry", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("dict_entry %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanEntries(rows pgx.Rows) ([]domain.DictEntry, error) {
	var entries []domain.DictEntry
	for rows.Next() {
		var e domain.DictEntry
		var category string
		err := rows.Scan(&e.ID, &e.InstructLang, &e.LearnLang, &category, &e.Term,
			&e.Pronunciation, &e.PartOfSpeech, &e.Definition, &e.Usage,
			&e.OtherForms, &e.Explanation, &e.AudioURL, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan dict_entry: %w", err)
		}
		e.Category = domain.EntryCategory(category)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read dict_entries: %w", err)
	}

	return entries, nil
}

func pairKey(instructLang, learnLang string) string {
	return instructLang + "->" + learnLang
}
