package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user profile with an active en->hi course pointer.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	name := "Test User " + suffix
	user := domain.User{
		ID:              uuid.New(),
		Email:           "testuser-" + suffix + "@example.com",
		Name:            &name,
		CurrentInstruct: "en",
		CurrentLearn:    "hi",
		CurrentLevel:    1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, goal, current_instruct, current_learn, current_level, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		user.ID, user.Email, user.Name, user.Goal,
		user.CurrentInstruct, user.CurrentLearn, user.CurrentLevel,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedCourse creates a course for the given email (en->hi, level 1).
// Returns a filled domain.Course with empty vocabulary.
func SeedCourse(t *testing.T, pool *pgxpool.Pool, email string) domain.Course {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	course := domain.Course{
		ID:           uuid.New(),
		Email:        email,
		InstructLang: "en",
		LearnLang:    "hi",
		Level:        1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO courses (id, email, instruct_lang, learn_lang, level, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		course.ID, course.Email, course.InstructLang, course.LearnLang, course.Level,
		course.CreatedAt, course.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCourse insert course: %v", err)
	}

	return course
}

// SeedVocabTerm inserts a tracked term for a course in the given state.
func SeedVocabTerm(t *testing.T, pool *pgxpool.Pool, courseID uuid.UUID, term string, state domain.TermState, count int) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO vocab_terms (course_id, term, state, exposure_count, updated_at)
		 VALUES ($1, $2, $3, $4, now())`,
		courseID, term, string(state), count,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVocabTerm insert %q: %v", term, err)
	}
}

// SeedStory creates a published en->hi story.
func SeedStory(t *testing.T, pool *pgxpool.Pool, creator string) domain.Story {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	story := domain.Story{
		ID:           uuid.New(),
		Prompt:       "a story about " + suffix,
		Content:      "एक बार की बात है। " + domain.ParagraphMarker + " अंत।",
		Level:        1,
		InstructLang: "en",
		LearnLang:    "hi",
		InstructName: "English",
		LearnName:    "Hindi",
		Published:    true,
		Creator:      creator,
		CreatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO stories (id, prompt, content, cover_url, level, views, instruct_lang,
		 learn_lang, instruct_name, learn_name, published, creator, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		story.ID, story.Prompt, story.Content, story.CoverURL, story.Level, story.Views,
		story.InstructLang, story.LearnLang, story.InstructName, story.LearnName,
		story.Published, story.Creator, story.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedStory insert story: %v", err)
	}

	return story
}

// SeedDictEntry creates a cached word explanation for the en->hi pair.
func SeedDictEntry(t *testing.T, pool *pgxpool.Pool, term string) domain.DictEntry {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.DictEntry{
		ID:           uuid.New(),
		InstructLang: "en",
		LearnLang:    "hi",
		Category:     domain.CategoryWord,
		Term:         term,
		Definition:   "definition of " + term,
		OtherForms:   map[string]string{},
		CreatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO dict_entries (id, instruct_lang, learn_lang, category, term, pronunciation,
		 part_of_speech, definition, usage_note, other_forms, explanation, audio_url, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		entry.ID, entry.InstructLang, entry.LearnLang, string(entry.Category), entry.Term,
		entry.Pronunciation, entry.PartOfSpeech, entry.Definition, entry.Usage,
		entry.OtherForms, entry.Explanation, entry.AudioURL, entry.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDictEntry insert %q: %v", term, err)
	}

	return entry
}
