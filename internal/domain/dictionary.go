package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntryCategory classifies a dictionary entry.
type EntryCategory string

const (
	CategoryWord    EntryCategory = "word"
	CategoryIdiom   EntryCategory = "idiom"
	CategoryGrammar EntryCategory = "grammar"
	// CategoryPhrase is produced by the model but never persisted; the
	// explainer filters it out.
	CategoryPhrase EntryCategory = "phrase"
)

// DictEntry is a cached lexical explanation, global per language pair (not
// per-user). Keyed by exact term text; created the first time any user asks
// for an explanation and reused afterwards.
type DictEntry struct {
	ID            uuid.UUID
	InstructLang  string
	LearnLang     string
	Category      EntryCategory
	Term          string
	Pronunciation *string
	PartOfSpeech  *string
	Definition    string
	Usage         *string
	OtherForms    map[string]string
	Explanation   *string
	AudioURL      *string
	CreatedAt     time.Time
}
