package domain

import (
	"time"

	"github.com/google/uuid"
)

// Course is one user's study track for a language pair. Vocabulary state is
// tracked per course: learnVocab maps learning terms to exposure counts,
// masterVocab lists unseen terms.
type Course struct {
	ID           uuid.UUID
	Email        string
	InstructLang string
	LearnLang    string
	Level        int
	CreatedAt    time.Time
	UpdatedAt    time.Time

	LearnVocab  map[string]int
	MasterVocab []string
}

// Pair returns the course's language pair.
func (c *Course) Pair() LangPair {
	return LangPair{InstructLang: c.InstructLang, LearnLang: c.LearnLang}
}

// MinLevel and MaxLevel bound the proficiency level stored on courses and users.
const (
	MinLevel = 0
	MaxLevel = 5
)

// ValidateLevel checks a proficiency level against the allowed range.
func ValidateLevel(level int) error {
	if level < MinLevel || level > MaxLevel {
		return NewValidationError("level", "must be between 0 and 5")
	}
	return nil
}
