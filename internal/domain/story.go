package domain

import (
	"time"

	"github.com/google/uuid"
)

// ParagraphMarker is substituted for newline characters in generated story
// content so the client can render paragraph breaks from a flat token stream.
// The tokenizer emits it as a single token.
const ParagraphMarker = "##"

// Story is a generated short story in the learn language.
type Story struct {
	ID           uuid.UUID
	Prompt       string
	Content      string
	CoverURL     *string
	Level        int
	Views        int
	InstructLang string
	LearnLang    string
	InstructName string
	LearnName    string
	Published    bool
	Creator      string
	CreatedAt    time.Time
}

// StoryFilter selects stories by optional fields; nil means no constraint.
type StoryFilter struct {
	InstructLang *string
	LearnLang    *string
	Creator      *string
}
