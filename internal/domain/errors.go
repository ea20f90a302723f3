package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")

	// ErrUnsupportedLanguage is returned when a language code does not name
	// a known tokenizer profile.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrCourseNotFound is returned by vocabulary operations when no course
	// exists for the given user and language pair.
	ErrCourseNotFound = errors.New("course not found")

	// ErrExplanationParse marks an unparseable structured response from the
	// generative service. Not retried: the same input reproduces the failure.
	ErrExplanationParse = errors.New("explanation parse error")

	// ErrUpstreamTimeout and ErrUpstreamUnavailable classify failures of the
	// generative-text, TTS, and blob-storage services. Core services do not
	// retry on them; that is the caller's decision.
	ErrUpstreamTimeout     = errors.New("upstream timeout")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// CourseNotFound wraps ErrCourseNotFound with the identifying fields.
func CourseNotFound(email, instructLang, learnLang string) error {
	return fmt.Errorf("course %s %s->%s: %w", email, instructLang, learnLang, ErrCourseNotFound)
}

// ExplanationParseError carries the raw upstream text of an unparseable
// structured response for diagnostics. Partial results are never returned
// alongside it.
type ExplanationParseError struct {
	Reason string
	Raw    string
}

func (e *ExplanationParseError) Error() string {
	return fmt.Sprintf("explanation parse: %s", e.Reason)
}

func (e *ExplanationParseError) Unwrap() error { return ErrExplanationParse }

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}
