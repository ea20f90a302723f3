package vocab

import (
	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

// UpdateInput carries one vocabulary PATCH. The three modes are combinable in
// a single request; each nil/empty field is skipped.
type UpdateInput struct {
	Pair domain.LangPair

	// Token records one exposure for a single term.
	Token *string
	// UniqueTokens records one exposure per distinct listed term.
	UniqueTokens []string
	// DecrementToken takes one exposure back from a single term.
	DecrementToken *string
}

// Validate checks that the input names at least one operation.
func (in *UpdateInput) Validate() error {
	if err := in.Pair.Validate(); err != nil {
		return err
	}
	if in.Token == nil && len(in.UniqueTokens) == 0 && in.DecrementToken == nil {
		return domain.NewValidationError("body", "no vocabulary operation given")
	}
	if in.Token != nil && *in.Token == "" {
		return domain.NewValidationError("token", "must not be empty")
	}
	if in.DecrementToken != nil && *in.DecrementToken == "" {
		return domain.NewValidationError("decrementToken", "must not be empty")
	}
	return nil
}

// SelectInput names a term the user chose to study.
type SelectInput struct {
	Pair domain.LangPair
	Term string
}

// Validate checks required fields.
func (in *SelectInput) Validate() error {
	if err := in.Pair.Validate(); err != nil {
		return err
	}
	if in.Term == "" {
		return domain.NewValidationError("term", "must not be empty")
	}
	return nil
}
