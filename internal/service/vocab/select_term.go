package vocab

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

// SelectTerm moves a term into the learning bucket with a fresh exposure
// count. Selecting a term that is already learning changes nothing; repeated
// taps on the same word must not erase progress.
func (s *Service) SelectTerm(ctx context.Context, input SelectInput) (*Buckets, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	course, err := s.resolveCourse(ctx, input.Pair)
	if err != nil {
		return nil, err
	}

	term := domain.NormalizeTerm(input.Term)
	if term == "" {
		return nil, domain.NewValidationError("term", "must not be empty")
	}

	if err := s.vocab.SelectTerm(ctx, course.ID, term); err != nil {
		return nil, fmt.Errorf("select term: %w", err)
	}

	s.log.InfoContext(ctx, "term selected",
		slog.String("course_id", course.ID.String()),
		slog.String("term", term),
	)

	all, err := s.vocab.ListByCourse(ctx, course.ID)
	if err != nil {
		return nil, fmt.Errorf("list vocab: %w", err)
	}

	buckets := bucketize(all)
	return &buckets, nil
}
