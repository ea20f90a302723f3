package vocab

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

// Update applies one vocabulary PATCH atomically and returns the resulting
// bucket snapshot. The three modes combine in one request: Token selects a
// term into the learning bucket, UniqueTokens records exposures, and
// DecrementToken backs one exposure out.
//
// Exposure recording is two steps per term list: terms already in the learning
// bucket get an atomic increment with threshold rollover; everything else is
// registered as unseen (already-tracked terms untouched). Decrement is a
// silent no-op for terms outside the learning bucket.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*Buckets, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	course, err := s.resolveCourse(ctx, input.Pair)
	if err != nil {
		return nil, err
	}

	terms := normalizeTerms(input.UniqueTokens)

	var recycled []string
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if input.Token != nil {
			term := domain.NormalizeTerm(*input.Token)
			if err := s.vocab.SelectTerm(ctx, course.ID, term); err != nil {
				return fmt.Errorf("select term: %w", err)
			}
		}

		if len(terms) > 0 {
			updated, err := s.vocab.IncrementExposures(ctx, course.ID, terms, s.threshold)
			if err != nil {
				return fmt.Errorf("increment exposures: %w", err)
			}
			for _, t := range updated {
				if t.State == domain.TermUnseen {
					recycled = append(recycled, t.Term)
				}
			}

			if _, err := s.vocab.AddUnseen(ctx, course.ID, terms); err != nil {
				return fmt.Errorf("add unseen: %w", err)
			}
		}

		if input.DecrementToken != nil {
			term := domain.NormalizeTerm(*input.DecrementToken)
			if _, err := s.vocab.DecrementExposure(ctx, course.ID, term); err != nil {
				if !errors.Is(err, domain.ErrNotFound) {
					return fmt.Errorf("decrement exposure: %w", err)
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(recycled) > 0 {
		s.log.InfoContext(ctx, "terms recycled to unseen",
			slog.String("course_id", course.ID.String()),
			slog.Int("count", len(recycled)),
		)
	}

	all, err := s.vocab.ListByCourse(ctx, course.ID)
	if err != nil {
		return nil, fmt.Errorf("list vocab: %w", err)
	}

	buckets := bucketize(all)
	return &buckets, nil
}

// normalizeTerms case-folds, trims, and deduplicates while preserving order.
// Empty results are dropped.
func normalizeTerms(terms []string) []string {
	seen := make(map[string]bool, len(terms))
	out := make([]string, 0, len(terms))
	for _, raw := range terms {
		term := domain.NormalizeTerm(raw)
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true
		out = append(out, term)
	}
	return out
}
