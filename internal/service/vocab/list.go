package vocab

import (
	"context"
	"fmt"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

// List returns the caller's vocabulary snapshot for a language pair.
func (s *Service) List(ctx context.Context, pair domain.LangPair) (*Buckets, error) {
	course, err := s.resolveCourse(ctx, pair)
	if err != nil {
		return nil, err
	}

	all, err := s.vocab.ListByCourse(ctx, course.ID)
	if err != nil {
		return nil, fmt.Errorf("list vocab: %w", err)
	}

	buckets := bucketize(all)
	return &buckets, nil
}
