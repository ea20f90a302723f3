package story

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

// List returns published stories matching the filter, newest first.
func (s *Service) List(ctx context.Context, filter domain.StoryFilter) ([]*domain.Story, error) {
	stories, err := s.stories.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}
	return stories, nil
}

// Get returns one story and counts the read as a view.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Story, error) {
	story, err := s.stories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get story: %w", err)
	}

	views, err := s.stories.IncrementViews(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count view: %w", err)
	}
	story.Views = views

	return story, nil
}
