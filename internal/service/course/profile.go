package course

import (
	"context"
	"errors"
	"fmt"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

// GetUser returns the caller's profile.
func (s *Service) GetUser(ctx context.Context) (*domain.User, error) {
	email, err := callerEmail(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return user, nil
}

// ProfileInput patches display fields; nil fields are left unchanged.
type ProfileInput struct {
	Name *string
	Goal *string
}

// Validate checks that the patch changes something.
func (i ProfileInput) Validate() error {
	if i.Name == nil && i.Goal == nil {
		return domain.NewValidationError("profile", "no fields to update")
	}
	return nil
}

// UpdateProfile patches the caller's name and goal.
func (s *Service) UpdateProfile(ctx context.Context, input ProfileInput) (*domain.User, error) {
	email, err := callerEmail(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.UpdateProfile(ctx, email, input.Name, input.Goal)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	return user, nil
}

// SwitchInput selects which course to make active, optionally adjusting its
// level.
type SwitchInput struct {
	Pair  domain.LangPair
	Level int
}

// Validate checks the input fields.
func (i SwitchInput) Validate() error {
	if err := i.Pair.Validate(); err != nil {
		return err
	}
	return domain.ValidateLevel(i.Level)
}

// SwitchCourse makes an existing course the caller's active one and records
// the level on both the course and the profile.
func (s *Service) SwitchCourse(ctx context.Context, input SwitchInput) (*Registration, error) {
	email, err := callerEmail(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	course, err := s.courses.GetByKey(ctx, email, input.Pair)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.CourseNotFound(email, input.Pair.InstructLang, input.Pair.LearnLang)
		}
		return nil, fmt.Errorf("get course: %w", err)
	}

	var out Registration
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		updated, err := s.courses.UpdateLevel(ctx, course.ID, input.Level)
		if err != nil {
			return fmt.Errorf("update course level: %w", err)
		}

		user, err := s.users.SetCurrentCourse(ctx, email,
			input.Pair.InstructLang, input.Pair.LearnLang, input.Level)
		if err != nil {
			return fmt.Errorf("set current course: %w", err)
		}

		out = Registration{User: user, Course: updated}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "active course switched",
		"email", email, "pair", input.Pair.String(), "level", input.Level)

	return &out, nil
}
