package course

import (
	"context"
	"errors"
	"fmt"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

// RegisterInput describes the course to create.
type RegisterInput struct {
	Pair  domain.LangPair
	Level int
}

// Validate checks the input fields.
func (i RegisterInput) Validate() error {
	if err := i.Pair.Validate(); err != nil {
		return err
	}
	if i.Pair.InstructLang == i.Pair.LearnLang {
		return domain.NewValidationError("learnLang", "must differ from instructLang")
	}
	return domain.ValidateLevel(i.Level)
}

// Registration pairs a profile with the course that registration created or
// activated.
type Registration struct {
	User   *domain.User
	Course *domain.Course
}

// Register creates a course for the caller's language pair and points their
// profile at it. First registration also creates the profile. Registering a
// pair the caller already studies fails with ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*Registration, error) {
	email, err := callerEmail(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var out Registration
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		course, err := s.courses.Create(ctx, &domain.Course{
			Email:        email,
			InstructLang: input.Pair.InstructLang,
			LearnLang:    input.Pair.LearnLang,
			Level:        input.Level,
		})
		if err != nil {
			return fmt.Errorf("create course: %w", err)
		}

		user, err := s.users.Upsert(ctx, &domain.User{
			Email:           email,
			CurrentInstruct: input.Pair.InstructLang,
			CurrentLearn:    input.Pair.LearnLang,
			CurrentLevel:    input.Level,
		})
		if err != nil {
			return fmt.Errorf("upsert user: %w", err)
		}

		out = Registration{User: user, Course: course}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "course registered",
		"email", email, "pair", input.Pair.String(), "level", input.Level)

	return &out, nil
}

// Overview is a user's profile with every course they study.
type Overview struct {
	User    *domain.User
	Courses []*domain.Course
}

// Overview returns the caller's profile and all their courses.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	email, err := callerEmail(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	courses, err := s.courses.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	return &Overview{User: user, Courses: courses}, nil
}

// Current returns the caller's profile and the course they are actively
// studying.
func (s *Service) Current(ctx context.Context) (*Registration, error) {
	email, err := callerEmail(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	pair := domain.LangPair{InstructLang: user.CurrentInstruct, LearnLang: user.CurrentLearn}
	course, err := s.courses.GetByKey(ctx, email, pair)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.CourseNotFound(email, pair.InstructLang, pair.LearnLang)
		}
		return nil, fmt.Errorf("get current course: %w", err)
	}

	return &Registration{User: user, Course: course}, nil
}
