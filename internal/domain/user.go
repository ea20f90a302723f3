package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account owned by the external identity provider. The backend
// stores only the profile fields it needs; credentials never pass through here.
type User struct {
	ID              uuid.UUID
	Email           string
	Name            *string
	Goal            *string
	CurrentInstruct string
	CurrentLearn    string
	CurrentLevel    int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
