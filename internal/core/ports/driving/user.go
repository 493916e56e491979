package driving

import (
	"context"

	"github.com/vitragvani-labs/granth-core/internal/core/domain"
)

// UserService handles user registration and lookup
type UserService interface {
	// Register creates a new user. Returns domain.ErrInvalidInput when any
	// required field is missing and domain.ErrAlreadyExists for a duplicate
	// email (case-insensitive).
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error)

	// Get retrieves a user by ID
	Get(ctx context.Context, id string) (*domain.User, error)
}
