package ports

import (
	"context"

	"github.com/gaugeworks/gauge-registry/internal/core/domain"
)

// UpdateUserInput carries the fields an administrator may change on a profile.
// The stored credential is deliberately not updatable through this path.
type UpdateUserInput struct {
	FullName    string
	Active      bool
	PhoneNumber string
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user. A full_name collision surfaces as
	// domain.ErrDuplicateUser; existing rows are never overwritten.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByName retrieves a user by exact full_name match.
	FindByName(ctx context.Context, fullName string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	// UpdatePassword replaces the stored credential. Used to migrate legacy
	// plain-text rows to bcrypt after a successful login.
	UpdatePassword(ctx context.Context, id string, hashed string) error
}
