package ports

import (
	"context"

	"github.com/gaugeworks/gauge-registry/internal/core/domain"
)

// UserService defines the administrative use cases over accounts.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	// UpdateProfile changes name, active flag and phone number. Deactivating
	// an account takes effect on the next gate check even if a valid token is
	// still in circulation.
	UpdateProfile(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
}
