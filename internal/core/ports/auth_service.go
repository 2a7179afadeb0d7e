package ports

import (
	"context"

	"github.com/gaugeworks/gauge-registry/internal/core/domain"
)

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	FullName    string
	Password    string
	PhoneNumber string
	// Role defaults to domain.DefaultRole when empty.
	Role domain.Role
}

// AuthService defines the authentication use cases.
type AuthService interface {
	// Authenticate verifies a name/password pair against the stored
	// credential. Unknown names fail closed with domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, fullName, password string) (*domain.User, error)
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
}

// LoginLimiter throttles repeated failed logins per account name.
// Implementations are optional; a nil limiter disables throttling.
type LoginLimiter interface {
	// Allow reports whether another attempt for fullName is permitted.
	Allow(ctx context.Context, fullName string) (bool, error)
	// RecordFailure notes a failed attempt for fullName.
	RecordFailure(ctx context.Context, fullName string) error
	// Reset clears the failure count after a successful login.
	Reset(ctx context.Context, fullName string) error
}
