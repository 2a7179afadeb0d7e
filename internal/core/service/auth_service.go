package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gaugeworks/gauge-registry/internal/core/domain"
	"github.com/gaugeworks/gauge-registry/internal/core/ports"
)

// AuthService implements account registration and password authentication.
type AuthService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, logger: logger}
}

// Authenticate verifies a name/password pair. Unknown names fail closed with
// domain.ErrInvalidCredentials, indistinguishable from a wrong password.
//
// Legacy accounts whose stored credential is still plain text can log in: the
// verifier falls back to byte equality for them, and a successful plain-text
// login upgrades the stored credential to a bcrypt hash in place. The upgrade
// is best-effort; a failure to rehash does not fail the login.
func (s *AuthService) Authenticate(ctx context.Context, fullName, password string) (*domain.User, error) {
	user, err := s.repo.FindByName(ctx, fullName)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !VerifyPassword(password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	if !domain.ParseCredential(user.Password).IsHashed() {
		s.migratePassword(ctx, user, password)
	}

	return user, nil
}

// migratePassword rehashes a legacy plain-text credential after the owner has
// proven it.
func (s *AuthService) migratePassword(ctx context.Context, user *domain.User, password string) {
	hashed, err := HashPassword(password)
	if err == nil {
		err = s.repo.UpdatePassword(ctx, user.ID, hashed)
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("legacy password rehash failed")
		return
	}
	user.Password = hashed
	s.logger.Info().Str("user_id", user.ID).Msg("legacy password migrated to bcrypt")
}

// Register creates a new account with a hashed credential. A name collision
// surfaces as domain.ErrDuplicateUser; nothing is overwritten.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.FullName == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role := input.Role
	if role == "" {
		role = domain.DefaultRole
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FullName:    input.FullName,
		Password:    hashed,
		Role:        role,
		Active:      true,
		PhoneNumber: input.PhoneNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}
