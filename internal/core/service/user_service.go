package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gaugeworks/gauge-registry/internal/core/domain"
	"github.com/gaugeworks/gauge-registry/internal/core/ports"
)

// UserService implements the administrative account operations.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateProfile changes name, active flag and phone number. A deactivation
// bites on the next gate check even while a previously issued token is still
// valid.
func (s *UserService) UpdateProfile(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if input.FullName == "" {
		return nil, domain.ErrInvalidCredentials
	}

	updated, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("user_id", id).
		Bool("active", updated.Active).
		Msg("user profile updated")
	return updated, nil
}
