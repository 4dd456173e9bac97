package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sellora/storefront-admin/internal/core/domain"
	"github.com/sellora/storefront-admin/internal/core/ports"
)

type userService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

// NewUserService returns the administrative user operations.
func NewUserService(users ports.UserRepository, log zerolog.Logger) ports.UserService {
	return &userService{users: users, log: log}
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Delete removes a user. Sessions pointing at the deleted user resolve to
// anonymous on their next request.
func (s *userService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.log.Info().Int64("user_id", id).Msg("user deleted")
	}
	return deleted, nil
}
