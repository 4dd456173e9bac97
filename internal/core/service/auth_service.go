package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/sellora/storefront-admin/internal/core/domain"
	"github.com/sellora/storefront-admin/internal/core/ports"
)

type authService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

// NewAuthService returns the credential validator backed by the user store.
func NewAuthService(users ports.UserRepository, log zerolog.Logger) ports.AuthService {
	return &authService{users: users, log: log}
}

// Validate checks the submitted pair against the stored record. The checks run
// in a fixed order: presence, lookup, then exact password equality. Passwords
// are compared verbatim; the store holds them exactly as imported from the
// seed file.
func (s *authService) Validate(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Debug().Str("username", username).Msg("login attempt for unknown user")
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if user.Password != password {
		s.log.Debug().Str("username", username).Msg("login attempt with wrong password")
		return nil, domain.ErrIncorrectPassword
	}

	// Every operator that can log in is an administrator; the stored flag is
	// ignored. Authorization is a single authenticated capability.
	user.IsAdmin = true
	return user, nil
}
