package ports

import (
	"context"

	"github.com/sellora/storefront-admin/internal/core/domain"
)

// AuthService checks a submitted credential pair against stored users.
type AuthService interface {
	// Validate returns the matching user, or one of
	// domain.ErrMissingCredentials, domain.ErrUserNotFound,
	// domain.ErrIncorrectPassword. Callers exposed to the network must
	// collapse the three into a single generic rejection.
	Validate(ctx context.Context, username, password string) (*domain.User, error)
}
