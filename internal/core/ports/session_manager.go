package ports

import (
	"context"
	"time"

	"github.com/sellora/storefront-admin/internal/core/domain"
)

// SessionManager establishes, resolves, and terminates authenticated
// identities across requests. Tokens are opaque; all state lives server-side
// in a SessionStore.
type SessionManager interface {
	// Login mints a fresh token for the user and persists the mapping.
	Login(ctx context.Context, user *domain.User) (string, error)
	// Logout destroys the mapping. Destroying an unknown token is a no-op.
	Logout(ctx context.Context, token string) error
	// Current re-hydrates the user bound to the token. Returns
	// domain.ErrUserNotFound when the token is unknown, expired, or the user
	// was deleted after login.
	Current(ctx context.Context, token string) (*domain.User, error)
	// TTL is the configured session lifetime, used for cookie expiry.
	TTL() time.Duration
}
