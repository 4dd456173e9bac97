package ports

import (
	"context"
	"time"
)

// SessionStore holds the ephemeral token → user-id mapping. It is logically
// separate from the durable record set and must be safe for concurrent use.
type SessionStore interface {
	Create(ctx context.Context, token string, userID int64, ttl time.Duration) error
	// Resolve returns the user id bound to the token. The second result is
	// false when the token is unknown or expired.
	Resolve(ctx context.Context, token string) (int64, bool, error)
	Destroy(ctx context.Context, token string) error
}
