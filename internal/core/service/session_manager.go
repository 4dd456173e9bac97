package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sellora/storefront-admin/internal/core/domain"
	"github.com/sellora/storefront-admin/internal/core/ports"
)

const defaultSessionTTL = 24 * time.Hour

type sessionManager struct {
	store ports.SessionStore
	users ports.UserRepository
	ttl   time.Duration
	log   zerolog.Logger
}

// NewSessionManager returns a SessionManager minting opaque UUID tokens and
// persisting the token → user-id mapping in the given store. A non-positive
// ttl falls back to 24 hours.
func NewSessionManager(store ports.SessionStore, users ports.UserRepository, ttl time.Duration, log zerolog.Logger) ports.SessionManager {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &sessionManager{store: store, users: users, ttl: ttl, log: log}
}

func (m *sessionManager) Login(ctx context.Context, user *domain.User) (string, error) {
	token := uuid.NewString()
	if err := m.store.Create(ctx, token, user.ID, m.ttl); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	m.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("session established")
	return token, nil
}

func (m *sessionManager) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := m.store.Destroy(ctx, token); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

// Current resolves a token back to its user. A token whose user has been
// deleted since login resolves to anonymous and the stale session is dropped.
func (m *sessionManager) Current(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUserNotFound
	}

	userID, ok, err := m.store.Resolve(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	user, err := m.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = m.store.Destroy(ctx, token)
			m.log.Warn().Int64("user_id", userID).Msg("session pointed at deleted user, dropped")
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	// Authenticated implies administrator: the persisted flag is not consulted.
	user.IsAdmin = true
	return user, nil
}

func (m *sessionManager) TTL() time.Duration {
	return m.ttl
}
