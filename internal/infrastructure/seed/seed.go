// Package seed performs the one-time import of credential records into an
// empty user store at process start.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/sellora/storefront-admin/internal/core/domain"
	"github.com/sellora/storefront-admin/internal/core/ports"
)

// Record is one entry of the external credential file: a JSON array of
// {uid, username, email, password} objects.
type Record struct {
	UID      string `json:"uid"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Load seeds the user store from the file at path, preserving file order.
//
// The operation is idempotent by emptiness, not by content: a store that
// already holds at least one user is never touched, regardless of what the
// file contains. An absent file is a no-op. A malformed file or a failed
// insert returns an error, which the caller must treat as fatal: the process
// must not serve traffic after a silently failed seed.
func Load(ctx context.Context, path string, users ports.UserRepository, log zerolog.Logger) error {
	count, err := users.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: count users: %w", err)
	}
	if count > 0 {
		log.Debug().Int64("users", count).Msg("user store not empty, skipping seed")
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("path", path).Msg("no seed file, skipping seed")
			return nil
		}
		return fmt.Errorf("seed: read %s: %w", path, err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("seed: parse %s: %w", path, err)
	}

	for i, rec := range records {
		if rec.Username == "" {
			return fmt.Errorf("seed: record %d: missing username", i)
		}
		if _, err := users.Create(ctx, &domain.User{
			UID:      rec.UID,
			Username: rec.Username,
			Email:    rec.Email,
			Password: rec.Password,
		}); err != nil {
			return fmt.Errorf("seed: insert %q: %w", rec.Username, err)
		}
	}

	log.Info().Int("users", len(records)).Str("path", path).Msg("seeded users from credential file")
	return nil
}
