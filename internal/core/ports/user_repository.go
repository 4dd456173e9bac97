package ports

import (
	"context"

	"github.com/sellora/storefront-admin/internal/core/domain"
)

// UserRepository defines the persistence contract for User records.
// Lookups return domain.ErrUserNotFound when the id or username is absent;
// any other error means the store itself failed.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Delete reports whether a row was actually removed. A missing id is not
	// an error.
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
}
