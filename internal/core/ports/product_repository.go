package ports

import (
	"context"

	"github.com/sellora/storefront-admin/internal/core/domain"
)

// ProductPatch carries a partial update. Nil fields are left untouched; a
// non-nil field overwrites the stored value, including overwriting with the
// zero value.
type ProductPatch struct {
	Title       *string
	Description *string
	Price       *float64
	Currency    *string
	Category    *string
	Images      *string
	IsActive    *bool
}

// Empty reports whether the patch carries no fields at all.
func (p ProductPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Price == nil &&
		p.Currency == nil && p.Category == nil && p.Images == nil && p.IsActive == nil
}

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	// ListActive returns only products with the active flag set, newest first.
	ListActive(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// Update applies the patch and refreshes the update timestamp, then
	// returns the row as stored. Absent id → domain.ErrProductNotFound.
	Update(ctx context.Context, id int64, patch ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
