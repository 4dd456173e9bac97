package ports

import (
	"context"

	"github.com/sellora/storefront-admin/internal/core/domain"
)

// CreateProductInput carries the fields accepted when creating a product.
type CreateProductInput struct {
	Title       string
	Description string
	Price       float64
	Currency    string
	Category    string
	Images      string
	IsActive    bool
}

// CatalogService exposes the product operations behind the API.
type CatalogService interface {
	ListActive(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id int64, patch ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// AnnouncementService exposes the singleton announcement operations.
type AnnouncementService interface {
	// Active returns (nil, nil) when no announcement is active.
	Active(ctx context.Context) (*domain.Announcement, error)
	Publish(ctx context.Context, message string, isActive bool) (*domain.Announcement, error)
}

// UserService exposes the administrative user operations.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
