package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sellora/storefront-admin/internal/core/domain"
	"github.com/sellora/storefront-admin/internal/core/ports"
)

type catalogService struct {
	products ports.ProductRepository
	log      zerolog.Logger
}

// NewCatalogService returns the product operations backed by the record store.
func NewCatalogService(products ports.ProductRepository, log zerolog.Logger) ports.CatalogService {
	return &catalogService{products: products, log: log}
}

func (s *catalogService) ListActive(ctx context.Context) ([]domain.Product, error) {
	return s.products.ListActive(ctx)
}

func (s *catalogService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Currency:    in.Currency,
		Category:    in.Category,
		Images:      in.Images,
		IsActive:    in.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		s.log.Error().Err(err).Str("title", in.Title).Msg("failed to create product")
		return nil, err
	}

	s.log.Info().Int64("product_id", created.ID).Str("title", created.Title).Msg("product created")
	return created, nil
}

func (s *catalogService) Update(ctx context.Context, id int64, patch ports.ProductPatch) (*domain.Product, error) {
	updated, err := s.products.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("product_id", id).Msg("product updated")
	return updated, nil
}

func (s *catalogService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.products.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.log.Info().Int64("product_id", id).Msg("product deleted")
	}
	return deleted, nil
}
