package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sellora/storefront-admin/internal/core/domain"
	"github.com/sellora/storefront-admin/internal/core/ports"
)

const productColumns = "id, title, description, price, currency, category, images, isActive, createdAt, updatedAt"

// ProductRepository persists catalog products.
type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+productColumns+" FROM products WHERE id = ?", id)
	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return product, nil
}

// ListActive returns only products whose active flag is set, newest first.
func (r *ProductRepository) ListActive(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE isActive = 1 ORDER BY createdAt DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("list products: %w", err)
		}
		products = append(products, *product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	now := time.Now().UTC()
	createdAt, updatedAt := product.CreatedAt, product.UpdatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO products (title, description, price, currency, category, images, isActive, createdAt, updatedAt) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		product.Title, product.Description, product.Price, product.Currency, product.Category,
		nullable(product.Images), boolToInt(product.IsActive), createdAt.UnixMilli(), updatedAt.UnixMilli(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return r.GetByID(ctx, id)
}

// Update applies only the supplied fields and refreshes the update timestamp,
// then re-reads the row so the caller sees authoritative state.
func (r *ProductRepository) Update(ctx context.Context, id int64, patch ports.ProductPatch) (*domain.Product, error) {
	sets := make([]string, 0, 8)
	args := make([]any, 0, 9)

	if patch.Title != nil {
		sets, args = append(sets, "title = ?"), append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets, args = append(sets, "description = ?"), append(args, *patch.Description)
	}
	if patch.Price != nil {
		sets, args = append(sets, "price = ?"), append(args, *patch.Price)
	}
	if patch.Currency != nil {
		sets, args = append(sets, "currency = ?"), append(args, *patch.Currency)
	}
	if patch.Category != nil {
		sets, args = append(sets, "category = ?"), append(args, *patch.Category)
	}
	if patch.Images != nil {
		sets, args = append(sets, "images = ?"), append(args, nullable(*patch.Images))
	}
	if patch.IsActive != nil {
		sets, args = append(sets, "isActive = ?"), append(args, boolToInt(*patch.IsActive))
	}

	sets = append(sets, "updatedAt = ?")
	args = append(args, time.Now().UTC().UnixMilli(), id)

	res, err := r.db.ExecContext(ctx, "UPDATE products SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if n == 0 {
		return nil, domain.ErrProductNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return n > 0, nil
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var (
		p                    domain.Product
		images               sql.NullString
		isActive             int64
		createdAt, updatedAt int64
	)
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Currency, &p.Category,
		&images, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	p.Images = images.String
	p.IsActive = isActive != 0
	p.CreatedAt = millisToTime(createdAt)
	p.UpdatedAt = millisToTime(updatedAt)
	return &p, nil
}
