package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nicitum/orderappu-sub000/internal/domain"
	"github.com/nicitum/orderappu-sub000/internal/port"
)

type productRepo struct {
	db *sqlx.DB
}

// NewProductRepo creates a new PostgreSQL-backed ProductRepository.
func NewProductRepo(db *sqlx.DB) port.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *domain.Product) error {
	product.ID = uuid.New()
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	query := `INSERT INTO products (id, name, brand, category, hsn_code, product_code, uom,
		price, discount_price, gst_rate, is_enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.ExecContext(ctx, query,
		product.ID, product.Name, product.Brand, product.Category, product.HSNCode,
		product.ProductCode, product.UOM, product.Price, product.DiscountPrice,
		product.GSTRate, product.IsEnabled, product.CreatedAt, product.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateProductCode
		}
		return fmt.Errorf("productRepo.Create: %w", err)
	}
	return nil
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var product domain.Product
	err := r.db.GetContext(ctx, &product, "SELECT * FROM products WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("productRepo.GetByID: %w", err)
	}
	return &product, nil
}

func (r *productRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In("SELECT * FROM products WHERE id IN (?)", ids)
	if err != nil {
		return nil, fmt.Errorf("productRepo.GetByIDs: %w", err)
	}
	query = r.db.Rebind(query)

	var products []domain.Product
	if err := r.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("productRepo.GetByIDs: %w", err)
	}
	return products, nil
}

// Search filters the catalogue by a free-text name/code query plus optional
// brand and category, matching the product picker's behaviour.
func (r *productRepo) Search(ctx context.Context, query, brand, category string, offset, limit int) ([]domain.Product, int, error) {
	where := "WHERE is_enabled = true"
	args := []interface{}{}
	n := 1
	if query != "" {
		where += fmt.Sprintf(" AND (name ILIKE $%d OR product_code ILIKE $%d)", n, n)
		args = append(args, "%"+query+"%")
		n++
	}
	if brand != "" {
		where += fmt.Sprintf(" AND brand = $%d", n)
		args = append(args, brand)
		n++
	}
	if category != "" {
		where += fmt.Sprintf(" AND category = $%d", n)
		args = append(args, category)
		n++
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM products "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("productRepo.Search count: %w", err)
	}

	listQuery := fmt.Sprintf("SELECT * FROM products %s ORDER BY name LIMIT $%d OFFSET $%d", where, n, n+1)
	args = append(args, limit, offset)

	var products []domain.Product
	if err := r.db.SelectContext(ctx, &products, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("productRepo.Search: %w", err)
	}
	return products, total, nil
}

func (r *productRepo) Update(ctx context.Context, product *domain.Product) error {
	product.UpdatedAt = time.Now().UTC()
	query := `UPDATE products SET name = $1, brand = $2, category = $3, hsn_code = $4,
		product_code = $5, uom = $6, price = $7, discount_price = $8, gst_rate = $9,
		is_enabled = $10, updated_at = $11 WHERE id = $12`
	result, err := r.db.ExecContext(ctx, query,
		product.Name, product.Brand, product.Category, product.HSNCode, product.ProductCode,
		product.UOM, product.Price, product.DiscountPrice, product.GSTRate,
		product.IsEnabled, product.UpdatedAt, product.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateProductCode
		}
		return fmt.Errorf("productRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
