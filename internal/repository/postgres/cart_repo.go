package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nicitum/orderappu-sub000/internal/domain"
	"github.com/nicitum/orderappu-sub000/internal/port"
)

type cartRepo struct {
	db *sqlx.DB
}

// NewCartRepo creates a new PostgreSQL-backed CartRepository.
func NewCartRepo(db *sqlx.DB) port.CartRepository {
	return &cartRepo{db: db}
}

func (r *cartRepo) Get(ctx context.Context, userID, customerID uuid.UUID) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.db.GetContext(ctx, &cart,
		"SELECT * FROM carts WHERE user_id = $1 AND customer_id = $2", userID, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("cartRepo.Get: %w", err)
	}

	err = r.db.SelectContext(ctx, &cart.Items,
		"SELECT * FROM cart_items WHERE cart_id = $1 ORDER BY id", cart.ID)
	if err != nil {
		return nil, fmt.Errorf("cartRepo.Get items: %w", err)
	}
	return &cart, nil
}

// ReplaceItems upserts the cart row and swaps its item set atomically.
func (r *cartRepo) ReplaceItems(ctx context.Context, userID, customerID uuid.UUID, items []domain.CartItem) (*domain.Cart, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("cartRepo.ReplaceItems begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	cart := domain.Cart{UserID: userID, CustomerID: customerID, UpdatedAt: now}
	err = tx.GetContext(ctx, &cart.ID, `
		INSERT INTO carts (id, user_id, customer_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (user_id, customer_id)
		DO UPDATE SET updated_at = EXCLUDED.updated_at
		RETURNING id`,
		uuid.New(), userID, customerID, now)
	if err != nil {
		return nil, fmt.Errorf("cartRepo.ReplaceItems upsert: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM cart_items WHERE cart_id = $1", cart.ID); err != nil {
		return nil, fmt.Errorf("cartRepo.ReplaceItems delete: %w", err)
	}

	for i := range items {
		items[i].ID = uuid.New()
		items[i].CartID = cart.ID
		_, err := tx.ExecContext(ctx, `
			INSERT INTO cart_items (id, cart_id, product_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5)`,
			items[i].ID, cart.ID, items[i].ProductID, items[i].Quantity, items[i].UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("cartRepo.ReplaceItems insert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("cartRepo.ReplaceItems commit: %w", err)
	}
	cart.Items = items
	return &cart, nil
}

func (r *cartRepo) Clear(ctx context.Context, userID, customerID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM carts WHERE user_id = $1 AND customer_id = $2`, userID, customerID)
	if err != nil {
		return fmt.Errorf("cartRepo.Clear: %w", err)
	}
	return nil
}
