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

type orderRepo struct {
	db *sqlx.DB
}

// NewOrderRepo creates a new PostgreSQL-backed OrderRepository.
func NewOrderRepo(db *sqlx.DB) port.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("orderRepo.Create begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	order.ID = uuid.New()
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	query := `INSERT INTO orders (id, order_number, customer_id, placed_by, status, approve_status,
		subtotal, total_gst, total_amount, due_on, cancel_reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = tx.ExecContext(ctx, query,
		order.ID, order.OrderNumber, order.CustomerID, order.PlacedBy, order.Status,
		order.ApproveStatus, order.Subtotal, order.TotalGST, order.TotalAmount,
		order.DueOn, order.CancelReason, order.CreatedAt, order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("orderRepo.Create: %w", err)
	}

	if err := insertOrderItems(ctx, tx, order); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("orderRepo.Create commit: %w", err)
	}
	return nil
}

func insertOrderItems(ctx context.Context, tx *sqlx.Tx, order *domain.Order) error {
	for i := range order.Items {
		order.Items[i].ID = uuid.New()
		order.Items[i].OrderID = order.ID
		_, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, product_id, name, quantity, unit_price, gst_rate, line_total)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			order.Items[i].ID, order.ID, order.Items[i].ProductID, order.Items[i].Name,
			order.Items[i].Quantity, order.Items[i].UnitPrice, order.Items[i].GSTRate,
			order.Items[i].LineTotal)
		if err != nil {
			return fmt.Errorf("orderRepo insert item: %w", err)
		}
	}
	return nil
}

func (r *orderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	var order domain.Order
	err := r.db.GetContext(ctx, &order, "SELECT * FROM orders WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("orderRepo.GetByID: %w", err)
	}

	err = r.db.SelectContext(ctx, &order.Items,
		"SELECT * FROM order_items WHERE order_id = $1 ORDER BY id", id)
	if err != nil {
		return nil, fmt.Errorf("orderRepo.GetByID items: %w", err)
	}
	return &order, nil
}

func (r *orderRepo) List(ctx context.Context, filter port.OrderFilter, offset, limit int) ([]domain.Order, int, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	n := 1
	if filter.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", n)
		args = append(args, filter.Status)
		n++
	}
	if filter.ApproveStatus != "" {
		where += fmt.Sprintf(" AND approve_status = $%d", n)
		args = append(args, filter.ApproveStatus)
		n++
	}
	if filter.CustomerID != nil {
		where += fmt.Sprintf(" AND customer_id = $%d", n)
		args = append(args, *filter.CustomerID)
		n++
	}
	if filter.From != nil {
		where += fmt.Sprintf(" AND created_at >= $%d", n)
		args = append(args, *filter.From)
		n++
	}
	if filter.To != nil {
		where += fmt.Sprintf(" AND created_at < $%d", n)
		args = append(args, *filter.To)
		n++
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM orders "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("orderRepo.List count: %w", err)
	}

	listQuery := fmt.Sprintf("SELECT * FROM orders %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d", where, n, n+1)
	args = append(args, limit, offset)

	var orders []domain.Order
	if err := r.db.SelectContext(ctx, &orders, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("orderRepo.List: %w", err)
	}
	return orders, total, nil
}

// ReplaceItems swaps the item set and totals of an existing order.
func (r *orderRepo) ReplaceItems(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("orderRepo.ReplaceItems begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	order.UpdatedAt = time.Now().UTC()
	result, err := tx.ExecContext(ctx, `
		UPDATE orders SET subtotal = $1, total_gst = $2, total_amount = $3, updated_at = $4
		WHERE id = $5`,
		order.Subtotal, order.TotalGST, order.TotalAmount, order.UpdatedAt, order.ID)
	if err != nil {
		return fmt.Errorf("orderRepo.ReplaceItems: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM order_items WHERE order_id = $1", order.ID); err != nil {
		return fmt.Errorf("orderRepo.ReplaceItems delete: %w", err)
	}
	if err := insertOrderItems(ctx, tx, order); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("orderRepo.ReplaceItems commit: %w", err)
	}
	return nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, order *domain.Order) error {
	order.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `
		UPDATE orders SET status = $1, approve_status = $2, cancel_reason = $3, updated_at = $4
		WHERE id = $5`,
		order.Status, order.ApproveStatus, order.CancelReason, order.UpdatedAt, order.ID)
	if err != nil {
		return fmt.Errorf("orderRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// NextOrderNumber allocates ORD-{YYMM}-{SEQ} from a monthly sequence row.
func (r *orderRepo) NextOrderNumber(ctx context.Context, date time.Time) (string, error) {
	period := date.Format("0601")
	var seq int
	err := r.db.GetContext(ctx, &seq, `
		INSERT INTO order_sequences (period, last_value)
		VALUES ($1, 1)
		ON CONFLICT (period)
		DO UPDATE SET last_value = order_sequences.last_value + 1
		RETURNING last_value`, period)
	if err != nil {
		return "", fmt.Errorf("orderRepo.NextOrderNumber: %w", err)
	}
	return fmt.Sprintf("ORD-%s-%04d", period, seq), nil
}
