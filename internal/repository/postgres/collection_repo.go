package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nicitum/orderappu-sub000/internal/domain"
	"github.com/nicitum/orderappu-sub000/internal/port"
)

type collectionRepo struct {
	db *sqlx.DB
}

// NewCollectionRepo creates a new PostgreSQL-backed CollectionRepository.
func NewCollectionRepo(db *sqlx.DB) port.CollectionRepository {
	return &collectionRepo{db: db}
}

func (r *collectionRepo) Create(ctx context.Context, col *domain.CashCollection) error {
	col.ID = uuid.New()
	if col.CollectedAt.IsZero() {
		col.CollectedAt = time.Now().UTC()
	}

	query := `INSERT INTO cash_collections (id, invoice_id, amount, method, reference, collected_by, collected_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query,
		col.ID, col.InvoiceID, col.Amount, col.Method, col.Reference, col.CollectedBy, col.CollectedAt)
	if err != nil {
		return fmt.Errorf("collectionRepo.Create: %w", err)
	}
	return nil
}

func (r *collectionRepo) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.CashCollection, error) {
	var cols []domain.CashCollection
	err := r.db.SelectContext(ctx, &cols,
		"SELECT * FROM cash_collections WHERE invoice_id = $1 ORDER BY collected_at", invoiceID)
	if err != nil {
		return nil, fmt.Errorf("collectionRepo.ListByInvoice: %w", err)
	}
	return cols, nil
}

func (r *collectionRepo) List(ctx context.Context, from, to *time.Time, offset, limit int) ([]domain.CashCollection, int, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	n := 1
	if from != nil {
		where += fmt.Sprintf(" AND collected_at >= $%d", n)
		args = append(args, *from)
		n++
	}
	if to != nil {
		where += fmt.Sprintf(" AND collected_at < $%d", n)
		args = append(args, *to)
		n++
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM cash_collections "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("collectionRepo.List count: %w", err)
	}

	listQuery := fmt.Sprintf("SELECT * FROM cash_collections %s ORDER BY collected_at DESC LIMIT $%d OFFSET $%d", where, n, n+1)
	args = append(args, limit, offset)

	var cols []domain.CashCollection
	if err := r.db.SelectContext(ctx, &cols, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("collectionRepo.List: %w", err)
	}
	return cols, total, nil
}

func (r *collectionRepo) TotalCollected(ctx context.Context, invoiceID uuid.UUID) (float64, error) {
	var total float64
	err := r.db.GetContext(ctx, &total,
		"SELECT COALESCE(SUM(amount), 0) FROM cash_collections WHERE invoice_id = $1", invoiceID)
	if err != nil {
		return 0, fmt.Errorf("collectionRepo.TotalCollected: %w", err)
	}
	return total, nil
}
