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

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, inv *domain.Invoice) error {
	inv.ID = uuid.New()
	inv.CreatedAt = time.Now().UTC()

	query := `INSERT INTO invoices (id, invoice_number, order_id, customer_id, created_by,
		invoice_date, summary, grand_total, amount_words, bank_account_id, degraded, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecContext(ctx, query,
		inv.ID, inv.InvoiceNumber, inv.OrderID, inv.CustomerID, inv.CreatedBy,
		inv.InvoiceDate, inv.Summary, inv.GrandTotal, inv.AmountWords,
		inv.BankAccountID, inv.Degraded, inv.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrInvoiceExists
		}
		return fmt.Errorf("invoiceRepo.Create: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv, "SELECT * FROM invoices WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}
	return &inv, nil
}

func (r *invoiceRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv, "SELECT * FROM invoices WHERE order_id = $1", orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByOrderID: %w", err)
	}
	return &inv, nil
}

func (r *invoiceRepo) List(ctx context.Context, customerID *uuid.UUID, from, to *time.Time, offset, limit int) ([]domain.Invoice, int, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	n := 1
	if customerID != nil {
		where += fmt.Sprintf(" AND customer_id = $%d", n)
		args = append(args, *customerID)
		n++
	}
	if from != nil {
		where += fmt.Sprintf(" AND invoice_date >= $%d", n)
		args = append(args, *from)
		n++
	}
	if to != nil {
		where += fmt.Sprintf(" AND invoice_date < $%d", n)
		args = append(args, *to)
		n++
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM invoices "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List count: %w", err)
	}

	listQuery := fmt.Sprintf("SELECT * FROM invoices %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d", where, n, n+1)
	args = append(args, limit, offset)

	var invoices []domain.Invoice
	if err := r.db.SelectContext(ctx, &invoices, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, total, nil
}

// NextInvoiceNumber allocates {PREFIX}-{YEAR}-{SEQ} from a yearly sequence
// row. The upsert is atomic, so concurrent invoicing never reuses a number.
func (r *invoiceRepo) NextInvoiceNumber(ctx context.Context, prefix string, year int) (string, error) {
	var seq int
	err := r.db.GetContext(ctx, &seq, `
		INSERT INTO invoice_sequences (prefix, year, last_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (prefix, year)
		DO UPDATE SET last_value = invoice_sequences.last_value + 1
		RETURNING last_value`, prefix, year)
	if err != nil {
		return "", fmt.Errorf("invoiceRepo.NextInvoiceNumber: %w", err)
	}
	return fmt.Sprintf("%s-%d-%05d", prefix, year, seq), nil
}
