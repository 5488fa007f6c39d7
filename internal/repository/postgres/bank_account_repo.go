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

type bankAccountRepo struct {
	db *sqlx.DB
}

// NewBankAccountRepo creates a new PostgreSQL-backed BankAccountRepository.
func NewBankAccountRepo(db *sqlx.DB) port.BankAccountRepository {
	return &bankAccountRepo{db: db}
}

func (r *bankAccountRepo) Create(ctx context.Context, acct *domain.BankAccount) error {
	acct.ID = uuid.New()
	acct.CreatedAt = time.Now().UTC()

	query := `INSERT INTO bank_accounts (id, bank_name, account_number, ifsc_code, is_default, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query,
		acct.ID, acct.BankName, acct.AccountNumber, acct.IFSCCode, acct.IsDefault, acct.CreatedAt)
	if err != nil {
		return fmt.Errorf("bankAccountRepo.Create: %w", err)
	}
	return nil
}

func (r *bankAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.BankAccount, error) {
	var acct domain.BankAccount
	err := r.db.GetContext(ctx, &acct, "SELECT * FROM bank_accounts WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("bankAccountRepo.GetByID: %w", err)
	}
	return &acct, nil
}

func (r *bankAccountRepo) GetDefault(ctx context.Context) (*domain.BankAccount, error) {
	var acct domain.BankAccount
	err := r.db.GetContext(ctx, &acct, "SELECT * FROM bank_accounts WHERE is_default = true LIMIT 1")
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("bankAccountRepo.GetDefault: %w", err)
	}
	return &acct, nil
}

func (r *bankAccountRepo) List(ctx context.Context) ([]domain.BankAccount, error) {
	var accounts []domain.BankAccount
	err := r.db.SelectContext(ctx, &accounts, "SELECT * FROM bank_accounts ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("bankAccountRepo.List: %w", err)
	}
	return accounts, nil
}

// SetDefault marks one account default and clears the flag on the rest.
func (r *bankAccountRepo) SetDefault(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("bankAccountRepo.SetDefault begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "UPDATE bank_accounts SET is_default = false WHERE is_default = true"); err != nil {
		return fmt.Errorf("bankAccountRepo.SetDefault clear: %w", err)
	}
	result, err := tx.ExecContext(ctx, "UPDATE bank_accounts SET is_default = true WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("bankAccountRepo.SetDefault: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("bankAccountRepo.SetDefault commit: %w", err)
	}
	return nil
}
