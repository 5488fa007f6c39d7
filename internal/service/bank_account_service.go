package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/nicitum/orderappu-sub000/internal/domain"
	"github.com/nicitum/orderappu-sub000/internal/port"
)

// CreateBankAccountInput is the DTO for adding a seller bank account.
type CreateBankAccountInput struct {
	BankName      string `json:"bank_name" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required"`
	IFSCCode      string `json:"ifsc_code" binding:"required"`
	IsDefault     bool   `json:"is_default"`
}

// BankAccountService manages the seller bank accounts printed on invoices.
type BankAccountService interface {
	Create(ctx context.Context, input CreateBankAccountInput) (*domain.BankAccount, error)
	List(ctx context.Context) ([]domain.BankAccount, error)
	SetDefault(ctx context.Context, id uuid.UUID) error
}

type bankAccountService struct {
	repo port.BankAccountRepository
}

// NewBankAccountService creates a new BankAccountService implementation.
func NewBankAccountService(repo port.BankAccountRepository) BankAccountService {
	return &bankAccountService{repo: repo}
}

func (s *bankAccountService) Create(ctx context.Context, input CreateBankAccountInput) (*domain.BankAccount, error) {
	acct := &domain.BankAccount{
		BankName:      input.BankName,
		AccountNumber: input.AccountNumber,
		IFSCCode:      input.IFSCCode,
	}
	if err := s.repo.Create(ctx, acct); err != nil {
		return nil, err
	}
	if input.IsDefault {
		if err := s.repo.SetDefault(ctx, acct.ID); err != nil {
			return nil, err
		}
		acct.IsDefault = true
	}
	return acct, nil
}

func (s *bankAccountService) List(ctx context.Context) ([]domain.BankAccount, error) {
	return s.repo.List(ctx)
}

func (s *bankAccountService) SetDefault(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SetDefault(ctx, id)
}
