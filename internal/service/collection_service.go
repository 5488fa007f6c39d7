package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nicitum/orderappu-sub000/internal/domain"
	"github.com/nicitum/orderappu-sub000/internal/port"
)

// RecordCollectionInput records a payment against an invoice.
type RecordCollectionInput struct {
	InvoiceID uuid.UUID            `json:"invoice_id" binding:"required"`
	Amount    float64              `json:"amount" binding:"required"`
	Method    domain.PaymentMethod `json:"method" binding:"required"`
	Reference string               `json:"reference"`
}

// InvoiceOutstanding reports how much of an invoice remains unpaid.
type InvoiceOutstanding struct {
	InvoiceID   uuid.UUID `json:"invoice_id"`
	GrandTotal  float64   `json:"grand_total"`
	Collected   float64   `json:"collected"`
	Outstanding float64   `json:"outstanding"`
}

// CollectionService records cash collections against invoices and
// reports per-invoice outstanding balances.
type CollectionService interface {
	Record(ctx context.Context, userID uuid.UUID, input RecordCollectionInput) (*domain.CashCollection, error)
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.CashCollection, error)
	List(ctx context.Context, from, to *time.Time, offset, limit int) ([]domain.CashCollection, int, error)
	Outstanding(ctx context.Context, invoiceID uuid.UUID) (*InvoiceOutstanding, error)
}

type collectionService struct {
	collectionRepo port.CollectionRepository
	invoiceRepo    port.InvoiceRepository
}

// NewCollectionService creates a new CollectionService implementation.
func NewCollectionService(collectionRepo port.CollectionRepository, invoiceRepo port.InvoiceRepository) CollectionService {
	return &collectionService{collectionRepo: collectionRepo, invoiceRepo: invoiceRepo}
}

// Record rejects non-positive amounts and amounts that would take the
// invoice past fully paid.
func (s *collectionService) Record(ctx context.Context, userID uuid.UUID, input RecordCollectionInput) (*domain.CashCollection, error) {
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if !domain.ValidPaymentMethods[input.Method] {
		return nil, domain.ErrInvalidAmount
	}

	inv, err := s.invoiceRepo.GetByID(ctx, input.InvoiceID)
	if err != nil {
		return nil, err
	}
	collected, err := s.collectionRepo.TotalCollected(ctx, input.InvoiceID)
	if err != nil {
		return nil, err
	}
	// Half-paisa tolerance so an exact payoff isn't rejected when the
	// binary sum lands a hair above the stored total.
	if collected+input.Amount > inv.GrandTotal+0.005 {
		return nil, domain.ErrOverCollection
	}

	col := &domain.CashCollection{
		InvoiceID:   input.InvoiceID,
		Amount:      input.Amount,
		Method:      input.Method,
		Reference:   input.Reference,
		CollectedBy: userID,
		CollectedAt: time.Now().UTC(),
	}
	if err := s.collectionRepo.Create(ctx, col); err != nil {
		return nil, err
	}
	return col, nil
}

func (s *collectionService) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.CashCollection, error) {
	return s.collectionRepo.ListByInvoice(ctx, invoiceID)
}

func (s *collectionService) List(ctx context.Context, from, to *time.Time, offset, limit int) ([]domain.CashCollection, int, error) {
	return s.collectionRepo.List(ctx, from, to, offset, limit)
}

func (s *collectionService) Outstanding(ctx context.Context, invoiceID uuid.UUID) (*InvoiceOutstanding, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	collected, err := s.collectionRepo.TotalCollected(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return &InvoiceOutstanding{
		InvoiceID:   invoiceID,
		GrandTotal:  inv.GrandTotal,
		Collected:   collected,
		Outstanding: inv.GrandTotal - collected,
	}, nil
}
