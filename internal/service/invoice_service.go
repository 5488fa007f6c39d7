package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nicitum/orderappu-sub000/internal/domain"
	"github.com/nicitum/orderappu-sub000/internal/gst"
	"github.com/nicitum/orderappu-sub000/internal/port"
)

// DirectInvoiceItemInput is one ad-hoc line on a direct invoice.
type DirectInvoiceItemInput struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  float64   `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64   `json:"unit_price"`
}

// DirectInvoiceInput creates an invoice without a backing order.
type DirectInvoiceInput struct {
	CustomerID    uuid.UUID                `json:"customer_id" binding:"required"`
	Items         []DirectInvoiceItemInput `json:"items" binding:"required"`
	InvoiceDate   *time.Time               `json:"invoice_date"`
	BankAccountID *uuid.UUID               `json:"bank_account_id"`
}

// InvoiceFromOrderInput raises an invoice from an accepted order.
type InvoiceFromOrderInput struct {
	OrderID       uuid.UUID  `json:"order_id" binding:"required"`
	BankAccountID *uuid.UUID `json:"bank_account_id"`
}

// InvoiceService raises invoices, either from accepted orders or
// directly from ad-hoc item lines, and runs the tax engine over them.
type InvoiceService interface {
	CreateFromOrder(ctx context.Context, userID uuid.UUID, input InvoiceFromOrderInput) (*domain.Invoice, error)
	CreateDirect(ctx context.Context, userID uuid.UUID, input DirectInvoiceInput) (*domain.Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, customerID *uuid.UUID, from, to *time.Time, offset, limit int) ([]domain.Invoice, int, error)
}

type invoiceService struct {
	invoiceRepo   port.InvoiceRepository
	orderRepo     port.OrderRepository
	productRepo   port.ProductRepository
	customerRepo  port.CustomerRepository
	bankRepo      port.BankAccountRepository
	clientService ClientService
	numberPrefix  string
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	invoiceRepo port.InvoiceRepository,
	orderRepo port.OrderRepository,
	productRepo port.ProductRepository,
	customerRepo port.CustomerRepository,
	bankRepo port.BankAccountRepository,
	clientService ClientService,
	numberPrefix string,
) InvoiceService {
	return &invoiceService{
		invoiceRepo:   invoiceRepo,
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		customerRepo:  customerRepo,
		bankRepo:      bankRepo,
		clientService: clientService,
		numberPrefix:  numberPrefix,
	}
}

func (s *invoiceService) CreateFromOrder(ctx context.Context, userID uuid.UUID, input InvoiceFromOrderInput) (*domain.Invoice, error) {
	order, err := s.orderRepo.GetByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order.ApproveStatus != domain.ApproveAccepted {
		return nil, domain.ErrOrderNotAccepted
	}
	if _, err := s.invoiceRepo.GetByOrderID(ctx, order.ID); err == nil {
		return nil, domain.ErrInvoiceExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	details, err := s.detailsFromOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	return s.create(ctx, userID, order.CustomerID, &order.ID, details, time.Now().UTC(), input.BankAccountID)
}

func (s *invoiceService) CreateDirect(ctx context.Context, userID uuid.UUID, input DirectInvoiceInput) (*domain.Invoice, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyItems
	}

	details, err := s.detailsFromInput(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	date := time.Now().UTC()
	if input.InvoiceDate != nil {
		date = *input.InvoiceDate
	}
	return s.create(ctx, userID, input.CustomerID, nil, details, date, input.BankAccountID)
}

func (s *invoiceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.invoiceRepo.GetByID(ctx, id)
}

func (s *invoiceService) List(ctx context.Context, customerID *uuid.UUID, from, to *time.Time, offset, limit int) ([]domain.Invoice, int, error) {
	return s.invoiceRepo.List(ctx, customerID, from, to, offset, limit)
}

// create runs the engine, allocates the next invoice number, and
// persists the invoice with its summary and amount-in-words.
func (s *invoiceService) create(ctx context.Context, userID, customerID uuid.UUID, orderID *uuid.UUID, details []gst.ItemDetail, date time.Time, bankAccountID *uuid.UUID) (*domain.Invoice, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	cfg, ok, err := s.clientService.TaxConfig(ctx)
	if err != nil {
		return nil, err
	}

	var summary gst.Summary
	degraded := !ok
	if ok {
		summary = gst.BuildSummary(details, cfg, customer.State)
	} else {
		summary = gst.SimpleSummary(details)
	}

	raw, err := json.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("invoiceService.create: marshal summary: %w", err)
	}

	if bankAccountID == nil {
		if acct, err := s.bankRepo.GetDefault(ctx); err == nil {
			bankAccountID = &acct.ID
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	number, err := s.invoiceRepo.NextInvoiceNumber(ctx, s.numberPrefix, date.Year())
	if err != nil {
		return nil, err
	}

	inv := &domain.Invoice{
		InvoiceNumber: number,
		OrderID:       orderID,
		CustomerID:    customerID,
		CreatedBy:     userID,
		InvoiceDate:   date,
		Summary:       raw,
		GrandTotal:    summary.Totals.GrandTotal,
		AmountWords:   gst.AmountInWords(summary.Totals.GrandTotal),
		BankAccountID: bankAccountID,
		Degraded:      degraded,
	}
	if err := s.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// detailsFromOrder builds engine input from the order's snapshot lines,
// enriched with product metadata where the products still exist.
func (s *invoiceService) detailsFromOrder(ctx context.Context, order *domain.Order) ([]gst.ItemDetail, error) {
	ids := make([]uuid.UUID, 0, len(order.Items))
	for _, it := range order.Items {
		ids = append(ids, it.ProductID)
	}
	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	details := make([]gst.ItemDetail, 0, len(order.Items))
	for _, it := range order.Items {
		detail := gst.ItemDetail{
			ProductID:      it.ProductID.String(),
			Name:           it.Name,
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPrice,
			GSTRatePercent: it.GSTRate,
		}
		if p, ok := byID[it.ProductID]; ok {
			detail.Brand = p.Brand
			detail.Category = p.Category
			detail.HSNCode = p.HSNCode
			detail.ProductCode = p.ProductCode
			detail.UOM = p.UOM
		}
		details = append(details, detail)
	}
	return details, nil
}

// detailsFromInput resolves ad-hoc lines against the catalogue.
func (s *invoiceService) detailsFromInput(ctx context.Context, items []DirectInvoiceItemInput) ([]gst.ItemDetail, error) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	details := make([]gst.ItemDetail, 0, len(items))
	for _, it := range items {
		product, ok := byID[it.ProductID]
		if !ok {
			return nil, domain.ErrNotFound
		}
		if !product.IsEnabled {
			return nil, domain.ErrProductDisabled
		}
		price := it.UnitPrice
		if price <= 0 {
			price = product.EffectivePrice()
		}
		details = append(details, gst.ItemDetail{
			ProductID:      product.ID.String(),
			Name:           product.Name,
			Brand:          product.Brand,
			Category:       product.Category,
			HSNCode:        product.HSNCode,
			ProductCode:    product.ProductCode,
			UOM:            product.UOM,
			Quantity:       it.Quantity,
			UnitPrice:      price,
			GSTRatePercent: product.GSTRate,
		})
	}
	return details, nil
}
