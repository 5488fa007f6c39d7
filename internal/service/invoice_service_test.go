package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nicitum/orderappu-sub000/internal/domain"
	"github.com/nicitum/orderappu-sub000/internal/gst"
	"github.com/nicitum/orderappu-sub000/internal/service"
	"github.com/nicitum/orderappu-sub000/mocks"
)

type invoiceFixture struct {
	invoiceRepo  *mocks.MockInvoiceRepo
	orderRepo    *mocks.MockOrderRepo
	productRepo  *mocks.MockProductRepo
	customerRepo *mocks.MockCustomerRepo
	bankRepo     *mocks.MockBankAccountRepo
	clientSvc    *mocks.MockClientService
	svc          service.InvoiceService
}

func newInvoiceFixture() *invoiceFixture {
	f := &invoiceFixture{
		invoiceRepo:  new(mocks.MockInvoiceRepo),
		orderRepo:    new(mocks.MockOrderRepo),
		productRepo:  new(mocks.MockProductRepo),
		customerRepo: new(mocks.MockCustomerRepo),
		bankRepo:     new(mocks.MockBankAccountRepo),
		clientSvc:    new(mocks.MockClientService),
	}
	f.svc = service.NewInvoiceService(f.invoiceRepo, f.orderRepo, f.productRepo, f.customerRepo, f.bankRepo, f.clientSvc, "INV")
	return f
}

func TestInvoiceService_CreateDirect_EngineSummary(t *testing.T) {
	f := newInvoiceFixture()

	userID := uuid.New()
	customerID := uuid.New()
	productID := uuid.New()

	f.customerRepo.On("GetByID", mock.Anything, customerID).
		Return(&domain.Customer{ID: customerID, State: "Kerala", IsEnabled: true}, nil)
	f.productRepo.On("GetByIDs", mock.Anything, []uuid.UUID{productID}).Return([]domain.Product{
		{ID: productID, Name: "Appu Masala 500g", HSNCode: "0910", UOM: "pkt", Price: 100, GSTRate: 18, IsEnabled: true},
	}, nil)
	f.clientSvc.On("TaxConfig", mock.Anything).
		Return(gst.TaxConfig{Mode: gst.ModeExclusive, SellerState: "Karnataka"}, true, nil)
	f.bankRepo.On("GetDefault", mock.Anything).Return(nil, domain.ErrNotFound)
	f.invoiceRepo.On("NextInvoiceNumber", mock.Anything, "INV", mock.Anything).Return("INV-2026-00042", nil)
	f.invoiceRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	inv, err := f.svc.CreateDirect(context.Background(), userID, service.DirectInvoiceInput{
		CustomerID: customerID,
		Items:      []service.DirectInvoiceItemInput{{ProductID: productID, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-2026-00042", inv.InvoiceNumber)
	assert.False(t, inv.Degraded)
	assert.Nil(t, inv.OrderID)
	assert.InDelta(t, 236.00, inv.GrandTotal, 0.001)
	assert.Equal(t, "Two Hundred Thirty Six Rupees Only", inv.AmountWords)

	var summary gst.Summary
	require.NoError(t, json.Unmarshal(inv.Summary, &summary))
	require.Len(t, summary.Items, 1)
	// interstate: full GST as IGST
	assert.InDelta(t, 36.00, summary.Totals.TotalIGST, 0.001)
	assert.Zero(t, summary.Totals.TotalCGST)
	assert.Zero(t, summary.Totals.TotalSGST)
	assert.True(t, summary.Totals.UseIGST)
	assert.Equal(t, "Exclusive GST", summary.Totals.GSTMethod)
	assert.Equal(t, "0910", summary.Items[0].HSNCode)
}

func TestInvoiceService_CreateDirect_DegradedSummary(t *testing.T) {
	f := newInvoiceFixture()

	userID := uuid.New()
	customerID := uuid.New()
	productID := uuid.New()

	f.customerRepo.On("GetByID", mock.Anything, customerID).
		Return(&domain.Customer{ID: customerID, State: "Karnataka", IsEnabled: true}, nil)
	f.productRepo.On("GetByIDs", mock.Anything, []uuid.UUID{productID}).Return([]domain.Product{
		{ID: productID, Name: "Appu Pickle 250g", Price: 80, GSTRate: 12, IsEnabled: true},
	}, nil)
	f.clientSvc.On("TaxConfig", mock.Anything).Return(gst.TaxConfig{}, false, nil)
	f.bankRepo.On("GetDefault", mock.Anything).Return(nil, domain.ErrNotFound)
	f.invoiceRepo.On("NextInvoiceNumber", mock.Anything, "INV", mock.Anything).Return("INV-2026-00043", nil)
	f.invoiceRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	inv, err := f.svc.CreateDirect(context.Background(), userID, service.DirectInvoiceInput{
		CustomerID: customerID,
		Items:      []service.DirectInvoiceItemInput{{ProductID: productID, Quantity: 5}},
	})
	require.NoError(t, err)

	assert.True(t, inv.Degraded)
	assert.InDelta(t, 400.00, inv.GrandTotal, 0.001)

	var summary gst.Summary
	require.NoError(t, json.Unmarshal(inv.Summary, &summary))
	assert.Zero(t, summary.Totals.TotalGST)
	assert.Zero(t, summary.Totals.TotalIGST)
	assert.InDelta(t, 400.00, summary.Totals.Subtotal, 0.001)
}

func TestInvoiceService_CreateDirect_NoItems(t *testing.T) {
	f := newInvoiceFixture()

	_, err := f.svc.CreateDirect(context.Background(), uuid.New(), service.DirectInvoiceInput{
		CustomerID: uuid.New(),
	})
	assert.ErrorIs(t, err, domain.ErrEmptyItems)
}

func TestInvoiceService_CreateDirect_UsesDefaultBankAccount(t *testing.T) {
	f := newInvoiceFixture()

	userID := uuid.New()
	customerID := uuid.New()
	productID := uuid.New()
	acctID := uuid.New()

	f.customerRepo.On("GetByID", mock.Anything, customerID).
		Return(&domain.Customer{ID: customerID, State: "Karnataka", IsEnabled: true}, nil)
	f.productRepo.On("GetByIDs", mock.Anything, []uuid.UUID{productID}).Return([]domain.Product{
		{ID: productID, Name: "Appu Masala 500g", Price: 100, GSTRate: 18, IsEnabled: true},
	}, nil)
	f.clientSvc.On("TaxConfig", mock.Anything).
		Return(gst.TaxConfig{Mode: gst.ModeExclusive, SellerState: "Karnataka"}, true, nil)
	f.bankRepo.On("GetDefault", mock.Anything).Return(&domain.BankAccount{ID: acctID, IsDefault: true}, nil)
	f.invoiceRepo.On("NextInvoiceNumber", mock.Anything, "INV", mock.Anything).Return("INV-2026-00044", nil)
	f.invoiceRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	inv, err := f.svc.CreateDirect(context.Background(), userID, service.DirectInvoiceInput{
		CustomerID: customerID,
		Items:      []service.DirectInvoiceItemInput{{ProductID: productID, Quantity: 1}},
	})
	require.NoError(t, err)
	require.NotNil(t, inv.BankAccountID)
	assert.Equal(t, acctID, *inv.BankAccountID)
}

func TestInvoiceService_CreateFromOrder_RequiresAcceptedOrder(t *testing.T) {
	f := newInvoiceFixture()

	orderID := uuid.New()
	f.orderRepo.On("GetByID", mock.Anything, orderID).Return(&domain.Order{
		ID:            orderID,
		Status:        domain.OrderStatusPending,
		ApproveStatus: domain.ApprovePending,
	}, nil)

	_, err := f.svc.CreateFromOrder(context.Background(), uuid.New(), service.InvoiceFromOrderInput{OrderID: orderID})
	assert.ErrorIs(t, err, domain.ErrOrderNotAccepted)
}

func TestInvoiceService_CreateFromOrder_RejectsDuplicate(t *testing.T) {
	f := newInvoiceFixture()

	orderID := uuid.New()
	f.orderRepo.On("GetByID", mock.Anything, orderID).Return(&domain.Order{
		ID:            orderID,
		Status:        domain.OrderStatusPending,
		ApproveStatus: domain.ApproveAccepted,
	}, nil)
	f.invoiceRepo.On("GetByOrderID", mock.Anything, orderID).
		Return(&domain.Invoice{ID: uuid.New(), OrderID: &orderID}, nil)

	_, err := f.svc.CreateFromOrder(context.Background(), uuid.New(), service.InvoiceFromOrderInput{OrderID: orderID})
	assert.ErrorIs(t, err, domain.ErrInvoiceExists)
}

func TestInvoiceService_CreateFromOrder_SnapshotSurvivesCatalogueEdit(t *testing.T) {
	f := newInvoiceFixture()

	userID := uuid.New()
	orderID := uuid.New()
	customerID := uuid.New()
	productID := uuid.New()

	// order captured the price at 56 inclusive; catalogue now says 99
	order := &domain.Order{
		ID:            orderID,
		CustomerID:    customerID,
		Status:        domain.OrderStatusPending,
		ApproveStatus: domain.ApproveAccepted,
		Items: []domain.OrderItem{
			{ProductID: productID, Name: "Appu Ghee 200ml", Quantity: 1, UnitPrice: 56, GSTRate: 5},
		},
	}

	f.orderRepo.On("GetByID", mock.Anything, orderID).Return(order, nil)
	f.invoiceRepo.On("GetByOrderID", mock.Anything, orderID).Return(nil, domain.ErrNotFound)
	f.productRepo.On("GetByIDs", mock.Anything, []uuid.UUID{productID}).Return([]domain.Product{
		{ID: productID, Name: "Appu Ghee 200ml", Price: 99, GSTRate: 5, HSNCode: "0405", IsEnabled: true},
	}, nil)
	f.customerRepo.On("GetByID", mock.Anything, customerID).
		Return(&domain.Customer{ID: customerID, State: "Karnataka", IsEnabled: true}, nil)
	f.clientSvc.On("TaxConfig", mock.Anything).
		Return(gst.TaxConfig{Mode: gst.ModeInclusive, SellerState: "Karnataka"}, true, nil)
	f.bankRepo.On("GetDefault", mock.Anything).Return(nil, domain.ErrNotFound)
	f.invoiceRepo.On("NextInvoiceNumber", mock.Anything, "INV", time.Now().Year()).Return("INV-2026-00045", nil)
	f.invoiceRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	inv, err := f.svc.CreateFromOrder(context.Background(), userID, service.InvoiceFromOrderInput{OrderID: orderID})
	require.NoError(t, err)

	require.NotNil(t, inv.OrderID)
	assert.Equal(t, orderID, *inv.OrderID)
	assert.InDelta(t, 56.00, inv.GrandTotal, 0.001)
	assert.Equal(t, "Fifty Six Rupees Only", inv.AmountWords)

	var summary gst.Summary
	require.NoError(t, json.Unmarshal(inv.Summary, &summary))
	require.Len(t, summary.Items, 1)
	// snapshot price used, not the current catalogue price
	assert.InDelta(t, 56.00, summary.Items[0].UnitPrice, 0.001)
	// back-calculated taxable value, intrastate split
	assert.InDelta(t, 53.33, summary.Items[0].TaxableValue, 0.001)
	assert.InDelta(t, 1.33, summary.Items[0].CGSTAmount, 0.001)
	assert.InDelta(t, 1.34, summary.Items[0].SGSTAmount, 0.001)
	// HSN enrichment still comes from the catalogue
	assert.Equal(t, "0405", summary.Items[0].HSNCode)
}
