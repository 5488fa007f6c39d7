package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nicitum/orderappu-sub000/internal/domain"
	"github.com/nicitum/orderappu-sub000/internal/gst"
	"github.com/nicitum/orderappu-sub000/internal/service"
	"github.com/nicitum/orderappu-sub000/mocks"
)

type orderFixture struct {
	orderRepo    *mocks.MockOrderRepo
	cartRepo     *mocks.MockCartRepo
	productRepo  *mocks.MockProductRepo
	customerRepo *mocks.MockCustomerRepo
	clientSvc    *mocks.MockClientService
	svc          service.OrderService
}

func newOrderFixture() *orderFixture {
	f := &orderFixture{
		orderRepo:    new(mocks.MockOrderRepo),
		cartRepo:     new(mocks.MockCartRepo),
		productRepo:  new(mocks.MockProductRepo),
		customerRepo: new(mocks.MockCustomerRepo),
		clientSvc:    new(mocks.MockClientService),
	}
	f.svc = service.NewOrderService(f.orderRepo, f.cartRepo, f.productRepo, f.customerRepo, f.clientSvc)
	return f
}

func exclusiveConfig() gst.TaxConfig {
	return gst.TaxConfig{Mode: gst.ModeExclusive, SellerState: "Karnataka"}
}

func TestOrderService_Checkout_ComputesTotals(t *testing.T) {
	f := newOrderFixture()

	userID := uuid.New()
	customerID := uuid.New()
	productID := uuid.New()

	customer := &domain.Customer{ID: customerID, Name: "Hotel Priya", State: "Karnataka", IsEnabled: true}
	product := domain.Product{
		ID: productID, Name: "Appu Masala 500g", Price: 100, GSTRate: 18, IsEnabled: true,
	}
	cart := &domain.Cart{
		ID: uuid.New(), UserID: userID, CustomerID: customerID,
		Items: []domain.CartItem{{ProductID: productID, Quantity: 2, UnitPrice: 100}},
	}

	f.customerRepo.On("GetByID", mock.Anything, customerID).Return(customer, nil)
	f.cartRepo.On("Get", mock.Anything, userID, customerID).Return(cart, nil)
	f.productRepo.On("GetByIDs", mock.Anything, []uuid.UUID{productID}).Return([]domain.Product{product}, nil)
	f.clientSvc.On("TaxConfig", mock.Anything).Return(exclusiveConfig(), true, nil)
	f.orderRepo.On("NextOrderNumber", mock.Anything, mock.Anything).Return("ORD-2608-0001", nil)
	f.orderRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.cartRepo.On("Clear", mock.Anything, userID, customerID).Return(nil)

	order, err := f.svc.Checkout(context.Background(), userID, service.CheckoutInput{CustomerID: customerID})
	require.NoError(t, err)

	assert.Equal(t, "ORD-2608-0001", order.OrderNumber)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, domain.ApprovePending, order.ApproveStatus)
	assert.InDelta(t, 200.00, order.Subtotal, 0.001)
	assert.InDelta(t, 36.00, order.TotalGST, 0.001)
	assert.InDelta(t, 236.00, order.TotalAmount, 0.001)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Appu Masala 500g", order.Items[0].Name)
	assert.InDelta(t, 236.00, order.Items[0].LineTotal, 0.001)
	f.orderRepo.AssertExpectations(t)
	f.cartRepo.AssertExpectations(t)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	f := newOrderFixture()

	userID := uuid.New()
	customerID := uuid.New()

	f.customerRepo.On("GetByID", mock.Anything, customerID).
		Return(&domain.Customer{ID: customerID, IsEnabled: true}, nil)
	f.cartRepo.On("Get", mock.Anything, userID, customerID).
		Return(&domain.Cart{ID: uuid.New()}, nil)

	_, err := f.svc.Checkout(context.Background(), userID, service.CheckoutInput{CustomerID: customerID})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestOrderService_Checkout_DisabledCustomer(t *testing.T) {
	f := newOrderFixture()

	userID := uuid.New()
	customerID := uuid.New()

	f.customerRepo.On("GetByID", mock.Anything, customerID).
		Return(&domain.Customer{ID: customerID, IsEnabled: false}, nil)

	_, err := f.svc.Checkout(context.Background(), userID, service.CheckoutInput{CustomerID: customerID})
	assert.ErrorIs(t, err, domain.ErrCustomerDisabled)
}

func TestOrderService_Checkout_DegradedWithoutTaxConfig(t *testing.T) {
	f := newOrderFixture()

	userID := uuid.New()
	customerID := uuid.New()
	productID := uuid.New()

	f.customerRepo.On("GetByID", mock.Anything, customerID).
		Return(&domain.Customer{ID: customerID, State: "Karnataka", IsEnabled: true}, nil)
	f.cartRepo.On("Get", mock.Anything, userID, customerID).Return(&domain.Cart{
		ID:    uuid.New(),
		Items: []domain.CartItem{{ProductID: productID, Quantity: 3, UnitPrice: 50}},
	}, nil)
	f.productRepo.On("GetByIDs", mock.Anything, []uuid.UUID{productID}).Return([]domain.Product{
		{ID: productID, Name: "Appu Pickle 250g", Price: 50, GSTRate: 12, IsEnabled: true},
	}, nil)
	f.clientSvc.On("TaxConfig", mock.Anything).Return(gst.TaxConfig{}, false, nil)
	f.orderRepo.On("NextOrderNumber", mock.Anything, mock.Anything).Return("ORD-2608-0002", nil)
	f.orderRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.cartRepo.On("Clear", mock.Anything, userID, customerID).Return(nil)

	order, err := f.svc.Checkout(context.Background(), userID, service.CheckoutInput{CustomerID: customerID})
	require.NoError(t, err)

	assert.InDelta(t, 150.00, order.Subtotal, 0.001)
	assert.Zero(t, order.TotalGST)
	assert.InDelta(t, 150.00, order.TotalAmount, 0.001)
}

func TestOrderService_UpdateItems_OnlyWhilePending(t *testing.T) {
	f := newOrderFixture()

	orderID := uuid.New()
	f.orderRepo.On("GetByID", mock.Anything, orderID).Return(&domain.Order{
		ID:            orderID,
		Status:        domain.OrderStatusPending,
		ApproveStatus: domain.ApproveAccepted,
	}, nil)

	_, err := f.svc.UpdateItems(context.Background(), orderID, service.UpdateOrderItemsInput{
		Items: []service.CartItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrOrderNotEditable)
}

func TestOrderService_UpdateItems_RecomputesTotals(t *testing.T) {
	f := newOrderFixture()

	orderID := uuid.New()
	customerID := uuid.New()
	productID := uuid.New()

	f.orderRepo.On("GetByID", mock.Anything, orderID).Return(&domain.Order{
		ID:            orderID,
		CustomerID:    customerID,
		Status:        domain.OrderStatusPending,
		ApproveStatus: domain.ApprovePending,
		Subtotal:      100, TotalGST: 18, TotalAmount: 118,
	}, nil)
	f.productRepo.On("GetByIDs", mock.Anything, []uuid.UUID{productID}).Return([]domain.Product{
		{ID: productID, Name: "Appu Masala 500g", Price: 100, GSTRate: 18, IsEnabled: true},
	}, nil)
	f.customerRepo.On("GetByID", mock.Anything, customerID).
		Return(&domain.Customer{ID: customerID, State: "Kerala", IsEnabled: true}, nil)
	f.clientSvc.On("TaxConfig", mock.Anything).Return(exclusiveConfig(), true, nil)
	f.orderRepo.On("ReplaceItems", mock.Anything, mock.Anything).Return(nil)

	order, err := f.svc.UpdateItems(context.Background(), orderID, service.UpdateOrderItemsInput{
		Items: []service.CartItemInput{{ProductID: productID, Quantity: 3, UnitPrice: 100}},
	})
	require.NoError(t, err)

	// interstate: Karnataka seller, Kerala buyer
	assert.InDelta(t, 300.00, order.Subtotal, 0.001)
	assert.InDelta(t, 54.00, order.TotalGST, 0.001)
	assert.InDelta(t, 354.00, order.TotalAmount, 0.001)
}

func TestOrderService_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		initial domain.Order
		run     func(svc service.OrderService, id uuid.UUID) (*domain.Order, error)
		status  domain.OrderStatus
		approve domain.ApproveStatus
		wantErr error
	}{
		{
			name:    "accept pending",
			initial: domain.Order{Status: domain.OrderStatusPending, ApproveStatus: domain.ApprovePending},
			run: func(svc service.OrderService, id uuid.UUID) (*domain.Order, error) {
				return svc.Accept(context.Background(), id)
			},
			status:  domain.OrderStatusPending,
			approve: domain.ApproveAccepted,
		},
		{
			name:    "reject pending cancels",
			initial: domain.Order{Status: domain.OrderStatusPending, ApproveStatus: domain.ApprovePending},
			run: func(svc service.OrderService, id uuid.UUID) (*domain.Order, error) {
				return svc.Reject(context.Background(), id, "out of stock")
			},
			status:  domain.OrderStatusCancelled,
			approve: domain.ApproveRejected,
		},
		{
			name:    "deliver accepted",
			initial: domain.Order{Status: domain.OrderStatusPending, ApproveStatus: domain.ApproveAccepted},
			run: func(svc service.OrderService, id uuid.UUID) (*domain.Order, error) {
				return svc.Deliver(context.Background(), id)
			},
			status:  domain.OrderStatusDelivered,
			approve: domain.ApproveAccepted,
		},
		{
			name:    "deliver unaccepted fails",
			initial: domain.Order{Status: domain.OrderStatusPending, ApproveStatus: domain.ApprovePending},
			run: func(svc service.OrderService, id uuid.UUID) (*domain.Order, error) {
				return svc.Deliver(context.Background(), id)
			},
			wantErr: domain.ErrInvalidTransition,
		},
		{
			name:    "accept twice fails",
			initial: domain.Order{Status: domain.OrderStatusPending, ApproveStatus: domain.ApproveAccepted},
			run: func(svc service.OrderService, id uuid.UUID) (*domain.Order, error) {
				return svc.Accept(context.Background(), id)
			},
			wantErr: domain.ErrInvalidTransition,
		},
		{
			name:    "cancel delivered fails",
			initial: domain.Order{Status: domain.OrderStatusDelivered, ApproveStatus: domain.ApproveAccepted},
			run: func(svc service.OrderService, id uuid.UUID) (*domain.Order, error) {
				return svc.Cancel(context.Background(), id, "mistake")
			},
			wantErr: domain.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderFixture()
			orderID := uuid.New()
			initial := tt.initial
			initial.ID = orderID

			f.orderRepo.On("GetByID", mock.Anything, orderID).Return(&initial, nil)
			f.orderRepo.On("UpdateStatus", mock.Anything, mock.Anything).Return(nil).Maybe()

			order, err := tt.run(f.svc, orderID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.status, order.Status)
			assert.Equal(t, tt.approve, order.ApproveStatus)
		})
	}
}
