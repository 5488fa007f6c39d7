package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nicitum/orderappu-sub000/internal/domain"
	"github.com/nicitum/orderappu-sub000/internal/gst"
	"github.com/nicitum/orderappu-sub000/internal/port"
)

// CheckoutInput converts a cart into an order.
type CheckoutInput struct {
	CustomerID uuid.UUID  `json:"customer_id" binding:"required"`
	DueOn      *time.Time `json:"due_on"`
}

// UpdateOrderItemsInput replaces the item lines of a pending order.
type UpdateOrderItemsInput struct {
	Items []CartItemInput `json:"items" binding:"required"`
}

// OrderService manages the order lifecycle: checkout, listing, pending
// edits, and the acceptance / delivery / cancellation transitions.
type OrderService interface {
	Checkout(ctx context.Context, userID uuid.UUID, input CheckoutInput) (*domain.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	List(ctx context.Context, filter port.OrderFilter, offset, limit int) ([]domain.Order, int, error)
	UpdateItems(ctx context.Context, id uuid.UUID, input UpdateOrderItemsInput) (*domain.Order, error)
	Accept(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	Reject(ctx context.Context, id uuid.UUID, reason string) (*domain.Order, error)
	Deliver(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	Cancel(ctx context.Context, id uuid.UUID, reason string) (*domain.Order, error)
}

type orderService struct {
	orderRepo     port.OrderRepository
	cartRepo      port.CartRepository
	productRepo   port.ProductRepository
	customerRepo  port.CustomerRepository
	clientService ClientService
}

// NewOrderService creates a new OrderService implementation.
func NewOrderService(
	orderRepo port.OrderRepository,
	cartRepo port.CartRepository,
	productRepo port.ProductRepository,
	customerRepo port.CustomerRepository,
	clientService ClientService,
) OrderService {
	return &orderService{
		orderRepo:     orderRepo,
		cartRepo:      cartRepo,
		productRepo:   productRepo,
		customerRepo:  customerRepo,
		clientService: clientService,
	}
}

func (s *orderService) Checkout(ctx context.Context, userID uuid.UUID, input CheckoutInput) (*domain.Order, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if !customer.IsEnabled {
		return nil, domain.ErrCustomerDisabled
	}

	cart, err := s.cartRepo.Get(ctx, userID, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	orderItems, err := s.snapshotItems(ctx, cart.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	number, err := s.orderRepo.NextOrderNumber(ctx, now)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		OrderNumber:   number,
		CustomerID:    input.CustomerID,
		PlacedBy:      userID,
		Status:        domain.OrderStatusPending,
		ApproveStatus: domain.ApprovePending,
		Items:         orderItems,
		DueOn:         input.DueOn,
	}
	if err := s.computeTotals(ctx, order, customer.State); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Clear(ctx, userID, input.CustomerID); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *orderService) List(ctx context.Context, filter port.OrderFilter, offset, limit int) ([]domain.Order, int, error) {
	return s.orderRepo.List(ctx, filter, offset, limit)
}

// UpdateItems replaces the lines of an order that is still pending on
// both axes and recomputes its totals from the replacement lines.
func (s *orderService) UpdateItems(ctx context.Context, id uuid.UUID, input UpdateOrderItemsInput) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderStatusPending || order.ApproveStatus != domain.ApprovePending {
		return nil, domain.ErrOrderNotEditable
	}
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyItems
	}

	cartItems := make([]domain.CartItem, 0, len(input.Items))
	for _, it := range input.Items {
		cartItems = append(cartItems, domain.CartItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	orderItems, err := s.snapshotItems(ctx, cartItems)
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, order.CustomerID)
	if err != nil {
		return nil, err
	}

	order.Items = orderItems
	if err := s.computeTotals(ctx, order, customer.State); err != nil {
		return nil, err
	}
	if err := s.orderRepo.ReplaceItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) Accept(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return s.transition(ctx, id, func(order *domain.Order) error {
		if order.ApproveStatus != domain.ApprovePending || order.Status != domain.OrderStatusPending {
			return domain.ErrInvalidTransition
		}
		order.ApproveStatus = domain.ApproveAccepted
		return nil
	})
}

func (s *orderService) Reject(ctx context.Context, id uuid.UUID, reason string) (*domain.Order, error) {
	return s.transition(ctx, id, func(order *domain.Order) error {
		if order.ApproveStatus != domain.ApprovePending || order.Status != domain.OrderStatusPending {
			return domain.ErrInvalidTransition
		}
		order.ApproveStatus = domain.ApproveRejected
		order.Status = domain.OrderStatusCancelled
		order.CancelReason = reason
		return nil
	})
}

func (s *orderService) Deliver(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return s.transition(ctx, id, func(order *domain.Order) error {
		if order.ApproveStatus != domain.ApproveAccepted || order.Status != domain.OrderStatusPending {
			return domain.ErrInvalidTransition
		}
		order.Status = domain.OrderStatusDelivered
		return nil
	})
}

func (s *orderService) Cancel(ctx context.Context, id uuid.UUID, reason string) (*domain.Order, error) {
	return s.transition(ctx, id, func(order *domain.Order) error {
		if order.Status != domain.OrderStatusPending {
			return domain.ErrInvalidTransition
		}
		order.Status = domain.OrderStatusCancelled
		order.CancelReason = reason
		return nil
	})
}

func (s *orderService) transition(ctx context.Context, id uuid.UUID, apply func(*domain.Order) error) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(order); err != nil {
		return nil, err
	}
	if err := s.orderRepo.UpdateStatus(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// snapshotItems resolves cart lines against the catalogue and captures
// the product name, price, and GST rate as they stand right now.
func (s *orderService) snapshotItems(ctx context.Context, items []domain.CartItem) ([]domain.OrderItem, error) {
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

	out := make([]domain.OrderItem, 0, len(items))
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
		out = append(out, domain.OrderItem{
			ProductID: it.ProductID,
			Name:      product.Name,
			Quantity:  it.Quantity,
			UnitPrice: price,
			GSTRate:   product.GSTRate,
		})
	}
	return out, nil
}

// computeTotals runs the tax engine over the order lines. When the
// seller's tax configuration is absent or unrecognized the order falls
// back to plain sums with GST zeroed.
func (s *orderService) computeTotals(ctx context.Context, order *domain.Order, buyerState string) error {
	lines := make([]gst.LineItem, 0, len(order.Items))
	for _, it := range order.Items {
		lines = append(lines, gst.LineItem{
			ProductID:      it.ProductID.String(),
			Name:           it.Name,
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPrice,
			GSTRatePercent: it.GSTRate,
		})
	}

	cfg, ok, err := s.clientService.TaxConfig(ctx)
	if err != nil {
		return err
	}
	if !ok {
		totals := gst.SimpleTotals(lines)
		for i, line := range lines {
			line.GSTRatePercent = 0
			order.Items[i].LineTotal = gst.ComputeLine(line, gst.ModeExclusive, false).LineTotal
		}
		order.Subtotal = totals.Subtotal
		order.TotalGST = 0
		order.TotalAmount = totals.GrandTotal
		return nil
	}

	doc := gst.ComputeDocument(lines, cfg.Mode, cfg.SellerState, buyerState)
	for i := range order.Items {
		order.Items[i].LineTotal = doc.Lines[i].LineTotal
	}
	order.Subtotal = doc.Totals.Subtotal
	order.TotalGST = doc.Totals.TotalGST
	order.TotalAmount = doc.Totals.GrandTotal
	return nil
}
