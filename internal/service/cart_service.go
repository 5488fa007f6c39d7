package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/nicitum/orderappu-sub000/internal/domain"
	"github.com/nicitum/orderappu-sub000/internal/port"
)

// CartItemInput is one requested cart line. UnitPrice overrides the
// catalogue price when positive; zero means "use the effective price".
type CartItemInput struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  float64   `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64   `json:"unit_price"`
}

// CartService manages the per-(user, customer) working cart.
type CartService interface {
	Get(ctx context.Context, userID, customerID uuid.UUID) (*domain.Cart, error)
	SetItems(ctx context.Context, userID, customerID uuid.UUID, items []CartItemInput) (*domain.Cart, error)
	Clear(ctx context.Context, userID, customerID uuid.UUID) error
}

type cartService struct {
	cartRepo     port.CartRepository
	productRepo  port.ProductRepository
	customerRepo port.CustomerRepository
}

// NewCartService creates a new CartService implementation.
func NewCartService(cartRepo port.CartRepository, productRepo port.ProductRepository, customerRepo port.CustomerRepository) CartService {
	return &cartService{cartRepo: cartRepo, productRepo: productRepo, customerRepo: customerRepo}
}

func (s *cartService) Get(ctx context.Context, userID, customerID uuid.UUID) (*domain.Cart, error) {
	return s.cartRepo.Get(ctx, userID, customerID)
}

func (s *cartService) SetItems(ctx context.Context, userID, customerID uuid.UUID, items []CartItemInput) (*domain.Cart, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !customer.IsEnabled {
		return nil, domain.ErrCustomerDisabled
	}

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

	cartItems := make([]domain.CartItem, 0, len(items))
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
		cartItems = append(cartItems, domain.CartItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: price,
		})
	}

	return s.cartRepo.ReplaceItems(ctx, userID, customerID, cartItems)
}

func (s *cartService) Clear(ctx context.Context, userID, customerID uuid.UUID) error {
	return s.cartRepo.Clear(ctx, userID, customerID)
}
