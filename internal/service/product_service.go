package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/nicitum/orderappu-sub000/internal/domain"
	"github.com/nicitum/orderappu-sub000/internal/port"
)

// CreateProductInput is the DTO for creating a product.
type CreateProductInput struct {
	Name          string  `json:"name" binding:"required"`
	Brand         string  `json:"brand"`
	Category      string  `json:"category"`
	HSNCode       string  `json:"hsn_code"`
	ProductCode   string  `json:"product_code" binding:"required"`
	UOM           string  `json:"uom"`
	Price         float64 `json:"price" binding:"min=0"`
	DiscountPrice float64 `json:"discount_price" binding:"min=0"`
	GSTRate       float64 `json:"gst_rate" binding:"min=0,max=100"`
}

// UpdateProductInput is the DTO for updating a product.
type UpdateProductInput struct {
	Name          *string  `json:"name"`
	Brand         *string  `json:"brand"`
	Category      *string  `json:"category"`
	HSNCode       *string  `json:"hsn_code"`
	ProductCode   *string  `json:"product_code"`
	UOM           *string  `json:"uom"`
	Price         *float64 `json:"price"`
	DiscountPrice *float64 `json:"discount_price"`
	GSTRate       *float64 `json:"gst_rate"`
	IsEnabled     *bool    `json:"is_enabled"`
}

// ProductService defines the product catalogue contract.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	Search(ctx context.Context, query, brand, category string, offset, limit int) ([]domain.Product, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*domain.Product, error)
}

type productService struct {
	repo port.ProductRepository
}

// NewProductService creates a new ProductService implementation.
func NewProductService(repo port.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) Create(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:          input.Name,
		Brand:         input.Brand,
		Category:      input.Category,
		HSNCode:       input.HSNCode,
		ProductCode:   input.ProductCode,
		UOM:           input.UOM,
		Price:         input.Price,
		DiscountPrice: input.DiscountPrice,
		GSTRate:       input.GSTRate,
		IsEnabled:     true,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *productService) Search(ctx context.Context, query, brand, category string, offset, limit int) ([]domain.Product, int, error) {
	return s.repo.Search(ctx, query, brand, category, offset, limit)
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Brand != nil {
		product.Brand = *input.Brand
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.HSNCode != nil {
		product.HSNCode = *input.HSNCode
	}
	if input.ProductCode != nil {
		product.ProductCode = *input.ProductCode
	}
	if input.UOM != nil {
		product.UOM = *input.UOM
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.DiscountPrice != nil {
		product.DiscountPrice = *input.DiscountPrice
	}
	if input.GSTRate != nil {
		product.GSTRate = *input.GSTRate
	}
	if input.IsEnabled != nil {
		product.IsEnabled = *input.IsEnabled
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}
