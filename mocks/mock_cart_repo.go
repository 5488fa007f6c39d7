package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/nicitum/orderappu-sub000/internal/domain"
)

// MockCartRepo is a mock implementation of port.CartRepository.
type MockCartRepo struct {
	mock.Mock
}

func (m *MockCartRepo) Get(ctx context.Context, userID, customerID uuid.UUID) (*domain.Cart, error) {
	args := m.Called(ctx, userID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *MockCartRepo) ReplaceItems(ctx context.Context, userID, customerID uuid.UUID, items []domain.CartItem) (*domain.Cart, error) {
	args := m.Called(ctx, userID, customerID, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *MockCartRepo) Clear(ctx context.Context, userID, customerID uuid.UUID) error {
	args := m.Called(ctx, userID, customerID)
	return args.Error(0)
}
