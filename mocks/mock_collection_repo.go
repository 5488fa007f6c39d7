package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/nicitum/orderappu-sub000/internal/domain"
)

// MockCollectionRepo is a mock implementation of port.CollectionRepository.
type MockCollectionRepo struct {
	mock.Mock
}

func (m *MockCollectionRepo) Create(ctx context.Context, col *domain.CashCollection) error {
	args := m.Called(ctx, col)
	return args.Error(0)
}

func (m *MockCollectionRepo) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.CashCollection, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashCollection), args.Error(1)
}

func (m *MockCollectionRepo) List(ctx context.Context, from, to *time.Time, offset, limit int) ([]domain.CashCollection, int, error) {
	args := m.Called(ctx, from, to, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.CashCollection), args.Int(1), args.Error(2)
}

func (m *MockCollectionRepo) TotalCollected(ctx context.Context, invoiceID uuid.UUID) (float64, error) {
	args := m.Called(ctx, invoiceID)
	return args.Get(0).(float64), args.Error(1)
}
