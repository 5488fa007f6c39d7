package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nicitum/orderappu-sub000/internal/domain"
	"github.com/nicitum/orderappu-sub000/internal/gst"
	"github.com/nicitum/orderappu-sub000/internal/service"
)

// MockClientService is a mock implementation of service.ClientService.
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) Get(ctx context.Context) (*domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) Update(ctx context.Context, input service.UpdateClientInput) (*domain.Client, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) TaxConfig(ctx context.Context) (gst.TaxConfig, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(gst.TaxConfig), args.Bool(1), args.Error(2)
}
