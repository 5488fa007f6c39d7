package service

import (
	"context"
	"errors"

	"github.com/nicitum/orderappu-sub000/internal/domain"
	"github.com/nicitum/orderappu-sub000/internal/gst"
	"github.com/nicitum/orderappu-sub000/internal/port"
)

// UpdateClientInput is the DTO for updating the seller configuration.
// GSTMethodAlt absorbs the legacy camel-case spelling some older admin
// builds still send; it is resolved here and nowhere else.
type UpdateClientInput struct {
	Name         *string `json:"name"`
	GSTIN        *string `json:"gstin"`
	PAN          *string `json:"pan"`
	Address      *string `json:"address"`
	State        *string `json:"state"`
	Phone        *string `json:"phone"`
	GSTMethod    *string `json:"gst_method"`
	GSTMethodAlt *string `json:"gstMethod"`
}

// ClientService manages the seller configuration record.
type ClientService interface {
	Get(ctx context.Context) (*domain.Client, error)
	Update(ctx context.Context, input UpdateClientInput) (*domain.Client, error)
	// TaxConfig resolves the engine parameters from the stored client.
	// ok is false when the configuration is missing or unrecognized, in
	// which case callers take the degraded simple-total path.
	TaxConfig(ctx context.Context) (gst.TaxConfig, bool, error)
}

type clientService struct {
	repo port.ClientRepository
}

// NewClientService creates a new ClientService implementation.
func NewClientService(repo port.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

func (s *clientService) Get(ctx context.Context) (*domain.Client, error) {
	return s.repo.Get(ctx)
}

func (s *clientService) Update(ctx context.Context, input UpdateClientInput) (*domain.Client, error) {
	client, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.GSTIN != nil {
		client.GSTIN = *input.GSTIN
	}
	if input.PAN != nil {
		client.PAN = *input.PAN
	}
	if input.Address != nil {
		client.Address = *input.Address
	}
	if input.State != nil {
		client.State = *input.State
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}
	if input.GSTMethod != nil {
		client.GSTMethod = *input.GSTMethod
	} else if input.GSTMethodAlt != nil {
		client.GSTMethod = *input.GSTMethodAlt
	}

	if err := s.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) TaxConfig(ctx context.Context) (gst.TaxConfig, bool, error) {
	client, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotConfigured) {
			return gst.TaxConfig{}, false, nil
		}
		return gst.TaxConfig{}, false, err
	}
	mode, ok := gst.ParseTaxMode(client.GSTMethod)
	if !ok {
		return gst.TaxConfig{}, false, nil
	}
	return gst.TaxConfig{Mode: mode, SellerState: client.State}, true, nil
}
