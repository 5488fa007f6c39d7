package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nicitum/orderappu-sub000/internal/domain"
	"github.com/nicitum/orderappu-sub000/internal/service"
	"github.com/nicitum/orderappu-sub000/mocks"
)

func TestCollectionService_Record_Success(t *testing.T) {
	collectionRepo := new(mocks.MockCollectionRepo)
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewCollectionService(collectionRepo, invoiceRepo)

	userID := uuid.New()
	invoiceID := uuid.New()

	invoiceRepo.On("GetByID", mock.Anything, invoiceID).
		Return(&domain.Invoice{ID: invoiceID, GrandTotal: 500}, nil)
	collectionRepo.On("TotalCollected", mock.Anything, invoiceID).Return(100.0, nil)
	collectionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	col, err := svc.Record(context.Background(), userID, service.RecordCollectionInput{
		InvoiceID: invoiceID,
		Amount:    400,
		Method:    domain.PaymentCash,
	})
	require.NoError(t, err)
	assert.Equal(t, invoiceID, col.InvoiceID)
	assert.Equal(t, userID, col.CollectedBy)
	assert.InDelta(t, 400.0, col.Amount, 0.001)
	collectionRepo.AssertExpectations(t)
}

func TestCollectionService_Record_OverCollection(t *testing.T) {
	collectionRepo := new(mocks.MockCollectionRepo)
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewCollectionService(collectionRepo, invoiceRepo)

	invoiceID := uuid.New()
	invoiceRepo.On("GetByID", mock.Anything, invoiceID).
		Return(&domain.Invoice{ID: invoiceID, GrandTotal: 500}, nil)
	collectionRepo.On("TotalCollected", mock.Anything, invoiceID).Return(450.0, nil)

	_, err := svc.Record(context.Background(), uuid.New(), service.RecordCollectionInput{
		InvoiceID: invoiceID,
		Amount:    100,
		Method:    domain.PaymentUPI,
	})
	assert.ErrorIs(t, err, domain.ErrOverCollection)
}

func TestCollectionService_Record_ExactPayoff(t *testing.T) {
	collectionRepo := new(mocks.MockCollectionRepo)
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewCollectionService(collectionRepo, invoiceRepo)

	invoiceID := uuid.New()
	// 0.01 + 0.05 in binary lands a hair above 0.06; paying off the
	// remainder exactly must still be accepted.
	invoiceRepo.On("GetByID", mock.Anything, invoiceID).
		Return(&domain.Invoice{ID: invoiceID, GrandTotal: 0.06}, nil)
	collectionRepo.On("TotalCollected", mock.Anything, invoiceID).Return(0.01, nil)
	collectionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	col, err := svc.Record(context.Background(), uuid.New(), service.RecordCollectionInput{
		InvoiceID: invoiceID,
		Amount:    0.05,
		Method:    domain.PaymentCash,
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.05, col.Amount, 0.0001)
	collectionRepo.AssertExpectations(t)
}

func TestCollectionService_Record_OverCollectionByOnePaisa(t *testing.T) {
	collectionRepo := new(mocks.MockCollectionRepo)
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewCollectionService(collectionRepo, invoiceRepo)

	invoiceID := uuid.New()
	invoiceRepo.On("GetByID", mock.Anything, invoiceID).
		Return(&domain.Invoice{ID: invoiceID, GrandTotal: 0.06}, nil)
	collectionRepo.On("TotalCollected", mock.Anything, invoiceID).Return(0.01, nil)

	_, err := svc.Record(context.Background(), uuid.New(), service.RecordCollectionInput{
		InvoiceID: invoiceID,
		Amount:    0.06,
		Method:    domain.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrOverCollection)
}

func TestCollectionService_Record_RejectsNonPositiveAmount(t *testing.T) {
	svc := service.NewCollectionService(new(mocks.MockCollectionRepo), new(mocks.MockInvoiceRepo))

	for _, amount := range []float64{0, -50} {
		_, err := svc.Record(context.Background(), uuid.New(), service.RecordCollectionInput{
			InvoiceID: uuid.New(),
			Amount:    amount,
			Method:    domain.PaymentCash,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	}
}

func TestCollectionService_Record_RejectsUnknownMethod(t *testing.T) {
	svc := service.NewCollectionService(new(mocks.MockCollectionRepo), new(mocks.MockInvoiceRepo))

	_, err := svc.Record(context.Background(), uuid.New(), service.RecordCollectionInput{
		InvoiceID: uuid.New(),
		Amount:    100,
		Method:    domain.PaymentMethod("barter"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestCollectionService_Outstanding(t *testing.T) {
	collectionRepo := new(mocks.MockCollectionRepo)
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewCollectionService(collectionRepo, invoiceRepo)

	invoiceID := uuid.New()
	invoiceRepo.On("GetByID", mock.Anything, invoiceID).
		Return(&domain.Invoice{ID: invoiceID, GrandTotal: 295}, nil)
	collectionRepo.On("TotalCollected", mock.Anything, invoiceID).Return(200.0, nil)

	report, err := svc.Outstanding(context.Background(), invoiceID)
	require.NoError(t, err)
	assert.InDelta(t, 295.0, report.GrandTotal, 0.001)
	assert.InDelta(t, 200.0, report.Collected, 0.001)
	assert.InDelta(t, 95.0, report.Outstanding, 0.001)
}
