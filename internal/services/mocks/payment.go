package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type PaymentService struct {
	mock.Mock
}

func (m *PaymentService) CreatePayment(ctx context.Context, userID uuid.UUID, req *models.CreatePaymentRequest) (*models.Payment, error) {
	args := m.Called(ctx, userID, req)
	r0, _ := args.Get(0).(*models.Payment)
	return r0, args.Error(1)
}

func (m *PaymentService) GetPayment(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*models.Payment, error) {
	args := m.Called(ctx, userID, id)
	r0, _ := args.Get(0).(*models.Payment)
	return r0, args.Error(1)
}

func (m *PaymentService) ListPayments(ctx context.Context, userID uuid.UUID) ([]*models.Payment, error) {
	args := m.Called(ctx, userID)
	r0, _ := args.Get(0).([]*models.Payment)
	return r0, args.Error(1)
}

func (m *PaymentService) UpdatePayment(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *models.UpdatePaymentRequest) (*models.Payment, error) {
	args := m.Called(ctx, userID, id, req)
	r0, _ := args.Get(0).(*models.Payment)
	return r0, args.Error(1)
}

func (m *PaymentService) DeletePayment(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
