package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type OrderService struct {
	mock.Mock
}

func (m *OrderService) Checkout(ctx context.Context, userID uuid.UUID, req *models.CheckoutRequest) (*models.CheckoutResult, error) {
	args := m.Called(ctx, userID, req)
	r0, _ := args.Get(0).(*models.CheckoutResult)
	return r0, args.Error(1)
}

func (m *OrderService) ListOrders(ctx context.Context, userID uuid.UUID, page int, pageSize int) (*models.PaginatedResponse, error) {
	args := m.Called(ctx, userID, page, pageSize)
	r0, _ := args.Get(0).(*models.PaginatedResponse)
	return r0, args.Error(1)
}

func (m *OrderService) GetOrder(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, userID, id)
	r0, _ := args.Get(0).(*models.Order)
	return r0, args.Error(1)
}

func (m *OrderService) CancelOrder(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
