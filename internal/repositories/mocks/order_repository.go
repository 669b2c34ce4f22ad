package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.Order)
	return r0, args.Error(1)
}

func (m *OrderRepository) ListOrdersByUser(ctx context.Context, userID uuid.UUID, page int, pageSize int) ([]*models.Order, int, error) {
	args := m.Called(ctx, userID, page, pageSize)
	r0, _ := args.Get(0).([]*models.Order)
	return r0, args.Int(1), args.Error(2)
}

func (m *OrderRepository) DeleteOrder(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
