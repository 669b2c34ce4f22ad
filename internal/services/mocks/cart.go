package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type CartService struct {
	mock.Mock
}

func (m *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	args := m.Called(ctx, userID)
	r0, _ := args.Get(0).(*models.Cart)
	return r0, args.Error(1)
}

func (m *CartService) AddItem(ctx context.Context, userID uuid.UUID, req *models.CartItemRequest) (*models.Cart, error) {
	args := m.Called(ctx, userID, req)
	r0, _ := args.Get(0).(*models.Cart)
	return r0, args.Error(1)
}

func (m *CartService) RemoveItem(ctx context.Context, userID uuid.UUID, req *models.CartItemRequest) (*models.Cart, error) {
	args := m.Called(ctx, userID, req)
	r0, _ := args.Get(0).(*models.Cart)
	return r0, args.Error(1)
}
