package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ItemService struct {
	mock.Mock
}

func (m *ItemService) CreateItem(ctx context.Context, userID uuid.UUID, req *models.CreateItemRequest) (*models.Item, error) {
	args := m.Called(ctx, userID, req)
	r0, _ := args.Get(0).(*models.Item)
	return r0, args.Error(1)
}

func (m *ItemService) GetItemByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.Item)
	return r0, args.Error(1)
}

func (m *ItemService) GetItemByName(ctx context.Context, name string) (*models.Item, error) {
	args := m.Called(ctx, name)
	r0, _ := args.Get(0).(*models.Item)
	return r0, args.Error(1)
}

func (m *ItemService) ListItems(ctx context.Context, filter models.ItemFilter) (*models.PaginatedResponse, error) {
	args := m.Called(ctx, filter)
	r0, _ := args.Get(0).(*models.PaginatedResponse)
	return r0, args.Error(1)
}

func (m *ItemService) UpdateItem(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *models.UpdateItemRequest) (*models.Item, error) {
	args := m.Called(ctx, userID, id, req)
	r0, _ := args.Get(0).(*models.Item)
	return r0, args.Error(1)
}

func (m *ItemService) DeleteItem(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
