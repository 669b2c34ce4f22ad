package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ItemRepository struct {
	mock.Mock
}

func (m *ItemRepository) CreateItem(ctx context.Context, item *models.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *ItemRepository) GetItemByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.Item)
	return r0, args.Error(1)
}

func (m *ItemRepository) GetItemByName(ctx context.Context, name string) (*models.Item, error) {
	args := m.Called(ctx, name)
	r0, _ := args.Get(0).(*models.Item)
	return r0, args.Error(1)
}

func (m *ItemRepository) GetItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Item, error) {
	args := m.Called(ctx, ids)
	r0, _ := args.Get(0).([]*models.Item)
	return r0, args.Error(1)
}

func (m *ItemRepository) ListItems(ctx context.Context, filter models.ItemFilter) ([]*models.Item, int, error) {
	args := m.Called(ctx, filter)
	r0, _ := args.Get(0).([]*models.Item)
	return r0, args.Int(1), args.Error(2)
}

func (m *ItemRepository) ListItemsByVendor(ctx context.Context, vendorID uuid.UUID) ([]*models.Item, error) {
	args := m.Called(ctx, vendorID)
	r0, _ := args.Get(0).([]*models.Item)
	return r0, args.Error(1)
}

func (m *ItemRepository) UpdateItem(ctx context.Context, item *models.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *ItemRepository) UpdateRating(ctx context.Context, summary *models.RatingSummary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

func (m *ItemRepository) DeleteItemCascade(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
