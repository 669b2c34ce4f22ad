package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ReviewRepository struct {
	mock.Mock
}

func (m *ReviewRepository) CreateReview(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *ReviewRepository) GetReview(ctx context.Context, itemID uuid.UUID, userID uuid.UUID) (*models.Review, error) {
	args := m.Called(ctx, itemID, userID)
	r0, _ := args.Get(0).(*models.Review)
	return r0, args.Error(1)
}

func (m *ReviewRepository) ListReviewsByItem(ctx context.Context, itemID uuid.UUID) ([]*models.Review, error) {
	args := m.Called(ctx, itemID)
	r0, _ := args.Get(0).([]*models.Review)
	return r0, args.Error(1)
}

func (m *ReviewRepository) UpdateReview(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *ReviewRepository) DeleteReview(ctx context.Context, itemID uuid.UUID, userID uuid.UUID) error {
	args := m.Called(ctx, itemID, userID)
	return args.Error(0)
}

func (m *ReviewRepository) GetRatings(ctx context.Context, itemID uuid.UUID) ([]int, error) {
	args := m.Called(ctx, itemID)
	r0, _ := args.Get(0).([]int)
	return r0, args.Error(1)
}
