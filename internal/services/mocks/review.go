package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ReviewService struct {
	mock.Mock
}

func (m *ReviewService) ListReviews(ctx context.Context, itemID uuid.UUID) ([]*models.Review, error) {
	args := m.Called(ctx, itemID)
	r0, _ := args.Get(0).([]*models.Review)
	return r0, args.Error(1)
}

func (m *ReviewService) CreateReview(ctx context.Context, userID uuid.UUID, itemID uuid.UUID, req *models.CreateReviewRequest) (*models.ReviewResult, error) {
	args := m.Called(ctx, userID, itemID, req)
	r0, _ := args.Get(0).(*models.ReviewResult)
	return r0, args.Error(1)
}

func (m *ReviewService) UpdateReview(ctx context.Context, userID uuid.UUID, itemID uuid.UUID, req *models.UpdateReviewRequest) (*models.ReviewResult, error) {
	args := m.Called(ctx, userID, itemID, req)
	r0, _ := args.Get(0).(*models.ReviewResult)
	return r0, args.Error(1)
}

func (m *ReviewService) DeleteReview(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, userID, itemID)
	r0, _ := args.Get(0).([]string)
	return r0, args.Error(1)
}

func (m *ReviewService) RefreshRating(ctx context.Context, itemID uuid.UUID) (*models.RatingSummary, error) {
	args := m.Called(ctx, itemID)
	r0, _ := args.Get(0).(*models.RatingSummary)
	return r0, args.Error(1)
}
