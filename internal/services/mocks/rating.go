package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type RatingService struct {
	mock.Mock
}

func (m *RatingService) Recompute(ctx context.Context, itemID uuid.UUID) (*models.RatingSummary, error) {
	args := m.Called(ctx, itemID)
	r0, _ := args.Get(0).(*models.RatingSummary)
	return r0, args.Error(1)
}
