package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) SendOrderConfirmation(ctx context.Context, user *models.User, order *models.Order) error {
	args := m.Called(ctx, user, order)
	return args.Error(0)
}

func (m *NotificationService) ListNotifications(ctx context.Context, userID uuid.UUID, page int, pageSize int) (*models.PaginatedResponse, error) {
	args := m.Called(ctx, userID, page, pageSize)
	r0, _ := args.Get(0).(*models.PaginatedResponse)
	return r0, args.Error(1)
}
