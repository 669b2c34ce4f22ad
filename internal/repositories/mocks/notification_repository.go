package mocks

import (
	"context"
	"time"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *NotificationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.NotificationStatus, errorMessage string, sentAt *time.Time) error {
	args := m.Called(ctx, id, status, errorMessage, sentAt)
	return args.Error(0)
}

func (m *NotificationRepository) ListNotificationsByUser(ctx context.Context, userID uuid.UUID, page int, pageSize int) ([]*models.Notification, int, error) {
	args := m.Called(ctx, userID, page, pageSize)
	r0, _ := args.Get(0).([]*models.Notification)
	return r0, args.Int(1), args.Error(2)
}
