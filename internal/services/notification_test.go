package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	appErrors "github.com/aaravmahajanofficial/vendor-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/vendor-marketplace/internal/services"
	"github.com/google/uuid"
	"github.com/sendgrid/sendgrid-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) Send(ctx context.Context, req *models.EmailNotificationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *mockEmailService) GetSendGridClient() *sendgrid.Client {
	return nil
}

func TestNotificationService_SendOrderConfirmation(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: uuid.New(), Email: "buyer@example.com", FirstName: "Sam"}
	order := &models.Order{
		ID:        uuid.New(),
		TotalCost: 1250,
		Items: []models.OrderItem{
			{Name: "Lamp", UnitPrice: 500, Quantity: 2, LineTotal: 1000},
			{Name: "Rug", UnitPrice: 250, Quantity: 1, LineTotal: 250},
		},
	}

	t.Run("Success - Marks the record sent", func(t *testing.T) {
		repo := new(mocks.NotificationRepository)
		email := new(mockEmailService)
		svc := service.NewNotificationService(repo, email)
		notificationID := uuid.New()

		repo.On("CreateNotification", ctx, mock.MatchedBy(func(n *models.Notification) bool {
			return n.Status == models.StatusPending && n.Recipient == "buyer@example.com" && *n.UserID == user.ID
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Notification).ID = notificationID
		}).Return(nil).Once()

		email.On("Send", ctx, mock.MatchedBy(func(r *models.EmailNotificationRequest) bool {
			return r.Recipient == "buyer@example.com" &&
				strings.Contains(r.Content, "2 x Lamp @ 5.00 = 10.00") &&
				strings.Contains(r.Content, "Total: 12.50") &&
				r.Metadata["order_id"] == order.ID.String()
		})).Return(nil).Once()

		repo.On("UpdateStatus", ctx, notificationID, models.StatusSent, "", mock.AnythingOfType("*time.Time")).Return(nil).Once()

		require.NoError(t, svc.SendOrderConfirmation(ctx, user, order))
		repo.AssertExpectations(t)
		email.AssertExpectations(t)
	})

	t.Run("Failure - Marks the record failed", func(t *testing.T) {
		repo := new(mocks.NotificationRepository)
		email := new(mockEmailService)
		svc := service.NewNotificationService(repo, email)

		repo.On("CreateNotification", ctx, mock.Anything).Return(nil).Once()
		email.On("Send", ctx, mock.Anything).Return(errors.New("failed to send email, status code: 401")).Once()
		repo.On("UpdateStatus", ctx, mock.Anything, models.StatusFailed, "failed to send email, status code: 401", (*time.Time)(nil)).Return(nil).Once()

		err := svc.SendOrderConfirmation(ctx, user, order)

		requireCode(t, err, appErrors.ErrCodeThirdPartyError)
		repo.AssertExpectations(t)
	})

	t.Run("Failure - Record cannot be created", func(t *testing.T) {
		repo := new(mocks.NotificationRepository)
		email := new(mockEmailService)
		svc := service.NewNotificationService(repo, email)

		repo.On("CreateNotification", ctx, mock.Anything).Return(errors.New("db down")).Once()

		err := svc.SendOrderConfirmation(ctx, user, order)

		requireCode(t, err, appErrors.ErrCodeDatabaseError)
		email.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}

func TestNotificationService_ListNotifications(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := new(mocks.NotificationRepository)
	svc := service.NewNotificationService(repo, new(mockEmailService))

	list := []*models.Notification{{ID: uuid.New(), Status: models.StatusSent}}
	repo.On("ListNotificationsByUser", ctx, userID, 1, 10).Return(list, 1, nil).Once()

	page, err := svc.ListNotifications(ctx, userID, 1, 10)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, list, page.Data)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "0.00", service.FormatMoney(0))
	assert.Equal(t, "12.50", service.FormatMoney(1250))
	assert.Equal(t, "0.05", service.FormatMoney(5))
	assert.Equal(t, "1234567.89", service.FormatMoney(123456789))
}
