package service_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	appErrors "github.com/aaravmahajanofficial/vendor-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/vendor-marketplace/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPaymentService(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	paymentID := uuid.New()

	t.Run("Create - Stored card serializes masked", func(t *testing.T) {
		repo := new(mocks.PaymentRepository)
		svc := service.NewPaymentService(repo)
		repo.On("CreatePayment", ctx, mock.MatchedBy(func(p *models.Payment) bool {
			return p.CardNumber == "4111111111114242"
		})).Return(nil).Once()

		payment, err := svc.CreatePayment(ctx, userID, &models.CreatePaymentRequest{
			CardNumber: "4111111111114242", NameOnCard: "J Doe", ExpiryDate: "09/29",
		})
		require.NoError(t, err)

		raw, err := json.Marshal(payment)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"cardNumber":"**** **** **** 4242"`)
		assert.NotContains(t, string(raw), "4111111111114242")
	})

	t.Run("Get - Another user's card", func(t *testing.T) {
		repo := new(mocks.PaymentRepository)
		svc := service.NewPaymentService(repo)
		repo.On("GetPaymentByID", ctx, paymentID).Return(&models.Payment{ID: paymentID, UserID: uuid.New()}, nil).Once()

		_, err := svc.GetPayment(ctx, userID, paymentID)

		requireCode(t, err, appErrors.ErrCodeForbidden)
	})

	t.Run("Delete - Absent", func(t *testing.T) {
		repo := new(mocks.PaymentRepository)
		svc := service.NewPaymentService(repo)
		repo.On("GetPaymentByID", ctx, paymentID).Return(nil, sql.ErrNoRows).Once()

		err := svc.DeletePayment(ctx, userID, paymentID)

		requireCode(t, err, appErrors.ErrCodeNotFound)
		repo.AssertNotCalled(t, "DeletePayment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Update - Empty body", func(t *testing.T) {
		svc := service.NewPaymentService(new(mocks.PaymentRepository))

		_, err := svc.UpdatePayment(ctx, userID, paymentID, &models.UpdatePaymentRequest{})

		requireCode(t, err, appErrors.ErrCodeBadRequest)
	})

	t.Run("Update - Expiry only", func(t *testing.T) {
		repo := new(mocks.PaymentRepository)
		svc := service.NewPaymentService(repo)
		expiry := "12/30"
		repo.On("GetPaymentByID", ctx, paymentID).Return(&models.Payment{ID: paymentID, UserID: userID, CardNumber: "4111111111114242", ExpiryDate: "01/27"}, nil).Once()
		repo.On("UpdatePayment", ctx, mock.MatchedBy(func(p *models.Payment) bool {
			return p.ExpiryDate == "12/30" && p.CardNumber == "4111111111114242"
		})).Return(nil).Once()

		payment, err := svc.UpdatePayment(ctx, userID, paymentID, &models.UpdatePaymentRequest{ExpiryDate: &expiry})

		require.NoError(t, err)
		assert.Equal(t, "12/30", payment.ExpiryDate)
	})
}
