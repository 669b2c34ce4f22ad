package service

import (
	"context"
	"database/sql"
	"errors"

	appErrors "github.com/aaravmahajanofficial/vendor-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	repository "github.com/aaravmahajanofficial/vendor-marketplace/internal/repositories"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/utils"
	"github.com/google/uuid"
)

// PaymentService manages cards kept on file. Nothing is charged here.
type PaymentService interface {
	CreatePayment(ctx context.Context, userID uuid.UUID, req *models.CreatePaymentRequest) (*models.Payment, error)
	GetPayment(ctx context.Context, userID, id uuid.UUID) (*models.Payment, error)
	ListPayments(ctx context.Context, userID uuid.UUID) ([]*models.Payment, error)
	UpdatePayment(ctx context.Context, userID, id uuid.UUID, req *models.UpdatePaymentRequest) (*models.Payment, error)
	DeletePayment(ctx context.Context, userID, id uuid.UUID) error
}

type paymentService struct {
	repo repository.PaymentRepository
}

func NewPaymentService(repo repository.PaymentRepository) PaymentService {
	return &paymentService{repo: repo}
}

func (s *paymentService) CreatePayment(ctx context.Context, userID uuid.UUID, req *models.CreatePaymentRequest) (*models.Payment, error) {

	payment := &models.Payment{
		UserID:     userID,
		CardNumber: req.CardNumber,
		NameOnCard: utils.SanitizeText(req.NameOnCard),
		ExpiryDate: req.ExpiryDate,
	}

	if err := s.repo.CreatePayment(ctx, payment); err != nil {
		return nil, appErrors.FromStore(err, "Failed to store payment method")
	}

	return payment, nil
}

func (s *paymentService) GetPayment(ctx context.Context, userID, id uuid.UUID) (*models.Payment, error) {

	payment, err := s.repo.GetPaymentByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Payment not found").WithError(err)
		}
		return nil, appErrors.FromStore(err, "Failed to fetch payment")
	}

	if payment.UserID != userID {
		return nil, appErrors.ForbiddenError("You can only access your own payment methods")
	}

	return payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context, userID uuid.UUID) ([]*models.Payment, error) {

	payments, err := s.repo.ListPaymentsByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.FromStore(err, "Failed to list payments")
	}

	return payments, nil
}

func (s *paymentService) UpdatePayment(ctx context.Context, userID, id uuid.UUID, req *models.UpdatePaymentRequest) (*models.Payment, error) {

	if req.Empty() {
		return nil, appErrors.BadRequestError("At least one of cardNumber, nameOnCard or expiryDate is required")
	}

	payment, err := s.GetPayment(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.CardNumber != nil {
		payment.CardNumber = *req.CardNumber
	}
	if req.NameOnCard != nil {
		payment.NameOnCard = utils.SanitizeText(*req.NameOnCard)
	}
	if req.ExpiryDate != nil {
		payment.ExpiryDate = *req.ExpiryDate
	}

	if err := s.repo.UpdatePayment(ctx, payment); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Payment not found").WithError(err)
		}
		return nil, appErrors.FromStore(err, "Failed to update payment")
	}

	return payment, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, userID, id uuid.UUID) error {

	if _, err := s.GetPayment(ctx, userID, id); err != nil {
		return err
	}

	if err := s.repo.DeletePayment(ctx, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Payment not found").WithError(err)
		}
		return appErrors.FromStore(err, "Failed to delete payment")
	}

	return nil
}
