package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/utils"
	"github.com/google/uuid"
)

type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *models.Payment) error
	GetPaymentByID(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	ListPaymentsByUser(ctx context.Context, userID uuid.UUID) ([]*models.Payment, error)
	UpdatePayment(ctx context.Context, payment *models.Payment) error
	DeletePayment(ctx context.Context, id, userID uuid.UUID) error
}

type paymentRepository struct {
	DB *sql.DB
}

func NewPaymentRepo(db *sql.DB) PaymentRepository {
	return &paymentRepository{DB: db}
}

const paymentColumns = `id, user_id, card_number, name_on_card, expiry_date`

func (r *paymentRepository) CreatePayment(ctx context.Context, p *models.Payment) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO payments (user_id, card_number, name_on_card, expiry_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	return r.DB.QueryRowContext(dbCtx, query, p.UserID, p.CardNumber, p.NameOnCard, p.ExpiryDate).Scan(&p.ID)
}

func (r *paymentRepository) GetPaymentByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return scanPayment(r.DB.QueryRowContext(dbCtx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id))
}

func (r *paymentRepository) ListPaymentsByUser(ctx context.Context, userID uuid.UUID) ([]*models.Payment, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `SELECT `+paymentColumns+` FROM payments WHERE user_id = $1 ORDER BY name_on_card`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	payments := []*models.Payment{}

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}

func (r *paymentRepository) UpdatePayment(ctx context.Context, p *models.Payment) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	res, err := r.DB.ExecContext(dbCtx,
		`UPDATE payments SET card_number = $1, name_on_card = $2, expiry_date = $3 WHERE id = $4 AND user_id = $5`,
		p.CardNumber, p.NameOnCard, p.ExpiryDate, p.ID, p.UserID)
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}

	return expectAffected(res)
}

func (r *paymentRepository) DeletePayment(ctx context.Context, id, userID uuid.UUID) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	res, err := r.DB.ExecContext(dbCtx, `DELETE FROM payments WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	return expectAffected(res)
}

func scanPayment(row rowScanner) (*models.Payment, error) {
	p := &models.Payment{}

	if err := row.Scan(&p.ID, &p.UserID, &p.CardNumber, &p.NameOnCard, &p.ExpiryDate); err != nil {
		return nil, err
	}

	return p, nil
}
