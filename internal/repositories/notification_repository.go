package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/utils"
	"github.com/google/uuid"
)

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.NotificationStatus, errorMessage string, sentAt *time.Time) error
	ListNotificationsByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*models.Notification, int, error)
}

type notificationRepository struct {
	DB *sql.DB
}

func NewNotificationRepo(db *sql.DB) NotificationRepository {
	return &notificationRepository{DB: db}
}

func (r *notificationRepository) CreateNotification(ctx context.Context, n *models.Notification) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	metadata := n.Metadata
	if len(metadata) == 0 {
		metadata = []byte("{}")
	}

	query := `
		INSERT INTO notifications (user_id, type, recipient, subject, content, status, error_message, metadata, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query, n.UserID, n.Type, n.Recipient, n.Subject, n.Content, n.Status, n.ErrorMessage, string(metadata)).
		Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
}

func (r *notificationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.NotificationStatus, errorMessage string, sentAt *time.Time) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	res, err := r.DB.ExecContext(dbCtx,
		`UPDATE notifications SET status = $1, error_message = $2, sent_at = $3, updated_at = NOW() WHERE id = $4`,
		status, errorMessage, sentAt, id)
	if err != nil {
		return fmt.Errorf("failed to update notification status: %w", err)
	}

	return expectAffected(res)
}

func (r *notificationRepository) ListNotificationsByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*models.Notification, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM notifications WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	rows, err := r.DB.QueryContext(dbCtx, `
		SELECT id, user_id, type, recipient, subject, content, status, error_message, metadata, created_at, updated_at, sent_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, userID, pageSize, models.Offset(page, pageSize))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]*models.Notification, 0, pageSize)

	for rows.Next() {
		n := &models.Notification{}

		var (
			uid          uuid.NullUUID
			errorMessage sql.NullString
			metadata     []byte
			sentAt       sql.NullTime
		)

		err := rows.Scan(&n.ID, &uid, &n.Type, &n.Recipient, &n.Subject, &n.Content, &n.Status, &errorMessage,
			&metadata, &n.CreatedAt, &n.UpdatedAt, &sentAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan notification: %w", err)
		}

		if uid.Valid {
			n.UserID = &uid.UUID
		}
		if sentAt.Valid {
			n.SentAt = &sentAt.Time
		}
		n.ErrorMessage = errorMessage.String
		n.Metadata = metadata

		notifications = append(notifications, n)
	}

	return notifications, total, rows.Err()
}
