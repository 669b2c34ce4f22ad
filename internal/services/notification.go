package service

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/vendor-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	repository "github.com/aaravmahajanofficial/vendor-marketplace/internal/repositories"
	"github.com/aaravmahajanofficial/vendor-marketplace/pkg/sendgrid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type NotificationService interface {
	SendOrderConfirmation(ctx context.Context, user *models.User, order *models.Order) error
	ListNotifications(ctx context.Context, userID uuid.UUID, page, pageSize int) (*models.PaginatedResponse, error)
}

type notificationService struct {
	repo         repository.NotificationRepository
	emailService sendgrid.EmailService
}

func NewNotificationService(repo repository.NotificationRepository, emailService sendgrid.EmailService) NotificationService {
	return &notificationService{repo: repo, emailService: emailService}
}

// SendOrderConfirmation records the email before sending it and marks the
// record sent or failed afterwards.
func (n *notificationService) SendOrderConfirmation(ctx context.Context, user *models.User, order *models.Order) error {

	logger := middleware.LoggerFromContext(ctx)

	req := buildOrderConfirmation(user, order)

	metadataJSON, err := json.Marshal(req.Metadata)
	if err != nil {
		return appErrors.InternalError("Failed to encode notification metadata").WithError(err)
	}

	notification := &models.Notification{
		UserID:    &user.ID,
		Type:      models.NotificationTypeEmail,
		Recipient: req.Recipient,
		Subject:   req.Subject,
		Content:   req.Content,
		Status:    models.StatusPending,
		Metadata:  metadataJSON,
	}

	// Save to the database
	if err := n.repo.CreateNotification(ctx, notification); err != nil {
		return appErrors.FromStore(err, "Failed to create notification record")
	}

	if err := n.emailService.Send(ctx, req); err != nil {

		notification.Status = models.StatusFailed
		notification.ErrorMessage = err.Error()

		if updateErr := n.repo.UpdateStatus(ctx, notification.ID, models.StatusFailed, notification.ErrorMessage, nil); updateErr != nil {
			logger.Warn("Failed to mark notification as failed", "notificationId", notification.ID.String(), "error", updateErr.Error())
		}

		return appErrors.ThirdPartyError("Failed to send email").WithError(err)
	}

	sentAt := time.Now()
	notification.Status = models.StatusSent
	notification.SentAt = &sentAt

	// the email is out; a stale status row is only logged
	if err := n.repo.UpdateStatus(ctx, notification.ID, models.StatusSent, "", &sentAt); err != nil {
		logger.Warn("Notification sent but status update failed", "notificationId", notification.ID.String(), "error", err.Error())
	}

	return nil
}

func (n *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, page, pageSize int) (*models.PaginatedResponse, error) {

	notifications, total, err := n.repo.ListNotificationsByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, appErrors.FromStore(err, "Failed to list notifications")
	}

	return &models.PaginatedResponse{Data: notifications, Total: total, Page: page, PageSize: pageSize}, nil
}

func buildOrderConfirmation(user *models.User, order *models.Order) *models.EmailNotificationRequest {

	var text, body strings.Builder

	fmt.Fprintf(&text, "Hi %s,\n\nThanks for your order %s.\n\n", user.FirstName, order.ID)
	fmt.Fprintf(&body, "<p>Hi %s,</p><p>Thanks for your order <strong>%s</strong>.</p><table>",
		html.EscapeString(user.FirstName), order.ID)

	for _, line := range order.Items {
		fmt.Fprintf(&text, "  %d x %s @ %s = %s\n", line.Quantity, line.Name, FormatMoney(line.UnitPrice), FormatMoney(line.LineTotal))
		fmt.Fprintf(&body, "<tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			line.Quantity, html.EscapeString(line.Name), FormatMoney(line.UnitPrice), FormatMoney(line.LineTotal))
	}

	fmt.Fprintf(&text, "\nTotal: %s\n", FormatMoney(order.TotalCost))
	fmt.Fprintf(&body, "</table><p>Total: <strong>%s</strong></p>", FormatMoney(order.TotalCost))

	return &models.EmailNotificationRequest{
		Subject:     "Your order " + order.ID.String(),
		Content:     text.String(),
		HTMLContent: body.String(),
		Recipient:   user.Email,
		Metadata:    map[string]string{"order_id": order.ID.String()},
	}
}

// FormatMoney renders minor currency units with two decimal places.
func FormatMoney(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}
