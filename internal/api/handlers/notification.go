package handlers

import (
	"log/slog"
	"net/http"

	service "github.com/aaravmahajanofficial/vendor-marketplace/internal/services"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/utils"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/utils/response"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// ListNotifications godoc
//	@Summary		List the caller's notifications
//	@Description	Order confirmation emails with their delivery status.
//	@Tags			Notifications
//	@Produce		json
//	@Param			page		query		int							false	"Page number"	default(1)
//	@Param			pageSize	query		int							false	"Page size"		default(10)
//	@Success		200			{object}	models.PaginatedResponse	"Notifications"
//	@Failure		401			{object}	response.ErrorResponse		"Authentication required"
//	@Failure		500			{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/notification [get]
func (h *NotificationHandler) ListNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		page, pageSize := utils.ParsePagination(r)

		notifications, err := h.notificationService.ListNotifications(r.Context(), claims.UserID, page, pageSize)
		if err != nil {
			logger.Error("Failed to list notifications", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, notifications)
	}
}
