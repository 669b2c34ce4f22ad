package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/api/handlers"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/services/mocks"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListNotifications(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockNotificationService := new(mocks.NotificationService)
		h := handlers.NewNotificationHandler(mockNotificationService)
		page := &models.PaginatedResponse{Data: []*models.Notification{{ID: uuid.New(), Status: models.StatusSent}}, Total: 1, Page: 2, PageSize: 20}
		mockNotificationService.On("ListNotifications", mock.Anything, userID, 2, 20).Return(page, nil).Once()

		rr := httptest.NewRecorder()
		h.ListNotifications()(rr, testutils.CreateTestRequestWithContext(http.MethodGet, "/notification?page=2&pageSize=20", nil, userID, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"sent"`)
	})

	t.Run("Failure - Unexpected error is masked", func(t *testing.T) {
		mockNotificationService := new(mocks.NotificationService)
		h := handlers.NewNotificationHandler(mockNotificationService)
		mockNotificationService.On("ListNotifications", mock.Anything, userID, 1, 10).Return(nil, errors.New("boom")).Once()

		rr := httptest.NewRecorder()
		h.ListNotifications()(rr, testutils.CreateTestRequestWithContext(http.MethodGet, "/notification", nil, userID, nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "boom")
	})
}
