package repository_test

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	repository "github.com/aaravmahajanofficial/vendor-marketplace/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepository(t *testing.T) {
	ctx := t.Context()

	t.Run("CreateNotification - Defaults Metadata", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewNotificationRepo(db)

		userID := uuid.New()
		n := &models.Notification{
			UserID:    &userID,
			Type:      models.NotificationTypeEmail,
			Recipient: "a@b.com",
			Subject:   "Order confirmed",
			Content:   "Thanks",
			Status:    models.StatusPending,
		}
		newID := uuid.New()
		now := time.Now()

		mock.ExpectQuery(`INSERT INTO notifications`).
			WithArgs(sqlmock.AnyArg(), "email", "a@b.com", "Order confirmed", "Thanks", "pending", "", "{}").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(newID.String(), now, now))

		require.NoError(t, repo.CreateNotification(ctx, n))
		assert.Equal(t, newID, n.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UpdateStatus", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewNotificationRepo(db)
		id := uuid.New()
		sentAt := time.Now()

		mock.ExpectExec(`UPDATE notifications SET status = \$1, error_message = \$2, sent_at = \$3`).
			WithArgs("sent", "", sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateStatus(ctx, id, models.StatusSent, "", &sentAt))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListNotificationsByUser", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewNotificationRepo(db)
		userID := uuid.New()
		now := time.Now()

		cols := []string{"id", "user_id", "type", "recipient", "subject", "content", "status", "error_message",
			"metadata", "created_at", "updated_at", "sent_at"}

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM notifications WHERE user_id = \$1`).WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectQuery(`FROM notifications\s+WHERE user_id = \$1\s+ORDER BY created_at DESC`).WithArgs(userID, 10, 0).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(uuid.NewString(), userID.String(), "email", "a@b.com", "s", "c", "sent", nil, []byte(`{}`), now, now, now).
				AddRow(uuid.NewString(), nil, "email", "a@b.com", "s", "c", "failed", "bounced", []byte(`{}`), now, now, nil))

		notifications, total, err := repo.ListNotificationsByUser(ctx, userID, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, notifications, 2)
		require.NotNil(t, notifications[0].UserID)
		assert.Equal(t, userID, *notifications[0].UserID)
		assert.NotNil(t, notifications[0].SentAt)
		assert.Nil(t, notifications[1].UserID)
		assert.Nil(t, notifications[1].SentAt)
		assert.Equal(t, "bounced", notifications[1].ErrorMessage)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
