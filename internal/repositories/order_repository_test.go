package repository_test

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	repository "github.com/aaravmahajanofficial/vendor-marketplace/internal/repositories"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository(t *testing.T) {
	ctx := t.Context()

	newOrder := func() *models.Order {
		addressID, paymentID := uuid.New(), uuid.New()

		return &models.Order{
			UserID:    uuid.New(),
			AddressID: &addressID,
			PaymentID: &paymentID,
			TotalCost: 500,
			Items: []models.OrderItem{
				{ItemID: uuid.New(), Name: "A", UnitPrice: 100, Quantity: 3, LineTotal: 300},
				{ItemID: uuid.New(), Name: "B", UnitPrice: 200, Quantity: 1, LineTotal: 200},
			},
		}
	}

	t.Run("CreateOrder - header and lines in one transaction", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewOrderRepo(db)
		order := newOrder()
		orderID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs(order.UserID, order.AddressID, order.PaymentID, order.TotalCost).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(orderID.String(), time.Now()))
		prep := mock.ExpectPrepare(`INSERT INTO order_items`)
		for _, line := range order.Items {
			prep.ExpectQuery().
				WithArgs(orderID, line.ItemID, line.Name, line.UnitPrice, line.Quantity, line.LineTotal).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
		}
		mock.ExpectCommit()

		require.NoError(t, repo.CreateOrder(ctx, order))
		assert.Equal(t, orderID, order.ID)
		for _, line := range order.Items {
			assert.Equal(t, orderID, line.OrderID)
			assert.NotEqual(t, uuid.Nil, line.ID)
		}
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CreateOrder - line failure rolls back", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewOrderRepo(db)
		order := newOrder()
		orderID := uuid.New()
		dbErr := errors.New("insert failed")

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(orderID.String(), time.Now()))
		prep := mock.ExpectPrepare(`INSERT INTO order_items`)
		prep.ExpectQuery().WillReturnError(dbErr)
		mock.ExpectRollback()

		err := repo.CreateOrder(ctx, order)

		assert.ErrorIs(t, err, dbErr)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetOrderByID attaches lines", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewOrderRepo(db)
		orderID, userID, itemID := uuid.New(), uuid.New(), uuid.New()

		mock.ExpectQuery(`FROM orders WHERE id = \$1`).WithArgs(orderID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "address_id", "payment_id", "total_cost", "created_at"}).
				AddRow(orderID.String(), userID.String(), nil, nil, int64(300), time.Now()))
		mock.ExpectQuery(`FROM order_items\s+WHERE order_id = ANY`).WithArgs(pq.Array([]string{orderID.String()})).
			WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "item_id", "name", "unit_price", "quantity", "line_total"}).
				AddRow(uuid.NewString(), orderID.String(), itemID.String(), "A", int64(100), 3, int64(300)))

		order, err := repo.GetOrderByID(ctx, orderID)

		require.NoError(t, err)
		assert.Nil(t, order.AddressID)
		require.Len(t, order.Items, 1)
		assert.Equal(t, 3, order.Items[0].Quantity)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DeleteOrder scoped to owner", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewOrderRepo(db)
		orderID, userID := uuid.New(), uuid.New()

		mock.ExpectExec(`DELETE FROM orders WHERE id = \$1 AND user_id = \$2`).WithArgs(orderID, userID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteOrder(ctx, orderID, userID))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
