package repository_test

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	repository "github.com/aaravmahajanofficial/vendor-marketplace/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var addressCols = []string{"id", "user_id", "name", "address_line_one", "address_line_two", "city", "postcode", "country"}

func TestAddressRepository(t *testing.T) {
	ctx := t.Context()

	t.Run("CreateAddress", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewAddressRepo(db)

		a := &models.Address{UserID: uuid.New(), Name: "Home", AddressLineOne: "1 High St", AddressLineTwo: "Flat 2",
			City: "Leeds", Postcode: "LS1 1AA", Country: "UK"}
		newID := uuid.New()

		mock.ExpectQuery(`INSERT INTO addresses`).
			WithArgs(a.UserID, a.Name, a.AddressLineOne, a.AddressLineTwo, a.City, a.Postcode, a.Country).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(newID.String()))

		require.NoError(t, repo.CreateAddress(ctx, a))
		assert.Equal(t, newID, a.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListAddressesByUser - Empty", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewAddressRepo(db)
		userID := uuid.New()

		mock.ExpectQuery(`FROM addresses WHERE user_id = \$1 ORDER BY name`).WithArgs(userID).
			WillReturnRows(sqlmock.NewRows(addressCols))

		addresses, err := repo.ListAddressesByUser(ctx, userID)

		require.NoError(t, err)
		assert.NotNil(t, addresses)
		assert.Empty(t, addresses)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetAddressByID", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewAddressRepo(db)
		id, userID := uuid.New(), uuid.New()

		mock.ExpectQuery(`FROM addresses WHERE id = \$1`).WithArgs(id).
			WillReturnRows(sqlmock.NewRows(addressCols).
				AddRow(id.String(), userID.String(), "Home", "1 High St", "Flat 2", "Leeds", "LS1 1AA", "UK"))

		a, err := repo.GetAddressByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, userID, a.UserID)
		assert.Equal(t, "Leeds", a.City)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UpdateAddress - No Rows", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewAddressRepo(db)
		a := &models.Address{ID: uuid.New(), UserID: uuid.New(), Name: "Work"}

		mock.ExpectExec(`UPDATE addresses`).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateAddress(ctx, a), sql.ErrNoRows)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DeleteAddress", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewAddressRepo(db)
		id, userID := uuid.New(), uuid.New()

		mock.ExpectExec(`DELETE FROM addresses WHERE id = \$1 AND user_id = \$2`).WithArgs(id, userID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteAddress(ctx, id, userID))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
