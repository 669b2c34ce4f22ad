package service_test

import (
	"context"
	"database/sql"
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

func TestAddressService(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	city := "Leeds"

	t.Run("Create", func(t *testing.T) {
		repo := new(mocks.AddressRepository)
		svc := service.NewAddressService(repo)
		repo.On("CreateAddress", ctx, mock.MatchedBy(func(a *models.Address) bool {
			return a.UserID == userID && a.City == "York"
		})).Return(nil).Once()

		address, err := svc.CreateAddress(ctx, userID, &models.CreateAddressRequest{
			Name: "Home", AddressLineOne: "1 Main St", AddressLineTwo: "Flat 2", City: "York", Postcode: "YO1", Country: "UK",
		})

		require.NoError(t, err)
		assert.Equal(t, userID, address.UserID)
	})

	t.Run("Get - Another user's address", func(t *testing.T) {
		repo := new(mocks.AddressRepository)
		svc := service.NewAddressService(repo)
		repo.On("GetAddressByID", ctx, addressID).Return(&models.Address{ID: addressID, UserID: uuid.New()}, nil).Once()

		_, err := svc.GetAddress(ctx, userID, addressID)

		requireCode(t, err, appErrors.ErrCodeForbidden)
	})

	t.Run("Get - Absent", func(t *testing.T) {
		repo := new(mocks.AddressRepository)
		svc := service.NewAddressService(repo)
		repo.On("GetAddressByID", ctx, addressID).Return(nil, sql.ErrNoRows).Once()

		_, err := svc.GetAddress(ctx, userID, addressID)

		requireCode(t, err, appErrors.ErrCodeNotFound)
	})

	t.Run("Update - Empty body", func(t *testing.T) {
		svc := service.NewAddressService(new(mocks.AddressRepository))

		_, err := svc.UpdateAddress(ctx, userID, addressID, &models.UpdateAddressRequest{})

		requireCode(t, err, appErrors.ErrCodeBadRequest)
	})

	t.Run("Update - Applies given fields", func(t *testing.T) {
		repo := new(mocks.AddressRepository)
		svc := service.NewAddressService(repo)
		repo.On("GetAddressByID", ctx, addressID).Return(&models.Address{ID: addressID, UserID: userID, City: "York", Country: "UK"}, nil).Once()
		repo.On("UpdateAddress", ctx, mock.MatchedBy(func(a *models.Address) bool {
			return a.City == "Leeds" && a.Country == "UK"
		})).Return(nil).Once()

		address, err := svc.UpdateAddress(ctx, userID, addressID, &models.UpdateAddressRequest{City: &city})

		require.NoError(t, err)
		assert.Equal(t, "Leeds", address.City)
	})

	t.Run("Delete - Owner", func(t *testing.T) {
		repo := new(mocks.AddressRepository)
		svc := service.NewAddressService(repo)
		repo.On("GetAddressByID", ctx, addressID).Return(&models.Address{ID: addressID, UserID: userID}, nil).Once()
		repo.On("DeleteAddress", ctx, addressID, userID).Return(nil).Once()

		require.NoError(t, svc.DeleteAddress(ctx, userID, addressID))
		repo.AssertExpectations(t)
	})
}
