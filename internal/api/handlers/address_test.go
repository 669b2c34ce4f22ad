package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/vendor-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/services/mocks"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateAddress(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockAddressService := new(mocks.AddressService)
		h := handlers.NewAddressHandler(mockAddressService)
		mockAddressService.On("CreateAddress", mock.Anything, userID, mock.Anything).Return(&models.Address{ID: uuid.New(), UserID: userID}, nil).Once()

		rr := httptest.NewRecorder()
		h.CreateAddress()(rr, testutils.CreateTestRequestWithContext(http.MethodPost, "/address",
			body(`{"name":"Home","addressLineOne":"1 Main St","addressLineTwo":"Flat 2","city":"York","postcode":"YO1","country":"UK"}`), userID, nil))

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Failure - Missing city", func(t *testing.T) {
		mockAddressService := new(mocks.AddressService)
		h := handlers.NewAddressHandler(mockAddressService)

		rr := httptest.NewRecorder()
		h.CreateAddress()(rr, testutils.CreateTestRequestWithContext(http.MethodPost, "/address",
			body(`{"name":"Home","addressLineOne":"1 Main St","addressLineTwo":"Flat 2","postcode":"YO1","country":"UK"}`), userID, nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeResponse(t, rr).Error.Details, "Field City is required")
	})
}

func TestGetAddress_AnotherUsersAddress(t *testing.T) {
	mockAddressService := new(mocks.AddressService)
	h := handlers.NewAddressHandler(mockAddressService)
	userID, addressID := uuid.New(), uuid.New()
	mockAddressService.On("GetAddress", mock.Anything, userID, addressID).Return(nil, appErrors.ForbiddenError("You can only access your own addresses")).Once()

	rr := httptest.NewRecorder()
	h.GetAddress()(rr, testutils.CreateTestRequestWithContext(http.MethodGet, "/address/"+addressID.String(), nil, userID,
		map[string]string{"addressId": addressID.String()}))

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
