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

func TestCreateVendor(t *testing.T) {
	userID := uuid.New()
	vendor := &models.Vendor{ID: uuid.New(), UserID: userID, Name: "Acme"}

	t.Run("Success - New vendor", func(t *testing.T) {
		mockVendorService := new(mocks.VendorService)
		h := handlers.NewVendorHandler(mockVendorService)
		mockVendorService.On("CreateVendor", mock.Anything, userID, mock.Anything).Return(vendor, true, nil).Once()

		rr := httptest.NewRecorder()
		h.CreateVendor()(rr, testutils.CreateTestRequestWithContext(http.MethodPost, "/vendor", body(`{"name":"Acme"}`), userID, nil))

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Success - Already a vendor", func(t *testing.T) {
		mockVendorService := new(mocks.VendorService)
		h := handlers.NewVendorHandler(mockVendorService)
		mockVendorService.On("CreateVendor", mock.Anything, userID, mock.Anything).Return(vendor, false, nil).Once()

		rr := httptest.NewRecorder()
		h.CreateVendor()(rr, testutils.CreateTestRequestWithContext(http.MethodPost, "/vendor", body(`{"name":"Acme"}`), userID, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "User is already a vendor.", decodeResponse(t, rr).Message)
	})
}

func TestUpdateVendor_NotOwner(t *testing.T) {
	mockVendorService := new(mocks.VendorService)
	h := handlers.NewVendorHandler(mockVendorService)
	userID, vendorID := uuid.New(), uuid.New()
	mockVendorService.On("UpdateVendor", mock.Anything, userID, vendorID, mock.Anything).
		Return(nil, appErrors.ForbiddenError("You can only update your own vendor")).Once()

	rr := httptest.NewRecorder()
	h.UpdateVendor()(rr, testutils.CreateTestRequestWithContext(http.MethodPut, "/vendor/"+vendorID.String(),
		body(`{"name":"New"}`), userID, map[string]string{"vendorId": vendorID.String()}))

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestGetStorefront(t *testing.T) {
	mockVendorService := new(mocks.VendorService)
	h := handlers.NewVendorHandler(mockVendorService)
	vendorID := uuid.New()
	store := &models.Storefront{Vendor: &models.Vendor{ID: vendorID}, Items: []*models.Item{{ID: uuid.New()}}}
	mockVendorService.On("GetStorefront", mock.Anything, vendorID).Return(store, nil).Once()

	rr := httptest.NewRecorder()
	h.GetStorefront()(rr, testutils.CreateTestRequestWithoutContext(http.MethodGet, "/vendor/"+vendorID.String()+"/store",
		nil, map[string]string{"vendorId": vendorID.String()}))

	assert.Equal(t, http.StatusOK, rr.Code)
	mockVendorService.AssertExpectations(t)
}

func TestDeleteVendor_NotAVendor(t *testing.T) {
	mockVendorService := new(mocks.VendorService)
	h := handlers.NewVendorHandler(mockVendorService)
	userID := uuid.New()
	mockVendorService.On("DeleteVendor", mock.Anything, userID).Return(appErrors.NotFoundError("User is not a vendor")).Once()

	rr := httptest.NewRecorder()
	h.DeleteVendor()(rr, testutils.CreateTestRequestWithContext(http.MethodDelete, "/vendor", nil, userID, nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
