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

func setupItemTest() (*mocks.ItemService, *handlers.ItemHandler) {
	mockItemService := new(mocks.ItemService)
	return mockItemService, handlers.NewItemHandler(mockItemService)
}

func TestCreateItem(t *testing.T) {
	const itemBody = `{"name":"Lamp","price":1999,"description":"Brass desk lamp","category":"lighting"}`

	t.Run("Success", func(t *testing.T) {
		mockItemService, h := setupItemTest()
		userID := uuid.New()
		mockItemService.On("CreateItem", mock.Anything, userID, mock.MatchedBy(func(r *models.CreateItemRequest) bool {
			return r.Price == 1999 && r.Category == "lighting"
		})).Return(&models.Item{ID: uuid.New(), Name: "Lamp"}, nil).Once()

		rr := httptest.NewRecorder()
		h.CreateItem()(rr, testutils.CreateTestRequestWithContext(http.MethodPost, "/item", body(itemBody), userID, nil))

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"rating":null`)
	})

	t.Run("Failure - Not a vendor", func(t *testing.T) {
		mockItemService, h := setupItemTest()
		mockItemService.On("CreateItem", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, appErrors.ForbiddenError("Only vendors can manage items")).Once()

		rr := httptest.NewRecorder()
		h.CreateItem()(rr, testutils.CreateTestRequestWithContext(http.MethodPost, "/item", body(itemBody), uuid.New(), nil))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Failure - Zero price", func(t *testing.T) {
		mockItemService, h := setupItemTest()

		rr := httptest.NewRecorder()
		h.CreateItem()(rr, testutils.CreateTestRequestWithContext(http.MethodPost, "/item",
			body(`{"name":"Lamp","price":0,"description":"d","category":"c"}`), uuid.New(), nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockItemService.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestListItems_PassesFilter(t *testing.T) {
	mockItemService, h := setupItemTest()
	want := models.ItemFilter{Category: "lighting", Page: 2, PageSize: 5}
	mockItemService.On("ListItems", mock.Anything, want).Return(&models.PaginatedResponse{Page: 2, PageSize: 5}, nil).Once()

	rr := httptest.NewRecorder()
	h.ListItems()(rr, testutils.CreateTestRequestWithoutContext(http.MethodGet, "/item?category=lighting&page=2&pageSize=5", nil, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	mockItemService.AssertExpectations(t)
}

func TestGetItem(t *testing.T) {
	t.Run("Not found", func(t *testing.T) {
		mockItemService, h := setupItemTest()
		id := uuid.New()
		mockItemService.On("GetItemByID", mock.Anything, id).Return(nil, appErrors.NotFoundError("Item not found")).Once()

		rr := httptest.NewRecorder()
		h.GetItem()(rr, testutils.CreateTestRequestWithoutContext(http.MethodGet, "/item/"+id.String(), nil, map[string]string{"itemId": id.String()}))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Invalid id", func(t *testing.T) {
		_, h := setupItemTest()

		rr := httptest.NewRecorder()
		h.GetItem()(rr, testutils.CreateTestRequestWithoutContext(http.MethodGet, "/item/nope", nil, map[string]string{"itemId": "nope"}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteItem_NotOwner(t *testing.T) {
	mockItemService, h := setupItemTest()
	userID, itemID := uuid.New(), uuid.New()
	mockItemService.On("DeleteItem", mock.Anything, userID, itemID).Return(appErrors.ForbiddenError("You can only manage your own items")).Once()

	rr := httptest.NewRecorder()
	h.DeleteItem()(rr, testutils.CreateTestRequestWithContext(http.MethodDelete, "/item/"+itemID.String(), nil, userID,
		map[string]string{"itemId": itemID.String()}))

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
