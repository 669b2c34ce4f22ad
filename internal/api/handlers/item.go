package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/vendor-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	service "github.com/aaravmahajanofficial/vendor-marketplace/internal/services"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/utils"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ItemHandler struct {
	itemService service.ItemService
	validator   *validator.Validate
}

func NewItemHandler(itemService service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService, validator: utils.NewValidator()}
}

// CreateItem godoc
//	@Summary		Create an item
//	@Description	Lists a new item under the caller's vendor. Only vendors can create items.
//	@Tags			Items
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.CreateItemRequest	true	"Item details"
//	@Success		201		{object}	models.Item					"Item created"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		403		{object}	response.ErrorResponse		"Caller is not a vendor"
//	@Security		BearerAuth
//	@Router			/item [post]
func (h *ItemHandler) CreateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		var req models.CreateItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid item input")
			return
		}

		item, err := h.itemService.CreateItem(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Warn("Failed to create item", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Item created", slog.String("itemId", item.ID.String()))
		response.Success(w, http.StatusCreated, item)
	}
}

// ListItems godoc
//	@Summary		List items
//	@Tags			Items
//	@Produce		json
//	@Param			category	query		string						false	"Filter by category"
//	@Param			page		query		int							false	"Page number"	default(1)
//	@Param			pageSize	query		int							false	"Page size"		default(10)
//	@Success		200			{object}	models.PaginatedResponse	"Items"
//	@Failure		500			{object}	response.ErrorResponse		"Internal server error"
//	@Router			/item [get]
func (h *ItemHandler) ListItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		page, pageSize := utils.ParsePagination(r)
		filter := models.ItemFilter{
			Category: strings.TrimSpace(r.URL.Query().Get("category")),
			Page:     page,
			PageSize: pageSize,
		}

		items, err := h.itemService.ListItems(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to list items", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, items)
	}
}

// GetItem godoc
//	@Summary		Get an item by ID
//	@Tags			Items
//	@Produce		json
//	@Param			itemId	path		string					true	"Item ID"	Format(uuid)
//	@Success		200		{object}	models.Item				"Item"
//	@Failure		400		{object}	response.ErrorResponse	"Invalid item ID"
//	@Failure		404		{object}	response.ErrorResponse	"Item not found"
//	@Router			/item/{itemId} [get]
func (h *ItemHandler) GetItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := utils.ParseID(w, r, "itemId")
		if !ok {
			return
		}

		item, err := h.itemService.GetItemByID(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get item", slog.String("itemId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, item)
	}
}

// GetItemByName godoc
//	@Summary		Get an item by name
//	@Tags			Items
//	@Produce		json
//	@Param			name	path		string					true	"Item name"
//	@Success		200		{object}	models.Item				"Item"
//	@Failure		400		{object}	response.ErrorResponse	"Name is required"
//	@Failure		404		{object}	response.ErrorResponse	"Item not found"
//	@Router			/item/name/{name} [get]
func (h *ItemHandler) GetItemByName() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		name := strings.TrimSpace(r.PathValue("name"))
		if name == "" {
			response.Error(w, appErrors.BadRequestError("Item name is required"))
			return
		}

		item, err := h.itemService.GetItemByName(r.Context(), name)
		if err != nil {
			logger.Warn("Failed to get item by name", slog.String("name", name), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, item)
	}
}

// UpdateItem godoc
//	@Summary		Update an item
//	@Description	Owner vendor only. At least one field is required; the rating is not client-writable.
//	@Tags			Items
//	@Accept			json
//	@Produce		json
//	@Param			itemId	path		string						true	"Item ID"	Format(uuid)
//	@Param			item	body		models.UpdateItemRequest	true	"Fields to change"
//	@Success		200		{object}	models.Item					"Updated item"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		403		{object}	response.ErrorResponse		"Not the item's vendor"
//	@Failure		404		{object}	response.ErrorResponse		"Item not found"
//	@Security		BearerAuth
//	@Router			/item/{itemId} [put]
func (h *ItemHandler) UpdateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		id, ok := utils.ParseID(w, r, "itemId")
		if !ok {
			return
		}

		var req models.UpdateItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid item update input")
			return
		}

		item, err := h.itemService.UpdateItem(r.Context(), claims.UserID, id, &req)
		if err != nil {
			logger.Warn("Failed to update item", slog.String("itemId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Item updated", slog.String("itemId", id.String()))
		response.Success(w, http.StatusOK, item)
	}
}

// DeleteItem godoc
//	@Summary		Delete an item
//	@Description	Owner vendor only. The item's reviews are removed with it.
//	@Tags			Items
//	@Produce		json
//	@Param			itemId	path		string					true	"Item ID"	Format(uuid)
//	@Success		200		{object}	response.APIResponse	"Item deleted"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403		{object}	response.ErrorResponse	"Not the item's vendor"
//	@Failure		404		{object}	response.ErrorResponse	"Item not found"
//	@Security		BearerAuth
//	@Router			/item/{itemId} [delete]
func (h *ItemHandler) DeleteItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		id, ok := utils.ParseID(w, r, "itemId")
		if !ok {
			return
		}

		if err := h.itemService.DeleteItem(r.Context(), claims.UserID, id); err != nil {
			logger.Warn("Failed to delete item", slog.String("itemId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Item deleted", slog.String("itemId", id.String()))
		response.SuccessWithMessage(w, http.StatusOK, "Item deleted", nil)
	}
}
