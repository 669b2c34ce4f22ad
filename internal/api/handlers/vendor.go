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

type VendorHandler struct {
	vendorService service.VendorService
	validator     *validator.Validate
}

func NewVendorHandler(vendorService service.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService, validator: utils.NewValidator()}
}

// CreateVendor godoc
//	@Summary		Become a vendor
//	@Description	Registers the caller as a vendor. Calling again returns the existing vendor.
//	@Tags			Vendors
//	@Accept			json
//	@Produce		json
//	@Param			vendor	body		models.CreateVendorRequest	true	"Vendor details"
//	@Success		201		{object}	models.Vendor				"Vendor created"
//	@Success		200		{object}	models.Vendor				"User is already a vendor"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Security		BearerAuth
//	@Router			/vendor [post]
func (h *VendorHandler) CreateVendor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		var req models.CreateVendorRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid vendor input")
			return
		}

		vendor, created, err := h.vendorService.CreateVendor(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to create vendor", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if !created {
			response.SuccessWithMessage(w, http.StatusOK, "User is already a vendor.", vendor)
			return
		}

		logger.Info("Vendor created", slog.String("vendorId", vendor.ID.String()))
		response.Success(w, http.StatusCreated, vendor)
	}
}

// ListVendors godoc
//	@Summary		List vendors
//	@Tags			Vendors
//	@Produce		json
//	@Param			page		query		int							false	"Page number"	default(1)
//	@Param			pageSize	query		int							false	"Page size"		default(10)
//	@Success		200			{object}	models.PaginatedResponse	"Vendors"
//	@Failure		500			{object}	response.ErrorResponse		"Internal server error"
//	@Router			/vendor [get]
func (h *VendorHandler) ListVendors() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		page, pageSize := utils.ParsePagination(r)

		vendors, err := h.vendorService.ListVendors(r.Context(), page, pageSize)
		if err != nil {
			logger.Error("Failed to list vendors", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, vendors)
	}
}

// GetVendor godoc
//	@Summary		Get a vendor by ID
//	@Tags			Vendors
//	@Produce		json
//	@Param			vendorId	path		string					true	"Vendor ID"	Format(uuid)
//	@Success		200			{object}	models.Vendor			"Vendor"
//	@Failure		400			{object}	response.ErrorResponse	"Invalid vendor ID"
//	@Failure		404			{object}	response.ErrorResponse	"Vendor not found"
//	@Router			/vendor/{vendorId} [get]
func (h *VendorHandler) GetVendor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := utils.ParseID(w, r, "vendorId")
		if !ok {
			return
		}

		vendor, err := h.vendorService.GetVendorByID(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get vendor", slog.String("vendorId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, vendor)
	}
}

// GetVendorByName godoc
//	@Summary		Get a vendor by name
//	@Tags			Vendors
//	@Produce		json
//	@Param			name	path		string					true	"Vendor name"
//	@Success		200		{object}	models.Vendor			"Vendor"
//	@Failure		400		{object}	response.ErrorResponse	"Name is required"
//	@Failure		404		{object}	response.ErrorResponse	"Vendor not found"
//	@Router			/vendor/name/{name} [get]
func (h *VendorHandler) GetVendorByName() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		name := strings.TrimSpace(r.PathValue("name"))
		if name == "" {
			response.Error(w, appErrors.BadRequestError("Vendor name is required"))
			return
		}

		vendor, err := h.vendorService.GetVendorByName(r.Context(), name)
		if err != nil {
			logger.Warn("Failed to get vendor by name", slog.String("name", name), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, vendor)
	}
}

// GetStorefront godoc
//	@Summary		A vendor's storefront
//	@Description	The vendor together with every item it sells.
//	@Tags			Vendors
//	@Produce		json
//	@Param			vendorId	path		string					true	"Vendor ID"	Format(uuid)
//	@Success		200			{object}	models.Storefront		"Storefront"
//	@Failure		400			{object}	response.ErrorResponse	"Invalid vendor ID"
//	@Failure		404			{object}	response.ErrorResponse	"Vendor not found"
//	@Router			/vendor/{vendorId}/store [get]
func (h *VendorHandler) GetStorefront() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := utils.ParseID(w, r, "vendorId")
		if !ok {
			return
		}

		store, err := h.vendorService.GetStorefront(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to load storefront", slog.String("vendorId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, store)
	}
}

// UpdateVendor godoc
//	@Summary		Rename a vendor
//	@Tags			Vendors
//	@Accept			json
//	@Produce		json
//	@Param			vendorId	path		string						true	"Vendor ID"	Format(uuid)
//	@Param			vendor		body		models.UpdateVendorRequest	true	"New name"
//	@Success		200			{object}	models.Vendor				"Updated vendor"
//	@Failure		400			{object}	response.ErrorResponse		"Validation error"
//	@Failure		401			{object}	response.ErrorResponse		"Authentication required"
//	@Failure		403			{object}	response.ErrorResponse		"Not the vendor's owner"
//	@Failure		404			{object}	response.ErrorResponse		"Vendor not found"
//	@Security		BearerAuth
//	@Router			/vendor/{vendorId} [put]
func (h *VendorHandler) UpdateVendor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		id, ok := utils.ParseID(w, r, "vendorId")
		if !ok {
			return
		}

		var req models.UpdateVendorRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid vendor update input")
			return
		}

		vendor, err := h.vendorService.UpdateVendor(r.Context(), claims.UserID, id, &req)
		if err != nil {
			logger.Warn("Failed to update vendor", slog.String("vendorId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Vendor updated", slog.String("vendorId", id.String()))
		response.Success(w, http.StatusOK, vendor)
	}
}

// DeleteVendor godoc
//	@Summary		Stop being a vendor
//	@Description	Removes the caller's vendor along with its items and their reviews.
//	@Tags			Vendors
//	@Produce		json
//	@Success		200	{object}	response.APIResponse	"Vendor deleted"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"User is not a vendor"
//	@Security		BearerAuth
//	@Router			/vendor [delete]
func (h *VendorHandler) DeleteVendor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		if err := h.vendorService.DeleteVendor(r.Context(), claims.UserID); err != nil {
			logger.Warn("Failed to delete vendor", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Vendor deleted")
		response.SuccessWithMessage(w, http.StatusOK, "Vendor deleted", nil)
	}
}
