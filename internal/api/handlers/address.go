package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	service "github.com/aaravmahajanofficial/vendor-marketplace/internal/services"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/utils"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type AddressHandler struct {
	addressService service.AddressService
	validator      *validator.Validate
}

func NewAddressHandler(addressService service.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService, validator: utils.NewValidator()}
}

// CreateAddress godoc
//	@Summary		Save a shipping address
//	@Tags			Addresses
//	@Accept			json
//	@Produce		json
//	@Param			address	body		models.CreateAddressRequest	true	"Address"
//	@Success		201		{object}	models.Address				"Address saved"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Security		BearerAuth
//	@Router			/address [post]
func (h *AddressHandler) CreateAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		var req models.CreateAddressRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid address input")
			return
		}

		address, err := h.addressService.CreateAddress(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to create address", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, address)
	}
}

// ListAddresses godoc
//	@Summary		List the caller's addresses
//	@Tags			Addresses
//	@Produce		json
//	@Success		200	{array}		models.Address			"Addresses"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/address [get]
func (h *AddressHandler) ListAddresses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		addresses, err := h.addressService.ListAddresses(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to list addresses", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, addresses)
	}
}

// GetAddress godoc
//	@Summary		Get one of the caller's addresses
//	@Tags			Addresses
//	@Produce		json
//	@Param			addressId	path		string					true	"Address ID"	Format(uuid)
//	@Success		200			{object}	models.Address			"Address"
//	@Failure		401			{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403			{object}	response.ErrorResponse	"Another user's address"
//	@Failure		404			{object}	response.ErrorResponse	"Address not found"
//	@Security		BearerAuth
//	@Router			/address/{addressId} [get]
func (h *AddressHandler) GetAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		id, ok := utils.ParseID(w, r, "addressId")
		if !ok {
			return
		}

		address, err := h.addressService.GetAddress(r.Context(), claims.UserID, id)
		if err != nil {
			logger.Warn("Failed to get address", slog.String("addressId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, address)
	}
}

// UpdateAddress godoc
//	@Summary		Update one of the caller's addresses
//	@Tags			Addresses
//	@Accept			json
//	@Produce		json
//	@Param			addressId	path		string						true	"Address ID"	Format(uuid)
//	@Param			address		body		models.UpdateAddressRequest	true	"Fields to change"
//	@Success		200			{object}	models.Address				"Updated address"
//	@Failure		400			{object}	response.ErrorResponse		"Validation error"
//	@Failure		403			{object}	response.ErrorResponse		"Another user's address"
//	@Failure		404			{object}	response.ErrorResponse		"Address not found"
//	@Security		BearerAuth
//	@Router			/address/{addressId} [put]
func (h *AddressHandler) UpdateAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		id, ok := utils.ParseID(w, r, "addressId")
		if !ok {
			return
		}

		var req models.UpdateAddressRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid address update input")
			return
		}

		address, err := h.addressService.UpdateAddress(r.Context(), claims.UserID, id, &req)
		if err != nil {
			logger.Warn("Failed to update address", slog.String("addressId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, address)
	}
}

// DeleteAddress godoc
//	@Summary		Delete one of the caller's addresses
//	@Tags			Addresses
//	@Produce		json
//	@Param			addressId	path		string					true	"Address ID"	Format(uuid)
//	@Success		200			{object}	response.APIResponse	"Address deleted"
//	@Failure		403			{object}	response.ErrorResponse	"Another user's address"
//	@Failure		404			{object}	response.ErrorResponse	"Address not found"
//	@Security		BearerAuth
//	@Router			/address/{addressId} [delete]
func (h *AddressHandler) DeleteAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		id, ok := utils.ParseID(w, r, "addressId")
		if !ok {
			return
		}

		if err := h.addressService.DeleteAddress(r.Context(), claims.UserID, id); err != nil {
			logger.Warn("Failed to delete address", slog.String("addressId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.SuccessWithMessage(w, http.StatusOK, "Address deleted", nil)
	}
}
