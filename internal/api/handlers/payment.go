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

type PaymentHandler struct {
	paymentService service.PaymentService
	validator      *validator.Validate
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, validator: utils.NewValidator()}
}

// CreatePayment godoc
//	@Summary		Save a card on file
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			payment	body		models.CreatePaymentRequest	true	"Payment method"
//	@Success		201		{object}	models.Payment				"Card saved"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Security		BearerAuth
//	@Router			/payment [post]
func (h *PaymentHandler) CreatePayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		var req models.CreatePaymentRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid payment input")
			return
		}

		payment, err := h.paymentService.CreatePayment(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to create payment method", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, payment)
	}
}

// ListPayments godoc
//	@Summary		List the caller's payment methods
//	@Tags			Payments
//	@Produce		json
//	@Success		200	{array}		models.Payment			"Payment methods"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/payment [get]
func (h *PaymentHandler) ListPayments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		payments, err := h.paymentService.ListPayments(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to list payment methods", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, payments)
	}
}

// GetPayment godoc
//	@Summary		Get one of the caller's payment methods
//	@Tags			Payments
//	@Produce		json
//	@Param			paymentId	path		string					true	"Payment ID"	Format(uuid)
//	@Success		200			{object}	models.Payment			"Payment method"
//	@Failure		401			{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403			{object}	response.ErrorResponse	"Another user's payment method"
//	@Failure		404			{object}	response.ErrorResponse	"Payment not found"
//	@Security		BearerAuth
//	@Router			/payment/{paymentId} [get]
func (h *PaymentHandler) GetPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		id, ok := utils.ParseID(w, r, "paymentId")
		if !ok {
			return
		}

		payment, err := h.paymentService.GetPayment(r.Context(), claims.UserID, id)
		if err != nil {
			logger.Warn("Failed to get payment method", slog.String("paymentId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, payment)
	}
}

// UpdatePayment godoc
//	@Summary		Update one of the caller's payment methods
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			paymentId	path		string						true	"Payment ID"	Format(uuid)
//	@Param			payment		body		models.UpdatePaymentRequest	true	"Fields to change"
//	@Success		200			{object}	models.Payment				"Updated payment method"
//	@Failure		400			{object}	response.ErrorResponse		"Validation error"
//	@Failure		403			{object}	response.ErrorResponse		"Another user's payment method"
//	@Failure		404			{object}	response.ErrorResponse		"Payment not found"
//	@Security		BearerAuth
//	@Router			/payment/{paymentId} [put]
func (h *PaymentHandler) UpdatePayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		id, ok := utils.ParseID(w, r, "paymentId")
		if !ok {
			return
		}

		var req models.UpdatePaymentRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid payment update input")
			return
		}

		payment, err := h.paymentService.UpdatePayment(r.Context(), claims.UserID, id, &req)
		if err != nil {
			logger.Warn("Failed to update payment method", slog.String("paymentId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, payment)
	}
}

// DeletePayment godoc
//	@Summary		Delete one of the caller's payment methods
//	@Tags			Payments
//	@Produce		json
//	@Param			paymentId	path		string					true	"Payment ID"	Format(uuid)
//	@Success		200			{object}	response.APIResponse	"Payment method deleted"
//	@Failure		403			{object}	response.ErrorResponse	"Another user's payment method"
//	@Failure		404			{object}	response.ErrorResponse	"Payment not found"
//	@Security		BearerAuth
//	@Router			/payment/{paymentId} [delete]
func (h *PaymentHandler) DeletePayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		id, ok := utils.ParseID(w, r, "paymentId")
		if !ok {
			return
		}

		if err := h.paymentService.DeletePayment(r.Context(), claims.UserID, id); err != nil {
			logger.Warn("Failed to delete payment method", slog.String("paymentId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.SuccessWithMessage(w, http.StatusOK, "Payment method deleted", nil)
	}
}
