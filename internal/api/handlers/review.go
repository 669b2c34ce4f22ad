package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/api/middleware"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	service "github.com/aaravmahajanofficial/vendor-marketplace/internal/services"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/utils"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ReviewHandler struct {
	reviewService service.ReviewService
	validator     *validator.Validate
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, validator: utils.NewValidator()}
}

// ListReviews godoc
//	@Summary		List an item's reviews
//	@Tags			Reviews
//	@Produce		json
//	@Param			itemId	path		string					true	"Item ID"	Format(uuid)
//	@Success		200		{array}		models.Review			"Reviews"
//	@Failure		400		{object}	response.ErrorResponse	"Invalid item ID"
//	@Failure		404		{object}	response.ErrorResponse	"Item not found"
//	@Router			/item/{itemId}/reviews [get]
func (h *ReviewHandler) ListReviews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		itemID, ok := utils.ParseID(w, r, "itemId")
		if !ok {
			return
		}

		reviews, err := h.reviewService.ListReviews(r.Context(), itemID)
		if err != nil {
			logger.Warn("Failed to list reviews", slog.String("itemId", itemID.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, reviews)
	}
}

// CreateReview godoc
//	@Summary		Review an item
//	@Description	One review per user and item. A second attempt returns 409 with the existing review_id.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			itemId	path		string						true	"Item ID"	Format(uuid)
//	@Param			review	body		models.CreateReviewRequest	true	"Review"
//	@Success		201		{object}	models.Review				"Review created, possibly with warnings"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse		"Item not found"
//	@Failure		409		{object}	response.ErrorResponse		"Already reviewed"
//	@Security		BearerAuth
//	@Router			/item/{itemId}/review [post]
func (h *ReviewHandler) CreateReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		itemID, ok := utils.ParseID(w, r, "itemId")
		if !ok {
			return
		}

		var req models.CreateReviewRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid review input")
			return
		}

		result, err := h.reviewService.CreateReview(r.Context(), claims.UserID, itemID, &req)
		if err != nil {
			logger.Warn("Failed to create review", slog.String("itemId", itemID.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Review created", slog.String("reviewId", result.Review.ID.String()))
		response.SuccessWithWarnings(w, http.StatusCreated, result.Review, result.Warnings)
	}
}

// UpdateReview godoc
//	@Summary		Edit the caller's review of an item
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			itemId	path		string						true	"Item ID"	Format(uuid)
//	@Param			review	body		models.UpdateReviewRequest	true	"Fields to change"
//	@Success		200		{object}	models.Review				"Review updated, possibly with warnings"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse		"Review not found"
//	@Security		BearerAuth
//	@Router			/item/{itemId}/review [put]
func (h *ReviewHandler) UpdateReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		itemID, ok := utils.ParseID(w, r, "itemId")
		if !ok {
			return
		}

		var req models.UpdateReviewRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid review update input")
			return
		}

		result, err := h.reviewService.UpdateReview(r.Context(), claims.UserID, itemID, &req)
		if err != nil {
			logger.Warn("Failed to update review", slog.String("itemId", itemID.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.SuccessWithWarnings(w, http.StatusOK, result.Review, result.Warnings)
	}
}

// DeleteReview godoc
//	@Summary		Delete the caller's review of an item
//	@Tags			Reviews
//	@Produce		json
//	@Param			itemId	path		string					true	"Item ID"	Format(uuid)
//	@Success		200		{object}	response.APIResponse	"Review deleted, possibly with warnings"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse	"Review not found"
//	@Security		BearerAuth
//	@Router			/item/{itemId}/review [delete]
func (h *ReviewHandler) DeleteReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		itemID, ok := utils.ParseID(w, r, "itemId")
		if !ok {
			return
		}

		warnings, err := h.reviewService.DeleteReview(r.Context(), claims.UserID, itemID)
		if err != nil {
			logger.Warn("Failed to delete review", slog.String("itemId", itemID.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.SuccessWithWarnings(w, http.StatusOK, map[string]string{"itemId": itemID.String()}, warnings)
	}
}

// RefreshRating godoc
//	@Summary		Recompute an item's rating
//	@Tags			Reviews
//	@Produce		json
//	@Param			itemId	path		string					true	"Item ID"	Format(uuid)
//	@Success		200		{object}	models.RatingSummary	"Fresh rating"
//	@Failure		404		{object}	response.ErrorResponse	"Item not found"
//	@Failure		500		{object}	response.ErrorResponse	"Rating could not be updated"
//	@Router			/item/{itemId}/update-rating [put]
func (h *ReviewHandler) RefreshRating() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		itemID, ok := utils.ParseID(w, r, "itemId")
		if !ok {
			return
		}

		summary, err := h.reviewService.RefreshRating(r.Context(), itemID)
		if err != nil {
			logger.Error("Failed to refresh rating", slog.String("itemId", itemID.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, summary)
	}
}
