package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/vendor-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	repository "github.com/aaravmahajanofficial/vendor-marketplace/internal/repositories"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/utils"
	"github.com/google/uuid"
)

const ratingRefreshWarning = "review saved but item rating could not be refreshed"

type ReviewService interface {
	ListReviews(ctx context.Context, itemID uuid.UUID) ([]*models.Review, error)
	CreateReview(ctx context.Context, userID, itemID uuid.UUID, req *models.CreateReviewRequest) (*models.ReviewResult, error)
	UpdateReview(ctx context.Context, userID, itemID uuid.UUID, req *models.UpdateReviewRequest) (*models.ReviewResult, error)
	DeleteReview(ctx context.Context, userID, itemID uuid.UUID) ([]string, error)
	RefreshRating(ctx context.Context, itemID uuid.UUID) (*models.RatingSummary, error)
}

type reviewService struct {
	repo     repository.ReviewRepository
	itemRepo repository.ItemRepository
	ratings  RatingService
}

func NewReviewService(repo repository.ReviewRepository, itemRepo repository.ItemRepository, ratings RatingService) ReviewService {
	return &reviewService{repo: repo, itemRepo: itemRepo, ratings: ratings}
}

func (s *reviewService) ListReviews(ctx context.Context, itemID uuid.UUID) ([]*models.Review, error) {

	if err := s.requireItem(ctx, itemID); err != nil {
		return nil, err
	}

	reviews, err := s.repo.ListReviewsByItem(ctx, itemID)
	if err != nil {
		return nil, appErrors.FromStore(err, "Failed to list reviews")
	}

	return reviews, nil
}

// CreateReview allows one review per user and item. A second attempt reports
// the id of the review that already exists.
func (s *reviewService) CreateReview(ctx context.Context, userID, itemID uuid.UUID, req *models.CreateReviewRequest) (*models.ReviewResult, error) {

	if err := s.requireItem(ctx, itemID); err != nil {
		return nil, err
	}

	review := &models.Review{
		ItemID: itemID,
		UserID: userID,
		Title:  utils.SanitizeText(req.Title),
		Text:   utils.SanitizeText(req.Text),
		Rating: req.Rating,
	}

	if err := s.repo.CreateReview(ctx, review); err != nil {
		if !appErrors.IsUniqueViolation(err) {
			return nil, appErrors.FromStore(err, "Failed to create review")
		}

		existing, lookupErr := s.repo.GetReview(ctx, itemID, userID)
		if lookupErr != nil {
			return nil, appErrors.ConflictError("Review already exists").WithError(err)
		}
		return nil, appErrors.DuplicateReviewError(existing.ID).WithError(err)
	}

	return &models.ReviewResult{Review: review, Warnings: s.refresh(ctx, itemID)}, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, userID, itemID uuid.UUID, req *models.UpdateReviewRequest) (*models.ReviewResult, error) {

	if req.Empty() {
		return nil, appErrors.BadRequestError("At least one of title, text or rating is required")
	}

	review, err := s.repo.GetReview(ctx, itemID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Review not found").WithError(err)
		}
		return nil, appErrors.FromStore(err, "Failed to fetch review")
	}

	if req.Title != nil {
		review.Title = utils.SanitizeText(*req.Title)
	}
	if req.Text != nil {
		review.Text = utils.SanitizeText(*req.Text)
	}
	if req.Rating != nil {
		review.Rating = *req.Rating
	}

	if err := s.repo.UpdateReview(ctx, review); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Review not found").WithError(err)
		}
		return nil, appErrors.FromStore(err, "Failed to update review")
	}

	return &models.ReviewResult{Review: review, Warnings: s.refresh(ctx, itemID)}, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, userID, itemID uuid.UUID) ([]string, error) {

	if err := s.repo.DeleteReview(ctx, itemID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Review not found").WithError(err)
		}
		return nil, appErrors.FromStore(err, "Failed to delete review")
	}

	return s.refresh(ctx, itemID), nil
}

// RefreshRating is the explicit recompute; here failure is the result.
func (s *reviewService) RefreshRating(ctx context.Context, itemID uuid.UUID) (*models.RatingSummary, error) {

	summary, err := s.ratings.Recompute(ctx, itemID)
	if err != nil {
		if appErr, ok := appErrors.IsAppError(err); ok && appErr.Code == appErrors.ErrCodeNotFound {
			return nil, appErr
		}
		return nil, appErrors.InternalError("Failed to update item rating").WithError(err)
	}

	return summary, nil
}

// refresh recomputes the item rating as a secondary effect. Failures become
// warnings on the primary response.
func (s *reviewService) refresh(ctx context.Context, itemID uuid.UUID) []string {

	if _, err := s.ratings.Recompute(ctx, itemID); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Rating refresh failed", "itemId", itemID.String(), "error", err.Error())
		return []string{ratingRefreshWarning}
	}

	return nil
}

func (s *reviewService) requireItem(ctx context.Context, itemID uuid.UUID) error {

	if _, err := s.itemRepo.GetItemByID(ctx, itemID); err != nil {
		return itemLookupError(err)
	}

	return nil
}
