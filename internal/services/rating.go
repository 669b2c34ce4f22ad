package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/api/middleware"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/cache"
	appErrors "github.com/aaravmahajanofficial/vendor-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/metrics"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	repository "github.com/aaravmahajanofficial/vendor-marketplace/internal/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const ratingPrecision = 4

type RatingService interface {
	Recompute(ctx context.Context, itemID uuid.UUID) (*models.RatingSummary, error)
}

type ratingService struct {
	itemRepo   repository.ItemRepository
	reviewRepo repository.ReviewRepository
	cache      cache.Cache
}

func NewRatingService(itemRepo repository.ItemRepository, reviewRepo repository.ReviewRepository, cache cache.Cache) RatingService {
	return &ratingService{itemRepo: itemRepo, reviewRepo: reviewRepo, cache: cache}
}

// ComputeRating buckets star values 1..5 and returns their weighted mean
// rounded half-up to four places. Values outside the range are ignored.
// A nil rating means the item is unrated.
func ComputeRating(stars []int) (*float64, int) {

	var buckets [models.MaxStars + 1]int64
	for _, s := range stars {
		if s < models.MinStars || s > models.MaxStars {
			continue
		}
		buckets[s]++
	}

	sum := decimal.Zero
	var count int64
	for star := models.MinStars; star <= models.MaxStars; star++ {
		sum = sum.Add(decimal.NewFromInt(int64(star) * buckets[star]))
		count += buckets[star]
	}

	if count == 0 {
		return nil, 0
	}

	rating, _ := sum.Div(decimal.NewFromInt(count)).Round(ratingPrecision).Float64()

	return &rating, int(count)
}

// Recompute reloads every review of the item and writes the aggregate back.
func (s *ratingService) Recompute(ctx context.Context, itemID uuid.UUID) (*models.RatingSummary, error) {

	stars, err := s.reviewRepo.GetRatings(ctx, itemID)
	if err != nil {
		metrics.RecordRatingRecompute(false)
		return nil, appErrors.FromStore(err, "Failed to load ratings")
	}

	rating, count := ComputeRating(stars)
	summary := &models.RatingSummary{ItemID: itemID, Rating: rating, ReviewCount: count}

	if err := s.itemRepo.UpdateRating(ctx, summary); err != nil {
		metrics.RecordRatingRecompute(false)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Item not found").WithError(err)
		}
		return nil, appErrors.FromStore(err, "Failed to update rating")
	}

	metrics.RecordRatingRecompute(true)

	keys := []string{cache.Key(cache.ItemKeyPrefix, itemID.String()), cache.ItemFirstPageKey("")}
	if summary.Category != "" {
		keys = append(keys, cache.ItemFirstPageKey(summary.Category))
	}

	if err := s.cache.Delete(ctx, keys...); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to invalidate item cache", "itemId", itemID.String(), "error", err.Error())
	}

	return summary, nil
}
