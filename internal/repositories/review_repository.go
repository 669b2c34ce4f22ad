package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/utils"
	"github.com/google/uuid"
)

type ReviewRepository interface {
	CreateReview(ctx context.Context, review *models.Review) error
	GetReview(ctx context.Context, itemID, userID uuid.UUID) (*models.Review, error)
	ListReviewsByItem(ctx context.Context, itemID uuid.UUID) ([]*models.Review, error)
	UpdateReview(ctx context.Context, review *models.Review) error
	DeleteReview(ctx context.Context, itemID, userID uuid.UUID) error
	GetRatings(ctx context.Context, itemID uuid.UUID) ([]int, error)
}

type reviewRepository struct {
	DB *sql.DB
}

func NewReviewRepo(db *sql.DB) ReviewRepository {
	return &reviewRepository{DB: db}
}

const reviewColumns = `id, item_id, user_id, title, text, rating, created_at, updated_at`

// CreateReview relies on UNIQUE(item_id, user_id); a second review by the same
// user surfaces as a unique violation.
func (r *reviewRepository) CreateReview(ctx context.Context, review *models.Review) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO reviews (item_id, user_id, title, text, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query, review.ItemID, review.UserID, review.Title, review.Text, review.Rating).
		Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
}

func (r *reviewRepository) GetReview(ctx context.Context, itemID, userID uuid.UUID) (*models.Review, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return scanReview(r.DB.QueryRowContext(dbCtx,
		`SELECT `+reviewColumns+` FROM reviews WHERE item_id = $1 AND user_id = $2`, itemID, userID))
}

func (r *reviewRepository) ListReviewsByItem(ctx context.Context, itemID uuid.UUID) ([]*models.Review, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx,
		`SELECT `+reviewColumns+` FROM reviews WHERE item_id = $1 ORDER BY created_at DESC`, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []*models.Review{}

	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	return reviews, rows.Err()
}

func (r *reviewRepository) UpdateReview(ctx context.Context, review *models.Review) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE reviews
		SET title = $1, text = $2, rating = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at`

	return r.DB.QueryRowContext(dbCtx, query, review.Title, review.Text, review.Rating, review.ID).Scan(&review.UpdatedAt)
}

func (r *reviewRepository) DeleteReview(ctx context.Context, itemID, userID uuid.UUID) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	res, err := r.DB.ExecContext(dbCtx, `DELETE FROM reviews WHERE item_id = $1 AND user_id = $2`, itemID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	return expectAffected(res)
}

func (r *reviewRepository) GetRatings(ctx context.Context, itemID uuid.UUID) ([]int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `SELECT rating FROM reviews WHERE item_id = $1`, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ratings: %w", err)
	}
	defer rows.Close()

	ratings := []int{}

	for rows.Next() {
		var star int
		if err := rows.Scan(&star); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings = append(ratings, star)
	}

	return ratings, rows.Err()
}

func scanReview(row rowScanner) (*models.Review, error) {
	review := &models.Review{}

	err := row.Scan(&review.ID, &review.ItemID, &review.UserID, &review.Title, &review.Text, &review.Rating,
		&review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return review, nil
}
