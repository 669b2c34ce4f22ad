package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinStars = 1
	MaxStars = 5
)

type Review struct {
	ID        uuid.UUID `json:"id"`
	ItemID    uuid.UUID `json:"itemId"`
	UserID    uuid.UUID `json:"userId"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateReviewRequest struct {
	Title  string `json:"title" validate:"required,min=1,max=200"`
	Text   string `json:"text" validate:"required,min=1,max=5000"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
}

type UpdateReviewRequest struct {
	Title  *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Text   *string `json:"text,omitempty" validate:"omitempty,min=1,max=5000"`
	Rating *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
}

func (r *UpdateReviewRequest) Empty() bool {
	return r.Title == nil && r.Text == nil && r.Rating == nil
}

type ReviewResult struct {
	Review   *Review  `json:"review"`
	Warnings []string `json:"-"`
}

// RatingSummary is what the aggregator writes back onto an item.
type RatingSummary struct {
	ItemID      uuid.UUID `json:"itemId"`
	Rating      *float64  `json:"rating"`
	ReviewCount int       `json:"reviewCount"`
	Category    string    `json:"-"`
}
