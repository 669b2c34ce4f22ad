package models

import (
	"time"

	"github.com/google/uuid"
)

// Price is in minor currency units. Rating is nil while the item has no reviews.
type Item struct {
	ID          uuid.UUID `json:"id"`
	VendorID    uuid.UUID `json:"vendorId"`
	Name        string    `json:"name"`
	Price       int64     `json:"price"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Rating      *float64  `json:"rating"`
	ReviewCount int       `json:"reviewCount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateItemRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Price       int64  `json:"price" validate:"required,gt=0"`
	Description string `json:"description" validate:"required,max=5000"`
	Category    string `json:"category" validate:"required,max=100"`
	ImageURL    string `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Price       *int64  `json:"price,omitempty" validate:"omitempty,gt=0"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Category    *string `json:"category,omitempty" validate:"omitempty,min=1,max=100"`
	ImageURL    *string `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

func (r *UpdateItemRequest) Empty() bool {
	return r.Name == nil && r.Price == nil && r.Description == nil && r.Category == nil && r.ImageURL == nil
}

type ItemFilter struct {
	Category string
	Page     int
	PageSize int
}
