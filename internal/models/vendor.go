package models

import (
	"time"

	"github.com/google/uuid"
)

type Vendor struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateVendorRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

type UpdateVendorRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

type Storefront struct {
	Vendor *Vendor `json:"vendor"`
	Items  []*Item `json:"items"`
}
