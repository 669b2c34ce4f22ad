package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem is a snapshot of an item at purchase time; ItemID is not a live reference.
type OrderItem struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"orderId"`
	ItemID    uuid.UUID `json:"itemId"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unitPrice"`
	Quantity  int       `json:"quantity"`
	LineTotal int64     `json:"lineTotal"`
}

type Order struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"userId"`
	AddressID *uuid.UUID  `json:"addressId,omitempty"`
	PaymentID *uuid.UUID  `json:"paymentId,omitempty"`
	TotalCost int64       `json:"totalCost"`
	Items     []OrderItem `json:"items"`
	CreatedAt time.Time   `json:"created_at"`
}

type CheckoutRequest struct {
	AddressID uuid.UUID `json:"addressId" validate:"required"`
	PaymentID uuid.UUID `json:"paymentId" validate:"required"`
}

type CheckoutResult struct {
	Order    *Order   `json:"order"`
	Warnings []string `json:"-"`
}
