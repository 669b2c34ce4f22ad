package models

import (
	"time"

	"github.com/google/uuid"
)

type CartItem struct {
	ItemID   uuid.UUID `json:"itemId"`
	Quantity int       `json:"quantity"`
}

// Version guards read-modify-write cycles against concurrent mutation.
type Cart struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"userId"`
	Items     []CartItem `json:"items"`
	Version   int        `json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ExpandedItemIDs lists every line's item id once per unit of quantity.
func (c *Cart) ExpandedItemIDs() []uuid.UUID {
	var ids []uuid.UUID

	for _, line := range c.Items {
		for range line.Quantity {
			ids = append(ids, line.ItemID)
		}
	}

	return ids
}

type CartItemRequest struct {
	ItemID uuid.UUID `json:"itemId" validate:"required"`
}
