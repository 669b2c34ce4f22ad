package models_test

import (
	"encoding/json"
	"testing"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMarshalMasksCardNumber(t *testing.T) {
	p := models.Payment{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		CardNumber: "4242424242424242",
		NameOnCard: "A Buyer",
		ExpiryDate: "09/29",
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, "**** **** **** 4242", out["cardNumber"])
	assert.Equal(t, "A Buyer", out["nameOnCard"])
	assert.NotContains(t, string(data), "4242424242424242")
}

func TestCartExpandedItemIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	cart := &models.Cart{Items: []models.CartItem{{ItemID: a, Quantity: 2}, {ItemID: b, Quantity: 1}}}

	assert.Equal(t, []uuid.UUID{a, a, b}, cart.ExpandedItemIDs())
	assert.False(t, cart.IsEmpty())
	assert.True(t, (&models.Cart{Items: []models.CartItem{}}).IsEmpty())
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, models.Offset(1, 10))
	assert.Equal(t, 20, models.Offset(3, 10))
	assert.Equal(t, 0, models.Offset(0, 10))
}
