package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// Payment is a card kept on file. CardNumber is never serialized in full.
type Payment struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	CardNumber string    `json:"-"`
	NameOnCard string    `json:"nameOnCard"`
	ExpiryDate string    `json:"expiryDate"`
}

func (p Payment) MaskedCardNumber() string {
	n := len(p.CardNumber)
	if n <= 4 {
		return strings.Repeat("*", n)
	}

	return "**** **** **** " + p.CardNumber[n-4:]
}

func (p Payment) MarshalJSON() ([]byte, error) {
	type alias Payment

	return json.Marshal(struct {
		alias
		CardNumber string `json:"cardNumber"`
	}{
		alias:      alias(p),
		CardNumber: p.MaskedCardNumber(),
	})
}

type CreatePaymentRequest struct {
	CardNumber string `json:"cardNumber" validate:"required,numeric,min=12,max=19"`
	NameOnCard string `json:"nameOnCard" validate:"required,max=200"`
	ExpiryDate string `json:"expiryDate" validate:"required,expiry"`
}

type UpdatePaymentRequest struct {
	CardNumber *string `json:"cardNumber,omitempty" validate:"omitempty,numeric,min=12,max=19"`
	NameOnCard *string `json:"nameOnCard,omitempty" validate:"omitempty,min=1,max=200"`
	ExpiryDate *string `json:"expiryDate,omitempty" validate:"omitempty,expiry"`
}

func (r *UpdatePaymentRequest) Empty() bool {
	return r.CardNumber == nil && r.NameOnCard == nil && r.ExpiryDate == nil
}
