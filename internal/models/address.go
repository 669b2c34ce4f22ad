package models

import "github.com/google/uuid"

type Address struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"userId"`
	Name           string    `json:"name"`
	AddressLineOne string    `json:"addressLineOne"`
	AddressLineTwo string    `json:"addressLineTwo"`
	City           string    `json:"city"`
	Postcode       string    `json:"postcode"`
	Country        string    `json:"country"`
}

type CreateAddressRequest struct {
	Name           string `json:"name" validate:"required,max=200"`
	AddressLineOne string `json:"addressLineOne" validate:"required,max=200"`
	AddressLineTwo string `json:"addressLineTwo" validate:"required,max=200"`
	City           string `json:"city" validate:"required,max=100"`
	Postcode       string `json:"postcode" validate:"required,max=20"`
	Country        string `json:"country" validate:"required,max=100"`
}

type UpdateAddressRequest struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	AddressLineOne *string `json:"addressLineOne,omitempty" validate:"omitempty,min=1,max=200"`
	AddressLineTwo *string `json:"addressLineTwo,omitempty" validate:"omitempty,min=1,max=200"`
	City           *string `json:"city,omitempty" validate:"omitempty,min=1,max=100"`
	Postcode       *string `json:"postcode,omitempty" validate:"omitempty,min=1,max=20"`
	Country        *string `json:"country,omitempty" validate:"omitempty,min=1,max=100"`
}

func (r *UpdateAddressRequest) Empty() bool {
	return r.Name == nil && r.AddressLineOne == nil && r.AddressLineTwo == nil &&
		r.City == nil && r.Postcode == nil && r.Country == nil
}
