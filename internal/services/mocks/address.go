package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type AddressService struct {
	mock.Mock
}

func (m *AddressService) CreateAddress(ctx context.Context, userID uuid.UUID, req *models.CreateAddressRequest) (*models.Address, error) {
	args := m.Called(ctx, userID, req)
	r0, _ := args.Get(0).(*models.Address)
	return r0, args.Error(1)
}

func (m *AddressService) GetAddress(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*models.Address, error) {
	args := m.Called(ctx, userID, id)
	r0, _ := args.Get(0).(*models.Address)
	return r0, args.Error(1)
}

func (m *AddressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*models.Address, error) {
	args := m.Called(ctx, userID)
	r0, _ := args.Get(0).([]*models.Address)
	return r0, args.Error(1)
}

func (m *AddressService) UpdateAddress(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *models.UpdateAddressRequest) (*models.Address, error) {
	args := m.Called(ctx, userID, id, req)
	r0, _ := args.Get(0).(*models.Address)
	return r0, args.Error(1)
}

func (m *AddressService) DeleteAddress(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
