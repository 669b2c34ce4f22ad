package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type VendorRepository struct {
	mock.Mock
}

func (m *VendorRepository) CreateVendor(ctx context.Context, vendor *models.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *VendorRepository) GetVendorByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.Vendor)
	return r0, args.Error(1)
}

func (m *VendorRepository) GetVendorByUserID(ctx context.Context, userID uuid.UUID) (*models.Vendor, error) {
	args := m.Called(ctx, userID)
	r0, _ := args.Get(0).(*models.Vendor)
	return r0, args.Error(1)
}

func (m *VendorRepository) GetVendorByName(ctx context.Context, name string) (*models.Vendor, error) {
	args := m.Called(ctx, name)
	r0, _ := args.Get(0).(*models.Vendor)
	return r0, args.Error(1)
}

func (m *VendorRepository) ListVendors(ctx context.Context, page int, pageSize int) ([]*models.Vendor, int, error) {
	args := m.Called(ctx, page, pageSize)
	r0, _ := args.Get(0).([]*models.Vendor)
	return r0, args.Int(1), args.Error(2)
}

func (m *VendorRepository) UpdateVendor(ctx context.Context, vendor *models.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *VendorRepository) DeleteVendorCascade(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
