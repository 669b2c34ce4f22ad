package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type VendorService struct {
	mock.Mock
}

func (m *VendorService) CreateVendor(ctx context.Context, userID uuid.UUID, req *models.CreateVendorRequest) (*models.Vendor, bool, error) {
	args := m.Called(ctx, userID, req)
	r0, _ := args.Get(0).(*models.Vendor)
	return r0, args.Bool(1), args.Error(2)
}

func (m *VendorService) GetVendorByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.Vendor)
	return r0, args.Error(1)
}

func (m *VendorService) GetVendorByName(ctx context.Context, name string) (*models.Vendor, error) {
	args := m.Called(ctx, name)
	r0, _ := args.Get(0).(*models.Vendor)
	return r0, args.Error(1)
}

func (m *VendorService) ListVendors(ctx context.Context, page int, pageSize int) (*models.PaginatedResponse, error) {
	args := m.Called(ctx, page, pageSize)
	r0, _ := args.Get(0).(*models.PaginatedResponse)
	return r0, args.Error(1)
}

func (m *VendorService) GetStorefront(ctx context.Context, id uuid.UUID) (*models.Storefront, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.Storefront)
	return r0, args.Error(1)
}

func (m *VendorService) UpdateVendor(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *models.UpdateVendorRequest) (*models.Vendor, error) {
	args := m.Called(ctx, userID, id, req)
	r0, _ := args.Get(0).(*models.Vendor)
	return r0, args.Error(1)
}

func (m *VendorService) DeleteVendor(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
