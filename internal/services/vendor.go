package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/api/middleware"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/cache"
	appErrors "github.com/aaravmahajanofficial/vendor-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	repository "github.com/aaravmahajanofficial/vendor-marketplace/internal/repositories"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/utils"
	"github.com/google/uuid"
)

type VendorService interface {
	// CreateVendor is find-or-create on the user; created reports whether a
	// new vendor row was written.
	CreateVendor(ctx context.Context, userID uuid.UUID, req *models.CreateVendorRequest) (vendor *models.Vendor, created bool, err error)
	GetVendorByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error)
	GetVendorByName(ctx context.Context, name string) (*models.Vendor, error)
	ListVendors(ctx context.Context, page, pageSize int) (*models.PaginatedResponse, error)
	GetStorefront(ctx context.Context, id uuid.UUID) (*models.Storefront, error)
	UpdateVendor(ctx context.Context, userID, id uuid.UUID, req *models.UpdateVendorRequest) (*models.Vendor, error)
	DeleteVendor(ctx context.Context, userID uuid.UUID) error
}

type vendorService struct {
	repo     repository.VendorRepository
	itemRepo repository.ItemRepository
	cache    cache.Cache
}

func NewVendorService(repo repository.VendorRepository, itemRepo repository.ItemRepository, cache cache.Cache) VendorService {
	return &vendorService{repo: repo, itemRepo: itemRepo, cache: cache}
}

func (s *vendorService) CreateVendor(ctx context.Context, userID uuid.UUID, req *models.CreateVendorRequest) (*models.Vendor, bool, error) {

	existing, err := s.repo.GetVendorByUserID(ctx, userID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, appErrors.FromStore(err, "Failed to look up vendor")
	}

	vendor := &models.Vendor{UserID: userID, Name: utils.SanitizeText(req.Name)}

	if err := s.repo.CreateVendor(ctx, vendor); err != nil {
		if !appErrors.IsUniqueViolation(err) {
			return nil, false, appErrors.FromStore(err, "Failed to create vendor")
		}

		// lost a race with a concurrent create for the same user
		existing, lookupErr := s.repo.GetVendorByUserID(ctx, userID)
		if lookupErr != nil {
			return nil, false, appErrors.ConflictError("Vendor already exists").WithError(err)
		}
		return existing, false, nil
	}

	return vendor, true, nil
}

func (s *vendorService) GetVendorByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {

	vendor, err := s.repo.GetVendorByID(ctx, id)
	if err != nil {
		return nil, vendorLookupError(err)
	}

	return vendor, nil
}

func (s *vendorService) GetVendorByName(ctx context.Context, name string) (*models.Vendor, error) {

	vendor, err := s.repo.GetVendorByName(ctx, name)
	if err != nil {
		return nil, vendorLookupError(err)
	}

	return vendor, nil
}

func (s *vendorService) ListVendors(ctx context.Context, page, pageSize int) (*models.PaginatedResponse, error) {

	vendors, total, err := s.repo.ListVendors(ctx, page, pageSize)
	if err != nil {
		return nil, appErrors.FromStore(err, "Failed to list vendors")
	}

	return &models.PaginatedResponse{Data: vendors, Total: total, Page: page, PageSize: pageSize}, nil
}

func (s *vendorService) GetStorefront(ctx context.Context, id uuid.UUID) (*models.Storefront, error) {

	vendor, err := s.GetVendorByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.ListItemsByVendor(ctx, id)
	if err != nil {
		return nil, appErrors.FromStore(err, "Failed to load storefront items")
	}

	return &models.Storefront{Vendor: vendor, Items: items}, nil
}

func (s *vendorService) UpdateVendor(ctx context.Context, userID, id uuid.UUID, req *models.UpdateVendorRequest) (*models.Vendor, error) {

	vendor, err := s.GetVendorByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if vendor.UserID != userID {
		return nil, appErrors.ForbiddenError("You can only update your own vendor")
	}

	vendor.Name = utils.SanitizeText(req.Name)

	if err := s.repo.UpdateVendor(ctx, vendor); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Vendor not found").WithError(err)
		}
		return nil, appErrors.FromStore(err, "Failed to update vendor")
	}

	return vendor, nil
}

// DeleteVendor removes the caller's vendor together with its items and the
// reviews on them.
func (s *vendorService) DeleteVendor(ctx context.Context, userID uuid.UUID) error {

	logger := middleware.LoggerFromContext(ctx)

	vendor, err := s.repo.GetVendorByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("User is not a vendor").WithError(err)
		}
		return appErrors.FromStore(err, "Failed to look up vendor")
	}

	items, err := s.itemRepo.ListItemsByVendor(ctx, vendor.ID)
	if err != nil {
		return appErrors.FromStore(err, "Failed to load vendor items")
	}

	if err := s.repo.DeleteVendorCascade(ctx, vendor.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Vendor not found").WithError(err)
		}
		return appErrors.FromStore(err, "Failed to delete vendor")
	}

	if keys := itemCacheKeys(items...); len(keys) > 0 {
		if err := s.cache.Delete(ctx, keys...); err != nil {
			logger.Warn("Failed to invalidate cache for vendor items", "vendorId", vendor.ID.String(), "error", err.Error())
		}
	}

	return nil
}

func vendorLookupError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.NotFoundError("Vendor not found").WithError(err)
	}
	return appErrors.FromStore(err, "Failed to fetch vendor")
}
