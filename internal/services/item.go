package service

import (
	"context"
	"database/sql"
	"errors"
	"slices"
	"time"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/api/middleware"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/cache"
	appErrors "github.com/aaravmahajanofficial/vendor-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/metrics"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	repository "github.com/aaravmahajanofficial/vendor-marketplace/internal/repositories"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/utils"
	"github.com/google/uuid"
)

type ItemService interface {
	CreateItem(ctx context.Context, userID uuid.UUID, req *models.CreateItemRequest) (*models.Item, error)
	GetItemByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
	GetItemByName(ctx context.Context, name string) (*models.Item, error)
	ListItems(ctx context.Context, filter models.ItemFilter) (*models.PaginatedResponse, error)
	UpdateItem(ctx context.Context, userID, id uuid.UUID, req *models.UpdateItemRequest) (*models.Item, error)
	DeleteItem(ctx context.Context, userID, id uuid.UUID) error
}

type itemService struct {
	repo       repository.ItemRepository
	vendorRepo repository.VendorRepository
	cache      cache.Cache
	ttl        time.Duration
}

// cached form of a listing's first page
type itemPage struct {
	Items []*models.Item `json:"items"`
	Total int            `json:"total"`
}

func NewItemService(repo repository.ItemRepository, vendorRepo repository.VendorRepository, cache cache.Cache, ttl time.Duration) ItemService {
	return &itemService{repo: repo, vendorRepo: vendorRepo, cache: cache, ttl: ttl}
}

func (s *itemService) CreateItem(ctx context.Context, userID uuid.UUID, req *models.CreateItemRequest) (*models.Item, error) {

	vendor, err := s.callerVendor(ctx, userID)
	if err != nil {
		return nil, err
	}

	item := &models.Item{
		VendorID:    vendor.ID,
		Name:        utils.SanitizeText(req.Name),
		Price:       req.Price,
		Description: utils.SanitizeText(req.Description),
		Category:    utils.SanitizeText(req.Category),
		ImageURL:    req.ImageURL,
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, appErrors.FromStore(err, "Failed to create item")
	}

	s.invalidate(ctx, item)

	return item, nil
}

func (s *itemService) GetItemByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {

	logger := middleware.LoggerFromContext(ctx)
	key := cache.Key(cache.ItemKeyPrefix, id.String())

	var cached models.Item
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn("Item cache read failed", "key", key, "error", err.Error())
	}
	metrics.RecordCacheLookup(found)
	if found {
		return &cached, nil
	}

	item, err := s.repo.GetItemByID(ctx, id)
	if err != nil {
		return nil, itemLookupError(err)
	}

	if err := s.cache.Set(ctx, key, item, s.ttl); err != nil {
		logger.Warn("Item cache write failed", "key", key, "error", err.Error())
	}

	return item, nil
}

func (s *itemService) GetItemByName(ctx context.Context, name string) (*models.Item, error) {

	item, err := s.repo.GetItemByName(ctx, name)
	if err != nil {
		return nil, itemLookupError(err)
	}

	return item, nil
}

// ListItems serves the default first page of each category from cache.
func (s *itemService) ListItems(ctx context.Context, filter models.ItemFilter) (*models.PaginatedResponse, error) {

	logger := middleware.LoggerFromContext(ctx)

	cacheable := filter.Page == utils.DefaultPage && filter.PageSize == utils.DefaultPageSize
	key := cache.ItemFirstPageKey(filter.Category)

	if cacheable {
		var page itemPage
		found, err := s.cache.Get(ctx, key, &page)
		if err != nil {
			logger.Warn("Item listing cache read failed", "key", key, "error", err.Error())
		}
		metrics.RecordCacheLookup(found)
		if found {
			return &models.PaginatedResponse{Data: page.Items, Total: page.Total, Page: filter.Page, PageSize: filter.PageSize}, nil
		}
	}

	items, total, err := s.repo.ListItems(ctx, filter)
	if err != nil {
		return nil, appErrors.FromStore(err, "Failed to list items")
	}

	if cacheable {
		if err := s.cache.Set(ctx, key, itemPage{Items: items, Total: total}, s.ttl); err != nil {
			logger.Warn("Item listing cache write failed", "key", key, "error", err.Error())
		}
	}

	return &models.PaginatedResponse{Data: items, Total: total, Page: filter.Page, PageSize: filter.PageSize}, nil
}

func (s *itemService) UpdateItem(ctx context.Context, userID, id uuid.UUID, req *models.UpdateItemRequest) (*models.Item, error) {

	if req.Empty() {
		return nil, appErrors.BadRequestError("At least one of name, description, category, price or imageUrl is required")
	}

	item, err := s.ownedItem(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	previousCategory := item.Category

	if req.Name != nil {
		item.Name = utils.SanitizeText(*req.Name)
	}
	if req.Description != nil {
		item.Description = utils.SanitizeText(*req.Description)
	}
	if req.Category != nil {
		item.Category = utils.SanitizeText(*req.Category)
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Item not found").WithError(err)
		}
		return nil, appErrors.FromStore(err, "Failed to update item")
	}

	s.invalidate(ctx, item, previousCategory)

	return item, nil
}

func (s *itemService) DeleteItem(ctx context.Context, userID, id uuid.UUID) error {

	item, err := s.ownedItem(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteItemCascade(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Item not found").WithError(err)
		}
		return appErrors.FromStore(err, "Failed to delete item")
	}

	s.invalidate(ctx, item)

	return nil
}

func (s *itemService) callerVendor(ctx context.Context, userID uuid.UUID) (*models.Vendor, error) {

	vendor, err := s.vendorRepo.GetVendorByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ForbiddenError("Only vendors can manage items")
		}
		return nil, appErrors.FromStore(err, "Failed to look up vendor")
	}

	return vendor, nil
}

// ownedItem loads the item straight from the store and checks the caller's
// vendor owns it.
func (s *itemService) ownedItem(ctx context.Context, userID, id uuid.UUID) (*models.Item, error) {

	item, err := s.repo.GetItemByID(ctx, id)
	if err != nil {
		return nil, itemLookupError(err)
	}

	vendor, err := s.callerVendor(ctx, userID)
	if err != nil {
		return nil, err
	}

	if item.VendorID != vendor.ID {
		return nil, appErrors.ForbiddenError("You can only modify your own items")
	}

	return item, nil
}

func (s *itemService) invalidate(ctx context.Context, item *models.Item, extraCategories ...string) {

	keys := itemCacheKeys(item)
	for _, c := range extraCategories {
		if k := cache.ItemFirstPageKey(c); !slices.Contains(keys, k) {
			keys = append(keys, k)
		}
	}

	if err := s.cache.Delete(ctx, keys...); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to invalidate item cache", "itemId", item.ID.String(), "error", err.Error())
	}
}

// itemCacheKeys lists every cache entry that can hold one of the items.
func itemCacheKeys(items ...*models.Item) []string {

	if len(items) == 0 {
		return nil
	}

	seen := map[string]struct{}{}
	keys := []string{cache.ItemFirstPageKey("")}
	seen[keys[0]] = struct{}{}

	add := func(k string) {
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	for _, item := range items {
		add(cache.Key(cache.ItemKeyPrefix, item.ID.String()))
		add(cache.ItemFirstPageKey(item.Category))
	}

	return keys
}

func itemLookupError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.NotFoundError("Item not found").WithError(err)
	}
	return appErrors.FromStore(err, "Failed to fetch item")
}
