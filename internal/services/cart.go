package service

import (
	"context"
	"database/sql"
	"errors"
	"slices"

	appErrors "github.com/aaravmahajanofficial/vendor-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/metrics"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	repository "github.com/aaravmahajanofficial/vendor-marketplace/internal/repositories"
	"github.com/google/uuid"
)

// Number of read-modify-write attempts before a contended cart gives up.
const maxCartAttempts = 3

type CartService interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	AddItem(ctx context.Context, userID uuid.UUID, req *models.CartItemRequest) (*models.Cart, error)
	RemoveItem(ctx context.Context, userID uuid.UUID, req *models.CartItemRequest) (*models.Cart, error)
}

type cartService struct {
	repo     repository.CartRepository
	itemRepo repository.ItemRepository
}

func NewCartService(repo repository.CartRepository, itemRepo repository.ItemRepository) CartService {
	return &cartService{repo: repo, itemRepo: itemRepo}
}

// GetCart returns the user's cart, creating an empty one on first use.
func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {

	cart, err := s.repo.GetCart(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.FromStore(err, "Failed to fetch cart")
	}

	cart = &models.Cart{UserID: userID, Items: []models.CartItem{}}

	err = s.repo.CreateCart(ctx, cart)
	if errors.Is(err, repository.ErrVersionConflict) {
		// created concurrently; read the winner
		cart, err = s.repo.GetCart(ctx, userID)
	}
	if err != nil {
		return nil, appErrors.FromStore(err, "Failed to create cart")
	}

	return cart, nil
}

// AddItem puts one more unit of the item in the cart.
func (s *cartService) AddItem(ctx context.Context, userID uuid.UUID, req *models.CartItemRequest) (*models.Cart, error) {

	if _, err := s.itemRepo.GetItemByID(ctx, req.ItemID); err != nil {
		return nil, itemLookupError(err)
	}

	return s.mutate(ctx, userID, func(cart *models.Cart) error {
		for i := range cart.Items {
			if cart.Items[i].ItemID == req.ItemID {
				cart.Items[i].Quantity++
				return nil
			}
		}

		cart.Items = append(cart.Items, models.CartItem{ItemID: req.ItemID, Quantity: 1})
		return nil
	})
}

// RemoveItem takes one unit of the item out, dropping the line at zero.
func (s *cartService) RemoveItem(ctx context.Context, userID uuid.UUID, req *models.CartItemRequest) (*models.Cart, error) {

	return s.mutate(ctx, userID, func(cart *models.Cart) error {
		if cart.IsEmpty() {
			return appErrors.NotFoundError("No items in cart")
		}

		idx := slices.IndexFunc(cart.Items, func(line models.CartItem) bool {
			return line.ItemID == req.ItemID
		})
		if idx < 0 {
			return appErrors.NotFoundError("Item not in cart")
		}

		if cart.Items[idx].Quantity > 1 {
			cart.Items[idx].Quantity--
			return nil
		}

		cart.Items = slices.Delete(cart.Items, idx, idx+1)
		return nil
	})
}

// mutate runs read, apply, conditional write. A write that loses to a
// concurrent one is retried from a fresh read.
func (s *cartService) mutate(ctx context.Context, userID uuid.UUID, apply func(*models.Cart) error) (*models.Cart, error) {

	for range maxCartAttempts {

		cart, err := s.repo.GetCart(ctx, userID)
		exists := err == nil

		switch {
		case errors.Is(err, sql.ErrNoRows):
			cart = &models.Cart{UserID: userID, Items: []models.CartItem{}}
		case err != nil:
			return nil, appErrors.FromStore(err, "Failed to fetch cart")
		}

		if err := apply(cart); err != nil {
			return nil, err
		}

		if exists {
			err = s.repo.UpdateCartItems(ctx, cart)
		} else {
			err = s.repo.CreateCart(ctx, cart)
		}

		if err == nil {
			return cart, nil
		}

		if !errors.Is(err, repository.ErrVersionConflict) {
			return nil, appErrors.FromStore(err, "Failed to update cart")
		}

		metrics.RecordCartConflict()
	}

	return nil, appErrors.ConflictError("Cart was modified concurrently, please retry")
}
