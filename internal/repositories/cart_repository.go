package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/utils"
	"github.com/google/uuid"
)

type CartRepository interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	CreateCart(ctx context.Context, cart *models.Cart) error
	UpdateCartItems(ctx context.Context, cart *models.Cart) error
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

func (r *cartRepository) GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, user_id, items, version, created_at, updated_at
		FROM carts
		WHERE user_id = $1`

	cart := &models.Cart{}

	var raw []byte

	err := r.DB.QueryRowContext(dbCtx, query, userID).
		Scan(&cart.ID, &cart.UserID, &raw, &cart.Version, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := decodeCartItems(raw, &cart.Items); err != nil {
		return nil, err
	}

	return cart, nil
}

// CreateCart inserts the user's cart. If another request created it first,
// ErrVersionConflict is returned so the caller can re-read.
func (r *cartRepository) CreateCart(ctx context.Context, cart *models.Cart) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	raw, err := encodeCartItems(cart.Items)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO carts (user_id, items, version, created_at, updated_at)
		VALUES ($1, $2, 1, NOW(), NOW())
		ON CONFLICT (user_id) DO NOTHING
		RETURNING id, version, created_at, updated_at`

	err = r.DB.QueryRowContext(dbCtx, query, cart.UserID, string(raw)).
		Scan(&cart.ID, &cart.Version, &cart.CreatedAt, &cart.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrVersionConflict
	}

	return err
}

// UpdateCartItems writes the cart's lines only if nobody else has written
// since it was read. On success cart.Version is advanced.
func (r *cartRepository) UpdateCartItems(ctx context.Context, cart *models.Cart) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	raw, err := encodeCartItems(cart.Items)
	if err != nil {
		return err
	}

	query := `
		UPDATE carts
		SET items = $1, version = version + 1, updated_at = NOW()
		WHERE user_id = $2 AND version = $3
		RETURNING version, updated_at`

	err = r.DB.QueryRowContext(dbCtx, query, string(raw), cart.UserID, cart.Version).Scan(&cart.Version, &cart.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrVersionConflict
	}

	return err
}

func encodeCartItems(items []models.CartItem) ([]byte, error) {
	if items == nil {
		items = []models.CartItem{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cart items: %w", err)
	}

	return raw, nil
}

func decodeCartItems(raw []byte, dest *[]models.CartItem) error {
	*dest = []models.CartItem{}

	if len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("failed to unmarshal cart items: %w", err)
	}

	return nil
}
