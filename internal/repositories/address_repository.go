package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/utils"
	"github.com/google/uuid"
)

type AddressRepository interface {
	CreateAddress(ctx context.Context, address *models.Address) error
	GetAddressByID(ctx context.Context, id uuid.UUID) (*models.Address, error)
	ListAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*models.Address, error)
	UpdateAddress(ctx context.Context, address *models.Address) error
	DeleteAddress(ctx context.Context, id, userID uuid.UUID) error
}

type addressRepository struct {
	DB *sql.DB
}

func NewAddressRepo(db *sql.DB) AddressRepository {
	return &addressRepository{DB: db}
}

const addressColumns = `id, user_id, name, address_line_one, address_line_two, city, postcode, country`

func (r *addressRepository) CreateAddress(ctx context.Context, a *models.Address) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO addresses (user_id, name, address_line_one, address_line_two, city, postcode, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	return r.DB.QueryRowContext(dbCtx, query, a.UserID, a.Name, a.AddressLineOne, a.AddressLineTwo, a.City, a.Postcode, a.Country).
		Scan(&a.ID)
}

func (r *addressRepository) GetAddressByID(ctx context.Context, id uuid.UUID) (*models.Address, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return scanAddress(r.DB.QueryRowContext(dbCtx, `SELECT `+addressColumns+` FROM addresses WHERE id = $1`, id))
}

func (r *addressRepository) ListAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*models.Address, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `SELECT `+addressColumns+` FROM addresses WHERE user_id = $1 ORDER BY name`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	defer rows.Close()

	addresses := []*models.Address{}

	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan address: %w", err)
		}
		addresses = append(addresses, a)
	}

	return addresses, rows.Err()
}

func (r *addressRepository) UpdateAddress(ctx context.Context, a *models.Address) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE addresses
		SET name = $1, address_line_one = $2, address_line_two = $3, city = $4, postcode = $5, country = $6
		WHERE id = $7 AND user_id = $8`

	res, err := r.DB.ExecContext(dbCtx, query, a.Name, a.AddressLineOne, a.AddressLineTwo, a.City, a.Postcode, a.Country, a.ID, a.UserID)
	if err != nil {
		return fmt.Errorf("failed to update address: %w", err)
	}

	return expectAffected(res)
}

func (r *addressRepository) DeleteAddress(ctx context.Context, id, userID uuid.UUID) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	res, err := r.DB.ExecContext(dbCtx, `DELETE FROM addresses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}

	return expectAffected(res)
}

func scanAddress(row rowScanner) (*models.Address, error) {
	a := &models.Address{}

	if err := row.Scan(&a.ID, &a.UserID, &a.Name, &a.AddressLineOne, &a.AddressLineTwo, &a.City, &a.Postcode, &a.Country); err != nil {
		return nil, err
	}

	return a, nil
}
