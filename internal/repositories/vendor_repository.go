package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/utils"
	"github.com/google/uuid"
)

type VendorRepository interface {
	CreateVendor(ctx context.Context, vendor *models.Vendor) error
	GetVendorByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error)
	GetVendorByUserID(ctx context.Context, userID uuid.UUID) (*models.Vendor, error)
	GetVendorByName(ctx context.Context, name string) (*models.Vendor, error)
	ListVendors(ctx context.Context, page, pageSize int) ([]*models.Vendor, int, error)
	UpdateVendor(ctx context.Context, vendor *models.Vendor) error
	DeleteVendorCascade(ctx context.Context, id uuid.UUID) error
}

type vendorRepository struct {
	DB *sql.DB
}

func NewVendorRepo(db *sql.DB) VendorRepository {
	return &vendorRepository{DB: db}
}

const vendorColumns = `id, user_id, name, created_at, updated_at`

func (r *vendorRepository) CreateVendor(ctx context.Context, vendor *models.Vendor) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO vendors (user_id, name, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query, vendor.UserID, vendor.Name).Scan(&vendor.ID, &vendor.CreatedAt, &vendor.UpdatedAt)
}

func (r *vendorRepository) GetVendorByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return scanVendor(r.DB.QueryRowContext(dbCtx, `SELECT `+vendorColumns+` FROM vendors WHERE id = $1`, id))
}

func (r *vendorRepository) GetVendorByUserID(ctx context.Context, userID uuid.UUID) (*models.Vendor, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return scanVendor(r.DB.QueryRowContext(dbCtx, `SELECT `+vendorColumns+` FROM vendors WHERE user_id = $1`, userID))
}

func (r *vendorRepository) GetVendorByName(ctx context.Context, name string) (*models.Vendor, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return scanVendor(r.DB.QueryRowContext(dbCtx, `SELECT `+vendorColumns+` FROM vendors WHERE name = $1 LIMIT 1`, name))
}

func (r *vendorRepository) ListVendors(ctx context.Context, page, pageSize int) ([]*models.Vendor, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM vendors`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count vendors: %w", err)
	}

	rows, err := r.DB.QueryContext(dbCtx,
		`SELECT `+vendorColumns+` FROM vendors ORDER BY name LIMIT $1 OFFSET $2`,
		pageSize, models.Offset(page, pageSize))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list vendors: %w", err)
	}
	defer rows.Close()

	vendors := make([]*models.Vendor, 0, pageSize)

	for rows.Next() {
		vendor, err := scanVendor(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan vendor: %w", err)
		}
		vendors = append(vendors, vendor)
	}

	return vendors, total, rows.Err()
}

func (r *vendorRepository) UpdateVendor(ctx context.Context, vendor *models.Vendor) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return r.DB.QueryRowContext(dbCtx,
		`UPDATE vendors SET name = $1, updated_at = NOW() WHERE id = $2 RETURNING updated_at`,
		vendor.Name, vendor.ID,
	).Scan(&vendor.UpdatedAt)
}

func (r *vendorRepository) DeleteVendorCascade(ctx context.Context, id uuid.UUID) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return withTx(dbCtx, r.DB, func(tx *sql.Tx) error {
		return deleteVendorTx(dbCtx, tx, id)
	})
}

// deleteVendorTx removes reviews of the vendor's items, the items, then the vendor.
func deleteVendorTx(ctx context.Context, tx *sql.Tx, vendorID uuid.UUID) error {

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM reviews WHERE item_id IN (SELECT id FROM items WHERE vendor_id = $1)`, vendorID); err != nil {
		return fmt.Errorf("failed to delete vendor item reviews: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE vendor_id = $1`, vendorID); err != nil {
		return fmt.Errorf("failed to delete vendor items: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM vendors WHERE id = $1`, vendorID)
	if err != nil {
		return fmt.Errorf("failed to delete vendor: %w", err)
	}

	return expectAffected(res)
}

func scanVendor(row rowScanner) (*models.Vendor, error) {
	vendor := &models.Vendor{}

	if err := row.Scan(&vendor.ID, &vendor.UserID, &vendor.Name, &vendor.CreatedAt, &vendor.UpdatedAt); err != nil {
		return nil, err
	}

	return vendor, nil
}
