package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListUsers(ctx context.Context, page, pageSize int) ([]*models.User, int, error)
	UpdateUser(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	DeleteUserCascade(ctx context.Context, id uuid.UUID) (*models.UserCascade, error)
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepo(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO users (email, password, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query, user.Email, user.Password, user.FirstName, user.LastName).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, email, password, first_name, last_name, created_at, updated_at
		FROM users
		WHERE email = $1`

	return scanUser(r.DB.QueryRowContext(dbCtx, query, email))
}

func (r *userRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, email, password, first_name, last_name, created_at, updated_at
		FROM users
		WHERE id = $1`

	return scanUser(r.DB.QueryRowContext(dbCtx, query, id))
}

func (r *userRepository) ListUsers(ctx context.Context, page, pageSize int) ([]*models.User, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query := `
		SELECT id, email, password, first_name, last_name, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(dbCtx, query, pageSize, models.Offset(page, pageSize))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0, pageSize)

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	return users, total, rows.Err()
}

func (r *userRepository) UpdateUser(ctx context.Context, user *models.User) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE users
		SET email = $1, first_name = $2, last_name = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at`

	return r.DB.QueryRowContext(dbCtx, query, user.Email, user.FirstName, user.LastName, user.ID).Scan(&user.UpdatedAt)
}

func (r *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	res, err := r.DB.ExecContext(dbCtx, `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`, hash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return expectAffected(res)
}

// DeleteUserCascade removes the user and everything hanging off it in one
// transaction, in dependency order. The result names the items the user had
// reviewed and the storefront items that went with their vendor row.
func (r *userRepository) DeleteUserCascade(ctx context.Context, id uuid.UUID) (*models.UserCascade, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	cascade := &models.UserCascade{}

	err := withTx(dbCtx, r.DB, func(tx *sql.Tx) error {

		var ids pq.StringArray
		err := tx.QueryRowContext(dbCtx,
			`SELECT COALESCE(array_agg(DISTINCT item_id::text), '{}') FROM reviews WHERE user_id = $1`, id,
		).Scan(&ids)
		if err != nil {
			return fmt.Errorf("failed to collect reviewed items: %w", err)
		}

		for _, s := range ids {
			itemID, err := uuid.Parse(s)
			if err != nil {
				return fmt.Errorf("failed to parse reviewed item id: %w", err)
			}
			cascade.ReviewedItemIDs = append(cascade.ReviewedItemIDs, itemID)
		}

		if _, err := tx.ExecContext(dbCtx, `DELETE FROM orders WHERE user_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete orders: %w", err)
		}

		var vendorID uuid.UUID
		err = tx.QueryRowContext(dbCtx, `SELECT id FROM vendors WHERE user_id = $1`, id).Scan(&vendorID)

		switch {
		case err == nil:
			removed, err := vendorItemsTx(dbCtx, tx, vendorID)
			if err != nil {
				return err
			}
			cascade.RemovedItems = removed

			if err := deleteVendorTx(dbCtx, tx, vendorID); err != nil {
				return err
			}
		case !errors.Is(err, sql.ErrNoRows):
			return fmt.Errorf("failed to look up vendor: %w", err)
		}

		for _, stmt := range []struct{ query, what string }{
			{`DELETE FROM reviews WHERE user_id = $1`, "reviews"},
			{`DELETE FROM addresses WHERE user_id = $1`, "addresses"},
			{`DELETE FROM payments WHERE user_id = $1`, "payments"},
			{`DELETE FROM carts WHERE user_id = $1`, "cart"},
		} {
			if _, err := tx.ExecContext(dbCtx, stmt.query, id); err != nil {
				return fmt.Errorf("failed to delete %s: %w", stmt.what, err)
			}
		}

		res, err := tx.ExecContext(dbCtx, `DELETE FROM users WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}

		return expectAffected(res)
	})
	if err != nil {
		return nil, err
	}

	return cascade, nil
}

// vendorItemsTx loads the id and category of every item the vendor lists.
func vendorItemsTx(ctx context.Context, tx *sql.Tx, vendorID uuid.UUID) ([]*models.Item, error) {

	rows, err := tx.QueryContext(ctx, `SELECT id, category FROM items WHERE vendor_id = $1`, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to collect vendor items: %w", err)
	}
	defer rows.Close()

	var items []*models.Item

	for rows.Next() {
		item := &models.Item{VendorID: vendorID}
		if err := rows.Scan(&item.ID, &item.Category); err != nil {
			return nil, fmt.Errorf("failed to scan vendor item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	user := &models.User{}

	err := row.Scan(&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return user, nil
}
