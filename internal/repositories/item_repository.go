package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ItemRepository interface {
	CreateItem(ctx context.Context, item *models.Item) error
	GetItemByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
	GetItemByName(ctx context.Context, name string) (*models.Item, error)
	GetItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Item, error)
	ListItems(ctx context.Context, filter models.ItemFilter) ([]*models.Item, int, error)
	ListItemsByVendor(ctx context.Context, vendorID uuid.UUID) ([]*models.Item, error)
	UpdateItem(ctx context.Context, item *models.Item) error
	UpdateRating(ctx context.Context, summary *models.RatingSummary) error
	DeleteItemCascade(ctx context.Context, id uuid.UUID) error
}

type itemRepository struct {
	DB *sql.DB
}

func NewItemRepo(db *sql.DB) ItemRepository {
	return &itemRepository{DB: db}
}

const itemColumns = `id, vendor_id, name, price, description, category, image_url, rating, review_count, created_at, updated_at`

func (r *itemRepository) CreateItem(ctx context.Context, item *models.Item) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO items (vendor_id, name, price, description, category, image_url, rating, review_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULL, 0, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query, item.VendorID, item.Name, item.Price, item.Description, item.Category, item.ImageURL).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *itemRepository) GetItemByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return scanItem(r.DB.QueryRowContext(dbCtx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id))
}

func (r *itemRepository) GetItemByName(ctx context.Context, name string) (*models.Item, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return scanItem(r.DB.QueryRowContext(dbCtx, `SELECT `+itemColumns+` FROM items WHERE name = $1 LIMIT 1`, name))
}

// GetItemsByIDs resolves a batch of ids in one round trip. Missing ids are
// simply absent from the result.
func (r *itemRepository) GetItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Item, error) {

	if len(ids) == 0 {
		return []*models.Item{}, nil
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	strIDs := make([]string, len(ids))
	for i, id := range ids {
		strIDs[i] = id.String()
	}

	rows, err := r.DB.QueryContext(dbCtx, `SELECT `+itemColumns+` FROM items WHERE id = ANY($1::uuid[])`, pq.Array(strIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch items: %w", err)
	}
	defer rows.Close()

	return collectItems(rows, len(ids))
}

func (r *itemRepository) ListItems(ctx context.Context, filter models.ItemFilter) ([]*models.Item, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	err := r.DB.QueryRowContext(dbCtx,
		`SELECT COUNT(*) FROM items WHERE ($1 = '' OR category = $1)`, filter.Category,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count items: %w", err)
	}

	query := `SELECT ` + itemColumns + ` FROM items
		WHERE ($1 = '' OR category = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(dbCtx, query, filter.Category, filter.PageSize, models.Offset(filter.Page, filter.PageSize))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items, err := collectItems(rows, filter.PageSize)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *itemRepository) ListItemsByVendor(ctx context.Context, vendorID uuid.UUID) ([]*models.Item, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx,
		`SELECT `+itemColumns+` FROM items WHERE vendor_id = $1 ORDER BY created_at DESC`, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendor items: %w", err)
	}
	defer rows.Close()

	return collectItems(rows, 0)
}

func (r *itemRepository) UpdateItem(ctx context.Context, item *models.Item) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE items
		SET name = $1, price = $2, description = $3, category = $4, image_url = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at`

	return r.DB.QueryRowContext(dbCtx, query, item.Name, item.Price, item.Description, item.Category, item.ImageURL, item.ID).
		Scan(&item.UpdatedAt)
}

func (r *itemRepository) UpdateRating(ctx context.Context, summary *models.RatingSummary) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var rating sql.NullFloat64
	if summary.Rating != nil {
		rating = sql.NullFloat64{Float64: *summary.Rating, Valid: true}
	}

	err := r.DB.QueryRowContext(dbCtx,
		`UPDATE items SET rating = $1, review_count = $2, updated_at = NOW() WHERE id = $3 RETURNING category`,
		rating, summary.ReviewCount, summary.ItemID,
	).Scan(&summary.Category)
	if err != nil {
		return fmt.Errorf("failed to update rating: %w", err)
	}

	return nil
}

func (r *itemRepository) DeleteItemCascade(ctx context.Context, id uuid.UUID) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return withTx(dbCtx, r.DB, func(tx *sql.Tx) error {

		if _, err := tx.ExecContext(dbCtx, `DELETE FROM reviews WHERE item_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete item reviews: %w", err)
		}

		res, err := tx.ExecContext(dbCtx, `DELETE FROM items WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete item: %w", err)
		}

		return expectAffected(res)
	})
}

func collectItems(rows *sql.Rows, capacity int) ([]*models.Item, error) {
	items := make([]*models.Item, 0, capacity)

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func scanItem(row rowScanner) (*models.Item, error) {
	item := &models.Item{}

	var (
		imageURL sql.NullString
		rating   sql.NullFloat64
	)

	err := row.Scan(&item.ID, &item.VendorID, &item.Name, &item.Price, &item.Description, &item.Category,
		&imageURL, &rating, &item.ReviewCount, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}

	item.ImageURL = imageURL.String
	if rating.Valid {
		item.Rating = &rating.Float64
	}

	return item, nil
}
