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

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrdersByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*models.Order, int, error)
	DeleteOrder(ctx context.Context, id, userID uuid.UUID) error
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

// CreateOrder writes the order header and its snapshot lines atomically.
func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return withTx(dbCtx, r.DB, func(tx *sql.Tx) error {

		query := `
			INSERT INTO orders (user_id, address_id, payment_id, total_cost, created_at)
			VALUES ($1, $2, $3, $4, NOW())
			RETURNING id, created_at`

		err := tx.QueryRowContext(dbCtx, query, order.UserID, order.AddressID, order.PaymentID, order.TotalCost).
			Scan(&order.ID, &order.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert order: %w", err)
		}

		stmt, err := tx.PrepareContext(dbCtx, `
			INSERT INTO order_items (order_id, item_id, name, unit_price, quantity, line_total)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`)
		if err != nil {
			return fmt.Errorf("failed to prepare order item insert: %w", err)
		}
		defer stmt.Close()

		for i := range order.Items {
			line := &order.Items[i]
			line.OrderID = order.ID

			err := stmt.QueryRowContext(dbCtx, order.ID, line.ItemID, line.Name, line.UnitPrice, line.Quantity, line.LineTotal).
				Scan(&line.ID)
			if err != nil {
				return fmt.Errorf("failed to insert order item: %w", err)
			}
		}

		return nil
	})
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	order, err := scanOrder(r.DB.QueryRowContext(dbCtx,
		`SELECT id, user_id, address_id, payment_id, total_cost, created_at FROM orders WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}

	if err := r.attachItems(dbCtx, []*models.Order{order}); err != nil {
		return nil, err
	}

	return order, nil
}

func (r *orderRepository) ListOrdersByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*models.Order, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	rows, err := r.DB.QueryContext(dbCtx, `
		SELECT id, user_id, address_id, payment_id, total_cost, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, userID, pageSize, models.Offset(page, pageSize))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]*models.Order, 0, pageSize)

	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachItems(dbCtx, orders); err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// DeleteOrder removes the order only when it belongs to userID; lines cascade.
func (r *orderRepository) DeleteOrder(ctx context.Context, id, userID uuid.UUID) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	res, err := r.DB.ExecContext(dbCtx, `DELETE FROM orders WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return expectAffected(res)
}

// attachItems loads the lines of all given orders in a single query.
func (r *orderRepository) attachItems(ctx context.Context, orders []*models.Order) error {

	if len(orders) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*models.Order, len(orders))
	ids := make([]string, 0, len(orders))

	for _, o := range orders {
		o.Items = []models.OrderItem{}
		byID[o.ID] = o
		ids = append(ids, o.ID.String())
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, order_id, item_id, name, unit_price, quantity, line_total
		FROM order_items
		WHERE order_id = ANY($1::uuid[])
		ORDER BY name`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to get order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line models.OrderItem

		if err := rows.Scan(&line.ID, &line.OrderID, &line.ItemID, &line.Name, &line.UnitPrice, &line.Quantity, &line.LineTotal); err != nil {
			return fmt.Errorf("failed to scan order item: %w", err)
		}

		if o, ok := byID[line.OrderID]; ok {
			o.Items = append(o.Items, line)
		}
	}

	return rows.Err()
}

func scanOrder(row rowScanner) (*models.Order, error) {
	order := &models.Order{}

	var addressID, paymentID uuid.NullUUID

	if err := row.Scan(&order.ID, &order.UserID, &addressID, &paymentID, &order.TotalCost, &order.CreatedAt); err != nil {
		return nil, err
	}

	if addressID.Valid {
		order.AddressID = &addressID.UUID
	}
	if paymentID.Valid {
		order.PaymentID = &paymentID.UUID
	}

	return order, nil
}
