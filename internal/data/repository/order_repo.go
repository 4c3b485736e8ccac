package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"storefront/internal/data/entity"
	"storefront/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) (*entity.Order, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

// Create inserts an order and returns the full inserted row, items blob
// deserialized back into line items
func (r *orderRepository) Create(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	itemsBlob, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal order items: %w", err)
	}

	query := `
		INSERT INTO orders (id, user_id, total_amount, items, shipping_address, contact_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, total_amount, items, shipping_address, contact_number, created_at
	`

	var inserted entity.Order
	var returnedBlob []byte
	err = r.db.QueryRow(ctx, query,
		order.ID,
		order.UserID,
		order.TotalAmount,
		itemsBlob,
		order.ShippingAddress,
		order.ContactNumber,
		order.CreatedAt,
	).Scan(
		&inserted.ID,
		&inserted.UserID,
		&inserted.TotalAmount,
		&returnedBlob,
		&inserted.ShippingAddress,
		&inserted.ContactNumber,
		&inserted.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", order.UserID.String()),
		)
		return nil, fmt.Errorf("create order for user %s: %w", order.UserID.String(), err)
	}

	if err := json.Unmarshal(returnedBlob, &inserted.Items); err != nil {
		return nil, fmt.Errorf("unmarshal order items: %w", err)
	}

	return &inserted, nil
}

// FindByUserID retrieves the user's orders newest-first
func (r *orderRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, total_amount, items, shipping_address, contact_number, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to get user orders",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find orders for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		var itemsBlob []byte
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.TotalAmount,
			&itemsBlob,
			&order.ShippingAddress,
			&order.ContactNumber,
			&order.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		if err := json.Unmarshal(itemsBlob, &order.Items); err != nil {
			return nil, fmt.Errorf("unmarshal order items: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count user orders",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count orders for user %s: %w", userID.String(), err)
	}

	return count, nil
}
