package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"nutcha-shop/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// CurrentOrderRepository holds the single most recently placed order of a
// session: written on placement, read by the confirmation/receipt view,
// deleted when the visitor leaves via "Continue Shopping".
type CurrentOrderRepository interface {
	SaveCurrent(ctx context.Context, sessionID string, order *models.Order) error
	LoadCurrent(ctx context.Context, sessionID string) (*models.Order, error)
	DeleteCurrent(ctx context.Context, sessionID string) error
}

// OrderHistoryRepository appends placed orders to the relational history.
type OrderHistoryRepository interface {
	Insert(ctx context.Context, sessionID string, order *models.Order) error
	ListBySession(ctx context.Context, sessionID string) ([]models.OrderSummary, error)
	ListAll(ctx context.Context, page, limit int) ([]models.OrderSummary, int, error)
}

type RedisCurrentOrderRepository struct {
	client *redis.Client
}

func NewRedisCurrentOrderRepository(client *redis.Client) *RedisCurrentOrderRepository {
	return &RedisCurrentOrderRepository{client: client}
}

func orderKey(sessionID string) string {
	return "order:" + sessionID
}

func (r *RedisCurrentOrderRepository) SaveCurrent(ctx context.Context, sessionID string, order *models.Order) error {
	raw, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encode order: %w", err)
	}
	if err := r.client.Set(ctx, orderKey(sessionID), raw, 0).Err(); err != nil {
		return fmt.Errorf("save order: %w", err)
	}
	return nil
}

// LoadCurrent returns (nil, nil) when the session has no placed order.
func (r *RedisCurrentOrderRepository) LoadCurrent(ctx context.Context, sessionID string) (*models.Order, error) {
	raw, err := r.client.Get(ctx, orderKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}

	var order models.Order
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}
	return &order, nil
}

func (r *RedisCurrentOrderRepository) DeleteCurrent(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, orderKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

type PostgresOrderHistoryRepository struct {
	db *pgxpool.Pool
}

func NewPostgresOrderHistoryRepository(db *pgxpool.Pool) *PostgresOrderHistoryRepository {
	return &PostgresOrderHistoryRepository{db: db}
}

func (r *PostgresOrderHistoryRepository) Insert(ctx context.Context, sessionID string, order *models.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin order insert: %w", err)
	}
	defer tx.Rollback(ctx)

	var orderID int
	err = tx.QueryRow(ctx,
		`INSERT INTO orders (order_number, session_id, full_name, email, billing_address,
		    shipping_address, shipping_city, shipping_postal_code, subtotal, discount_rate,
		    discount_amount, tax, shipping_cost, total, estimated_delivery, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		 RETURNING id`,
		order.OrderNumber, sessionID, order.Billing.FullName, order.Billing.Email,
		order.Billing.Address, order.Shipping.Address, order.Shipping.City,
		order.Shipping.PostalCode, order.Pricing.Subtotal, order.Pricing.DiscountRate,
		order.Pricing.DiscountAmount, order.Pricing.Tax, order.Pricing.ShippingCost,
		order.Pricing.Total, order.EstimatedDelivery, order.PlacedAt,
	).Scan(&orderID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, line := range order.Lines {
		_, err = tx.Exec(ctx,
			`INSERT INTO order_items (order_id, product_id, name, size, unit_price, quantity)
			 VALUES ($1,$2,$3,$4,$5,$6)`,
			orderID, line.ID, line.Name, line.Size, line.UnitPrice, line.Quantity)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit order insert: %w", err)
	}
	return nil
}

func (r *PostgresOrderHistoryRepository) ListBySession(ctx context.Context, sessionID string) ([]models.OrderSummary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, order_number, full_name, email, subtotal, total, created_at
		 FROM orders WHERE session_id = $1 ORDER BY created_at DESC`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("query order history: %w", err)
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

func (r *PostgresOrderHistoryRepository) ListAll(ctx context.Context, page, limit int) ([]models.OrderSummary, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, order_number, full_name, email, subtotal, total, created_at
		 FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	summaries, err := scanOrderSummaries(rows)
	if err != nil {
		return nil, 0, err
	}
	return summaries, total, nil
}

func scanOrderSummaries(rows pgx.Rows) ([]models.OrderSummary, error) {
	summaries := []models.OrderSummary{}
	for rows.Next() {
		var s models.OrderSummary
		if err := rows.Scan(&s.ID, &s.OrderNumber, &s.FullName, &s.Email, &s.Subtotal, &s.Total, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}
