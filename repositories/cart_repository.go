package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"nutcha-shop/models"

	"github.com/redis/go-redis/v9"
)

// CartRepository persists the full line list of a session's cart as a single
// JSON record. The cart store writes the whole list after every mutation.
type CartRepository interface {
	LoadLines(ctx context.Context, sessionID string) ([]models.CartLine, error)
	SaveLines(ctx context.Context, sessionID string, lines []models.CartLine) error
	DeleteLines(ctx context.Context, sessionID string) error
}

type RedisCartRepository struct {
	client *redis.Client
}

func NewRedisCartRepository(client *redis.Client) *RedisCartRepository {
	return &RedisCartRepository{client: client}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (r *RedisCartRepository) LoadLines(ctx context.Context, sessionID string) ([]models.CartLine, error) {
	raw, err := r.client.Get(ctx, cartKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return []models.CartLine{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	var lines []models.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return lines, nil
}

func (r *RedisCartRepository) SaveLines(ctx context.Context, sessionID string, lines []models.CartLine) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := r.client.Set(ctx, cartKey(sessionID), raw, 0).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (r *RedisCartRepository) DeleteLines(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
