package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"nutcha-shop/models"

	"github.com/redis/go-redis/v9"
)

// CheckoutRepository persists the per-session checkout draft (current step,
// accepted forms, applied coupon). A missing record means the flow has not
// started, so Load returns a fresh draft at the billing step.
type CheckoutRepository interface {
	LoadDraft(ctx context.Context, sessionID string) (*models.CheckoutDraft, error)
	SaveDraft(ctx context.Context, sessionID string, draft *models.CheckoutDraft) error
	DeleteDraft(ctx context.Context, sessionID string) error
}

type RedisCheckoutRepository struct {
	client *redis.Client
}

func NewRedisCheckoutRepository(client *redis.Client) *RedisCheckoutRepository {
	return &RedisCheckoutRepository{client: client}
}

func checkoutKey(sessionID string) string {
	return "checkout:" + sessionID
}

func (r *RedisCheckoutRepository) LoadDraft(ctx context.Context, sessionID string) (*models.CheckoutDraft, error) {
	raw, err := r.client.Get(ctx, checkoutKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return models.NewCheckoutDraft(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load checkout draft: %w", err)
	}

	var draft models.CheckoutDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, fmt.Errorf("decode checkout draft: %w", err)
	}
	return &draft, nil
}

func (r *RedisCheckoutRepository) SaveDraft(ctx context.Context, sessionID string, draft *models.CheckoutDraft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode checkout draft: %w", err)
	}
	if err := r.client.Set(ctx, checkoutKey(sessionID), raw, 0).Err(); err != nil {
		return fmt.Errorf("save checkout draft: %w", err)
	}
	return nil
}

func (r *RedisCheckoutRepository) DeleteDraft(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, checkoutKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete checkout draft: %w", err)
	}
	return nil
}
