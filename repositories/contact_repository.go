package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"nutcha-shop/models"

	"github.com/redis/go-redis/v9"
)

// ContactRepository persists the contact-form draft of a session so a half
// written message survives navigation.
type ContactRepository interface {
	LoadDraft(ctx context.Context, sessionID string) (*models.ContactMessage, error)
	SaveDraft(ctx context.Context, sessionID string, draft *models.ContactMessage) error
	DeleteDraft(ctx context.Context, sessionID string) error
}

type RedisContactRepository struct {
	client *redis.Client
}

func NewRedisContactRepository(client *redis.Client) *RedisContactRepository {
	return &RedisContactRepository{client: client}
}

func contactKey(sessionID string) string {
	return "contact_draft:" + sessionID
}

// LoadDraft returns (nil, nil) when the session has no saved draft.
func (r *RedisContactRepository) LoadDraft(ctx context.Context, sessionID string) (*models.ContactMessage, error) {
	raw, err := r.client.Get(ctx, contactKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load contact draft: %w", err)
	}

	var draft models.ContactMessage
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, fmt.Errorf("decode contact draft: %w", err)
	}
	return &draft, nil
}

func (r *RedisContactRepository) SaveDraft(ctx context.Context, sessionID string, draft *models.ContactMessage) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode contact draft: %w", err)
	}
	if err := r.client.Set(ctx, contactKey(sessionID), raw, 0).Err(); err != nil {
		return fmt.Errorf("save contact draft: %w", err)
	}
	return nil
}

func (r *RedisContactRepository) DeleteDraft(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, contactKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete contact draft: %w", err)
	}
	return nil
}
