package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// PreferenceRepository stores the small per-session records that are not part
// of the cart core: favorites, bookmarks (opaque id arrays) and the dark-mode
// flag. One JSON record per key.
type PreferenceRepository interface {
	LoadIDs(ctx context.Context, kind, sessionID string) ([]string, error)
	SaveIDs(ctx context.Context, kind, sessionID string, ids []string) error
	LoadDarkMode(ctx context.Context, sessionID string) (bool, error)
	SaveDarkMode(ctx context.Context, sessionID string, enabled bool) error
}

// Preference list kinds.
const (
	KindFavorites = "favorites"
	KindBookmarks = "bookmarks"
)

type RedisPreferenceRepository struct {
	client *redis.Client
}

func NewRedisPreferenceRepository(client *redis.Client) *RedisPreferenceRepository {
	return &RedisPreferenceRepository{client: client}
}

func (r *RedisPreferenceRepository) LoadIDs(ctx context.Context, kind, sessionID string) ([]string, error) {
	raw, err := r.client.Get(ctx, kind+":"+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", kind, err)
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}
	return ids, nil
}

func (r *RedisPreferenceRepository) SaveIDs(ctx context.Context, kind, sessionID string, ids []string) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode %s: %w", kind, err)
	}
	if err := r.client.Set(ctx, kind+":"+sessionID, raw, 0).Err(); err != nil {
		return fmt.Errorf("save %s: %w", kind, err)
	}
	return nil
}

func (r *RedisPreferenceRepository) LoadDarkMode(ctx context.Context, sessionID string) (bool, error) {
	raw, err := r.client.Get(ctx, "dark_mode:"+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load dark mode: %w", err)
	}

	var enabled bool
	if err := json.Unmarshal([]byte(raw), &enabled); err != nil {
		return false, fmt.Errorf("decode dark mode: %w", err)
	}
	return enabled, nil
}

func (r *RedisPreferenceRepository) SaveDarkMode(ctx context.Context, sessionID string, enabled bool) error {
	raw, err := json.Marshal(enabled)
	if err != nil {
		return fmt.Errorf("encode dark mode: %w", err)
	}
	if err := r.client.Set(ctx, "dark_mode:"+sessionID, raw, 0).Err(); err != nil {
		return fmt.Errorf("save dark mode: %w", err)
	}
	return nil
}
