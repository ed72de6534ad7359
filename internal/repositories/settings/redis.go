package settings

import (
	"context"
	"log"

	"github.com/KirkDiggler/dnd-long-rest/internal/domain/rest"
	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
	"github.com/redis/go-redis/v9"
)

// Key is the Redis hash holding the stored settings
const Key = "settings:long-rest"

type redisRepo struct {
	client   redis.UniversalClient
	defaults rest.Settings
}

// NewRedis creates a Redis-backed settings repository
func NewRedis(client redis.UniversalClient, defaults rest.Settings) Repository {
	if client == nil {
		panic("Redis client cannot be nil")
	}

	return &redisRepo{
		client:   client,
		defaults: defaults,
	}
}

// Get overlays the stored hash on the defaults. Stored fraction values are not
// checked here; resolving them is the rest's job.
func (r *redisRepo) Get(ctx context.Context) (rest.Settings, error) {
	stored, err := r.client.HGetAll(ctx, Key).Result()
	if err != nil {
		return rest.Settings{}, dnderr.Wrap(err, "failed to load long rest settings")
	}

	settings := r.defaults
	for _, key := range rest.SettingKeys {
		value, ok := stored[key]
		if !ok {
			continue
		}
		settings, err = settings.With(key, value)
		if err != nil {
			return rest.Settings{}, err
		}
	}

	for key := range stored {
		if !isKnownKey(key) {
			log.Printf("SettingsRepo: ignoring unknown setting %s", key)
		}
	}

	return settings, nil
}

// Set stores one value
func (r *redisRepo) Set(ctx context.Context, key, value string) error {
	if !isKnownKey(key) {
		return dnderr.InvalidArgumentf("unknown setting '%s'", key).
			WithMeta("setting", key)
	}

	if err := r.client.HSet(ctx, Key, key, value).Err(); err != nil {
		return dnderr.Wrap(err, "failed to store long rest setting").
			WithMeta("setting", key)
	}

	return nil
}

// Reset drops the stored hash
func (r *redisRepo) Reset(ctx context.Context) error {
	if err := r.client.Del(ctx, Key).Err(); err != nil {
		return dnderr.Wrap(err, "failed to reset long rest settings")
	}
	return nil
}
