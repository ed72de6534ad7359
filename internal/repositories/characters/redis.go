package characters

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/KirkDiggler/dnd-long-rest/internal/domain/character"
	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.TimeProvider == nil {
		cfg.TimeProvider = NewTimeProvider()
	}

	return &redisRepo{
		client:       cfg.Client,
		timeProvider: cfg.TimeProvider,
	}
}

// NewRedis creates a new Redis-backed character repository with the wall clock
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

// key generates the Redis key for a character
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("character:%s", id)
}

// ownerCharactersKey generates the Redis key for an owner's character list
func (r *redisRepo) ownerCharactersKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:characters", ownerID)
}

// Create stores a new character
func (r *redisRepo) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}
	if char.OwnerID == "" {
		return dnderr.InvalidArgument("character owner ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(char.ID)).Result()
	if err != nil {
		return dnderr.Wrap(err, "failed to check character existence")
	}
	if exists > 0 {
		return dnderr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	data := char.Clone()
	data.CreatedAt = r.timeProvider.Now()
	data.UpdatedAt = data.CreatedAt

	jsonData, err := json.Marshal(data)
	if err != nil {
		return dnderr.Wrap(err, "failed to marshal character")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(char.ID), string(jsonData), 0)
	pipe.SAdd(ctx, r.ownerCharactersKey(char.OwnerID), char.ID)

	if _, err = pipe.Exec(ctx); err != nil {
		return dnderr.Wrap(err, "failed to create character").
			WithMeta("character_id", char.ID)
	}

	char.CreatedAt = data.CreatedAt
	char.UpdatedAt = data.UpdatedAt
	return nil
}

// Get retrieves a character by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get character").
			WithMeta("character_id", id)
	}

	var char character.Character
	if unmarshalErr := json.Unmarshal([]byte(jsonData), &char); unmarshalErr != nil {
		return nil, dnderr.Wrap(unmarshalErr, "failed to unmarshal character").
			WithMeta("character_id", id)
	}

	return &char, nil
}

// GetByOwner retrieves all characters for a specific owner. Index entries whose
// document is gone are skipped.
func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.ownerCharactersKey(ownerID)).Result()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list character IDs").
			WithMeta("owner_id", ownerID)
	}

	loaded := make([]*character.Character, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			char, err := r.Get(ctx, id)
			if dnderr.IsNotFound(err) {
				log.Printf("CharacterRepo: owner %s lists missing character %s", ownerID, id)
				return nil
			}
			if err != nil {
				return err
			}
			loaded[i] = char
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	characters := make([]*character.Character, 0, len(loaded))
	for _, char := range loaded {
		if char != nil {
			characters = append(characters, char)
		}
	}
	return characters, nil
}

// Update replaces an existing character, keeping its creation time
func (r *redisRepo) Update(ctx context.Context, char *character.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	existing, err := r.Get(ctx, char.ID)
	if err != nil {
		return err
	}

	data := char.Clone()
	data.CreatedAt = existing.CreatedAt
	data.UpdatedAt = r.timeProvider.Now()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return dnderr.Wrap(err, "failed to marshal character")
	}

	if existing.OwnerID == char.OwnerID {
		if err := r.client.Set(ctx, r.key(char.ID), string(jsonData), 0).Err(); err != nil {
			return dnderr.Wrap(err, "failed to update character").
				WithMeta("character_id", char.ID)
		}
	} else {
		pipe := r.client.Pipeline()
		pipe.Set(ctx, r.key(char.ID), string(jsonData), 0)
		pipe.SRem(ctx, r.ownerCharactersKey(existing.OwnerID), char.ID)
		pipe.SAdd(ctx, r.ownerCharactersKey(char.OwnerID), char.ID)

		if _, err := pipe.Exec(ctx); err != nil {
			return dnderr.Wrap(err, "failed to update character indexes").
				WithMeta("character_id", char.ID)
		}
	}

	char.CreatedAt = data.CreatedAt
	char.UpdatedAt = data.UpdatedAt
	return nil
}

// Delete removes a character
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	existing, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.ownerCharactersKey(existing.OwnerID), id)

	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.Wrap(err, "failed to delete character").
			WithMeta("character_id", id)
	}

	return nil
}
