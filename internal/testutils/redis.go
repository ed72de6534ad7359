package testutils

import (
	"context"
	"testing"
	"time"

	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
	"github.com/caarlos0/env/v11"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// TestRedisConfig points tests at a Redis instance. DB 15 keeps test data away
// from a developer's working database.
type TestRedisConfig struct {
	Addr     string `env:"REDIS_TEST_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_TEST_PASSWORD"`
	DB       int    `env:"REDIS_TEST_DB" envDefault:"15"`
}

// DefaultTestRedisConfig reads the test Redis location from the environment
func DefaultTestRedisConfig(t *testing.T) *TestRedisConfig {
	cfg := &TestRedisConfig{}
	require.NoError(t, env.Parse(cfg))
	return cfg
}

// CreateTestRedisClient connects to Redis, flushes the test database and
// registers cleanup. The test is skipped when Redis does not answer.
func CreateTestRedisClient(t *testing.T, cfg *TestRedisConfig) redis.UniversalClient {
	t.Helper()
	if cfg == nil {
		cfg = DefaultTestRedisConfig(t)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := WaitForRedis(ctx, client); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available for testing: %v", err)
	}

	require.NoError(t, client.FlushDB(ctx).Err(), "Failed to flush test Redis database")

	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		_ = client.Close()
	})

	return client
}

// CreateTestRedisClientOrSkip connects to the Redis named by the environment
func CreateTestRedisClientOrSkip(t *testing.T) redis.UniversalClient {
	t.Helper()
	return CreateTestRedisClient(t, nil)
}

// WaitForRedis pings until Redis answers or ctx is done
func WaitForRedis(ctx context.Context, client redis.UniversalClient) error {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		err := client.Ping(ctx).Err()
		if err == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "redis not ready")
		case <-ticker.C:
		}
	}
}
