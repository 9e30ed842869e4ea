//go:build integration

package inflight_test

import (
	"context"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/relayform/pkg/inflight"
	"github.com/dmitrymomot/relayform/pkg/redis"
)

const testRedisURL = "redis://localhost:6379/0"

func newTestRedisClient(t *testing.T) goredis.UniversalClient {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = testRedisURL
	}

	ctx := context.Background()
	client, err := redis.Open(ctx, redis.Config{URL: url, RetryAttempts: 1})
	require.NoError(t, err, "failed to connect to Redis")

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}

func TestRedis_Acquire(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("second holder is refused until release", func(t *testing.T) {
		t.Parallel()

		l := inflight.NewRedis(newTestRedisClient(t), inflight.WithPrefix("test-acquire"))

		release, err := l.Acquire(ctx, "form-1")
		require.NoError(t, err)

		_, err = l.Acquire(ctx, "form-1")
		require.ErrorIs(t, err, inflight.ErrLocked)

		require.NoError(t, release(ctx))

		again, err := l.Acquire(ctx, "form-1")
		require.NoError(t, err)
		require.NoError(t, again(ctx))
	})

	t.Run("stale release keeps the new lease", func(t *testing.T) {
		t.Parallel()

		l := inflight.NewRedis(newTestRedisClient(t),
			inflight.WithPrefix("test-stale"),
			inflight.WithTTL(50*time.Millisecond),
		)

		stale, err := l.Acquire(ctx, "k")
		require.NoError(t, err)
		time.Sleep(100 * time.Millisecond)

		fresh, err := l.Acquire(ctx, "k")
		require.NoError(t, err)

		require.NoError(t, stale(ctx))
		_, err = l.Acquire(ctx, "k")
		require.ErrorIs(t, err, inflight.ErrLocked)

		require.NoError(t, fresh(ctx))
	})

	t.Run("empty key", func(t *testing.T) {
		t.Parallel()

		l := inflight.NewRedis(newTestRedisClient(t))
		_, err := l.Acquire(ctx, "")
		require.ErrorIs(t, err, inflight.ErrEmptyKey)
	})
}
