package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredisRepo(t *testing.T) (*RedisRateLimitRepository, *miniredis.Miniredis) {
	t.Helper()
	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisRateLimitRepository(client), s
}

func TestRedisRateLimit(t *testing.T) {
	repo, _ := newMiniredisRepo(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := repo.CheckRateLimit(ctx, "user:1", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok, "request %d should pass", i+1)
	}

	ok, err := repo.CheckRateLimit(ctx, "user:1", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	// Другой ключ считается отдельно.
	ok, err = repo.CheckRateLimit(ctx, "user:2", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisRateLimit_WindowExpires(t *testing.T) {
	repo, s := newMiniredisRepo(t)
	ctx := context.Background()

	ok, err := repo.CheckRateLimit(ctx, "user:1", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.CheckRateLimit(ctx, "user:1", 1, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	s.FastForward(2 * time.Minute)

	ok, err = repo.CheckRateLimit(ctx, "user:1", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisRateLimit_NilClient(t *testing.T) {
	repo := NewRedisRateLimitRepository(nil)

	_, err := repo.CheckRateLimit(context.Background(), "user:1", 1, time.Minute)
	require.Error(t, err)
}
