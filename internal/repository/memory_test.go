package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateLimit(t *testing.T) {
	repo := NewMemoryRateLimitRepository()
	ctx := context.Background()

	// Бакет позволяет ровно limit запросов подряд.
	for i := 0; i < 5; i++ {
		ok, err := repo.CheckRateLimit(ctx, "user:1", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok, "request %d should pass", i+1)
	}

	ok, err := repo.CheckRateLimit(ctx, "user:1", 5, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.CheckRateLimit(ctx, "user:2", 5, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryRateLimit_ZeroConfigAllowsAll(t *testing.T) {
	repo := NewMemoryRateLimitRepository()

	ok, err := repo.CheckRateLimit(context.Background(), "user:1", 0, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.CheckRateLimit(context.Background(), "user:1", 5, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryRateLimit_Concurrent(t *testing.T) {
	repo := NewMemoryRateLimitRepository()
	ctx := context.Background()

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				_, err := repo.CheckRateLimit(ctx, "shared", 1000, time.Minute)
				assert.NoError(t, err)
			}
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}
