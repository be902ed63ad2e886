package repository

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// MemoryRateLimitRepository — внутрипроцессный лимитер на токен-бакетах,
// запасной вариант на случай недоступности Redis.
type MemoryRateLimitRepository struct {
	limiters sync.Map // map[string]*rate.Limiter
}

func NewMemoryRateLimitRepository() *MemoryRateLimitRepository {
	return &MemoryRateLimitRepository{}
}

func (r *MemoryRateLimitRepository) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	if limit <= 0 || window <= 0 {
		return true, nil
	}
	return r.getLimiter(key, limit, window).Allow(), nil
}

func (r *MemoryRateLimitRepository) getLimiter(key string, limit int, window time.Duration) *rate.Limiter {
	if v, ok := r.limiters.Load(key); ok {
		return v.(*rate.Limiter)
	}

	// limit запросов за окно; burst равен лимиту, чтобы короткие
	// всплески не отсекались раньше времени.
	lim := rate.NewLimiter(rate.Limit(float64(limit)/window.Seconds()), limit)
	actual, loaded := r.limiters.LoadOrStore(key, lim)
	if loaded {
		return actual.(*rate.Limiter)
	}
	return lim
}
