package api

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"shareit/internal/config"
	"shareit/internal/domain"
	"shareit/internal/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// userIDHeader несет идентификатор действующего пользователя.
// Он приходит с каждым запросом и нигде не сохраняется.
const userIDHeader = "X-Sharer-User-Id"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func loggingMiddleware(logger *zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		dur := time.Since(start)
		logger.Info().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", recorder.status).
			Dur("duration", dur).
			Msg("http request")

		metrics.ObserveHTTP(r.Method, r.URL.Path, strconv.Itoa(recorder.status), dur)
	})
}

func rateLimitMiddleware(cfg config.RateLimitConfig, limiter domain.RateLimitRepository, logger *zerolog.Logger, next http.Handler) http.Handler {
	window := time.Duration(cfg.WindowSec) * time.Second
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !cfg.Enabled || limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		allowed, err := limiter.CheckRateLimit(r.Context(), clientKey(r), cfg.Requests, window)
		if err != nil {
			// Лимитер не должен ронять обслуживание.
			logger.Error().Err(err).Msg("rate limit check failed")
			next.ServeHTTP(w, r)
			return
		}
		if !allowed {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientKey — идентификатор клиента для лимитера: заголовок пользователя,
// иначе адрес.
func clientKey(r *http.Request) string {
	if id := r.Header.Get(userIDHeader); id != "" {
		return "user:" + id
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return "addr:" + host
	}
	return "unknown"
}

// actingUserID разбирает обязательный заголовок пользователя.
func actingUserID(r *http.Request) (int64, error) {
	raw := r.Header.Get(userIDHeader)
	if raw == "" {
		return 0, fmt.Errorf("%s header is required", userIDHeader)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s header must be a positive integer", userIDHeader)
	}
	return id, nil
}
