// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"log/slog"

	redisv9 "github.com/redis/go-redis/v9"

	"digit_canvas/internal/feature/canvas/adapters/predictor"
	"digit_canvas/internal/feature/canvas/usecase"
	"digit_canvas/internal/platform/cache"
	"digit_canvas/internal/platform/config"
	infrahttp "digit_canvas/internal/platform/http"
	infraredis "digit_canvas/internal/platform/redis"
)

// NewPredictor creates the HTTP prediction client, wrapped with the Redis cache when rdb is non-nil.
func NewPredictor(cfg config.Config, rdb *redisv9.Client) usecase.Predictor {
	pcfg := predictor.ConfigFrom(cfg)
	httpClient := infrahttp.NewHTTPClient(pcfg.Timeout)
	p := predictor.NewHTTPPredictor(pcfg, httpClient)
	if rdb == nil {
		return p
	}
	return cache.NewCachingPredictor(rdb, cfg.CacheTTL, p, cfg.CacheNamespace)
}

// NewOptionalRedis returns a Redis client, or nil when Redis is not configured or unreachable.
// The caller owns the returned client.
func NewOptionalRedis(ctx context.Context, cfg config.Config) *redisv9.Client {
	rdb, err := infraredis.NewRedisClient(ctx, cfg)
	if err != nil {
		slog.Warn("Redis unavailable. Running without prediction cache.", "error", err)
		return nil
	}
	return rdb
}
