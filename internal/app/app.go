// Package app wires the engines and optional infrastructure shared by the
// server, MCP and CLI binaries.
package app

import (
	"context"

	"divination/internal/astro"
	"divination/internal/cache"
	"divination/internal/chart"
	"divination/internal/config"
	"divination/internal/numerology"
	"divination/internal/service"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var initRedisFunc = cache.InitRedis

// NewProfileService builds the facade from cfg. Redis is optional: when the
// cache is disabled or unreachable the service runs without memoization. The
// returned func releases the Redis connection.
func NewProfileService(ctx context.Context, cfg *config.Config, tracer trace.Tracer, logger *zap.Logger) (*service.ProfileService, func()) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cleanup := func() {}

	var resultCache service.ResultCache
	if cfg.CacheEnabled {
		client, err := initRedisFunc(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("redis unavailable, continuing without cache", zap.Error(err))
		} else {
			resultCache = cache.NewProfileCache(tracer, client, cfg.CacheTTL())
			cleanup = func() {
				if err := client.Close(); err != nil {
					logger.Warn("error closing redis client", zap.Error(err))
				}
			}
			logger.Info("redis cache enabled", zap.String("addr", cfg.RedisURL), zap.Duration("ttl", cfg.CacheTTL()))
		}
	}

	svc := service.NewProfileServiceWithCache(
		tracer,
		logger,
		astro.NewEngine(cfg.DefaultBirthTime),
		numerology.NewCalculator(cfg.LifeNumberMasterMode),
		chart.NewRenderer(),
		resultCache,
	)
	return svc, cleanup
}
