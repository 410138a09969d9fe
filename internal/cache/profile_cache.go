package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const keyPrefix = "divination:"

// ProfileCache memoizes computed results as JSON. Results are pure functions
// of their inputs, so entries never need invalidation beyond the TTL.
type ProfileCache struct {
	client redis.Cmdable
	tracer trace.Tracer
	ttl    time.Duration
}

func NewProfileCache(tracer trace.Tracer, client redis.Cmdable, ttl time.Duration) *ProfileCache {
	return &ProfileCache{client: client, tracer: tracer, ttl: ttl}
}

// Key joins parts into a namespaced cache key.
func Key(kind string, parts ...string) string {
	key := keyPrefix + kind
	for _, p := range parts {
		key += ":" + p
	}
	return key
}

// Get decodes the entry at key into dest. It reports false on a miss.
func (c *ProfileCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "profile-cache.get")
	defer span.End()
	span.SetAttributes(attribute.String("cache.key", key))

	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		span.SetAttributes(attribute.Bool("cache.hit", false))
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	span.SetAttributes(attribute.Bool("cache.hit", true))
	return true, nil
}

// Set stores value at key as JSON with the cache TTL.
func (c *ProfileCache) Set(ctx context.Context, key string, value any) error {
	ctx, span := c.tracer.Start(ctx, "profile-cache.set")
	defer span.End()
	span.SetAttributes(attribute.String("cache.key", key))

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}
