package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"

	"divination/internal/domain"
)

func newTestCache(t *testing.T, ttl time.Duration) (*ProfileCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewProfileCache(trace.NewNoopTracerProvider().Tracer("test"), client, ttl), mr
}

func TestProfileCacheRoundTrip(t *testing.T) {
	c, mr := newTestCache(t, time.Hour)
	ctx := context.Background()
	key := Key("chart", "1990-07-15", "08:30")

	var miss domain.BirthChart
	hit, err := c.Get(ctx, key, &miss)
	if err != nil || hit {
		t.Fatalf("expected clean miss, hit=%v err=%v", hit, err)
	}

	want := domain.BirthChart{BirthDate: "1990-07-15", BirthTime: "08:30", SunSign: domain.SignCancer}
	if err := c.Set(ctx, key, want); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if ttl := mr.TTL(key); ttl != time.Hour {
		t.Fatalf("expected 1h ttl, got %s", ttl)
	}

	var got domain.BirthChart
	hit, err = c.Get(ctx, key, &got)
	if err != nil || !hit {
		t.Fatalf("expected hit, hit=%v err=%v", hit, err)
	}
	if got.SunSign != domain.SignCancer || got.BirthTime != "08:30" {
		t.Fatalf("unexpected cached chart: %+v", got)
	}

	mr.FastForward(2 * time.Hour)
	hit, err = c.Get(ctx, key, &got)
	if err != nil || hit {
		t.Fatalf("expected expiry, hit=%v err=%v", hit, err)
	}
}

func TestProfileCacheCorruptEntry(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	key := Key("zodiac", "1990-07-15")
	if err := mr.Set(key, "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var got domain.ZodiacSign
	hit, err := c.Get(context.Background(), key, &got)
	if err == nil || hit {
		t.Fatalf("expected decode error, hit=%v err=%v", hit, err)
	}
}

func TestProfileCacheUnavailable(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	mr.Close()

	var got domain.ZodiacSign
	if _, err := c.Get(context.Background(), Key("zodiac", "x"), &got); err == nil {
		t.Fatal("expected error when redis is down")
	}
	if err := c.Set(context.Background(), Key("zodiac", "x"), got); err == nil {
		t.Fatal("expected error when redis is down")
	}
}

func TestKey(t *testing.T) {
	if got := Key("five-grid", "王", "小明"); got != "divination:five-grid:王:小明" {
		t.Fatalf("unexpected key %q", got)
	}
	if got := Key("signs"); got != "divination:signs" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestInitRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := InitRedis(context.Background(), mr.Addr())
	if err != nil {
		t.Fatalf("InitRedis: %v", err)
	}
	defer client.Close()
	if Client != client {
		t.Fatal("expected package client to be set")
	}

	mr.Close()
	if _, err := InitRedis(context.Background(), mr.Addr()); err == nil {
		t.Fatal("expected ping failure")
	}
}
