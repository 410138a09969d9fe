package ratelimit

import (
	"testing"
	"time"
)

func TestLimiterBurstAndRefill(t *testing.T) {
	clock := time.Unix(0, 0)
	l := New(2)
	l.now = func() time.Time { return clock }

	if !l.Allow("a") || !l.Allow("a") {
		t.Fatal("expected burst of two")
	}
	if l.Allow("a") {
		t.Fatal("expected third request to be limited")
	}
	if !l.Allow("b") {
		t.Fatal("buckets must be per key")
	}

	clock = clock.Add(30 * time.Second)
	if !l.Allow("a") {
		t.Fatal("expected one token after refill")
	}
	if l.Allow("a") {
		t.Fatal("expected bucket to be empty again")
	}
}

func TestLimiterDefaults(t *testing.T) {
	var nilLimiter *Limiter
	if !nilLimiter.Allow("x") {
		t.Fatal("nil limiter must allow")
	}
	l := New(0)
	if l.burst != 60 {
		t.Fatalf("expected default burst 60, got %v", l.burst)
	}
	if !l.Allow("") {
		t.Fatal("empty key should map to default bucket")
	}
}

func TestLimiterAllowNChargesCost(t *testing.T) {
	clock := time.Unix(0, 0)
	l := New(4)
	l.now = func() time.Time { return clock }

	if !l.AllowN("a", 3) {
		t.Fatal("expected first weighted call to pass")
	}
	if l.AllowN("a", 2) {
		t.Fatal("expected call costing more than the remainder to be limited")
	}
	if !l.Allow("a") {
		t.Fatal("a single token should still be available")
	}

	if !l.AllowN("huge", 100) {
		t.Fatal("costs above the burst are clamped to the burst")
	}
	if l.Allow("huge") {
		t.Fatal("a clamped call drains the whole bucket")
	}

	clock = clock.Add(time.Minute)
	if !l.AllowN("a", 0) || !l.AllowN("a", 3) {
		t.Fatal("expected refill to cover a zero-cost and a weighted call")
	}
}
