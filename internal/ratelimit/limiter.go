package ratelimit

import (
	"sync"
	"time"
)

// Limiter is a per-key token bucket refilled at perMin tokens per minute with
// a burst of perMin.
type Limiter struct {
	mu     sync.Mutex
	rate   float64
	burst  float64
	bucket map[string]*tokenBucket
	now    func() time.Time
}

type tokenBucket struct {
	tokens float64
	last   time.Time
}

func New(perMin int) *Limiter {
	if perMin <= 0 {
		perMin = 60
	}
	return &Limiter{
		rate:   float64(perMin) / 60.0,
		burst:  float64(perMin),
		bucket: make(map[string]*tokenBucket),
		now:    time.Now,
	}
}

// Allow takes a token from key's bucket. A nil limiter allows everything.
func (l *Limiter) Allow(key string) bool {
	return l.AllowN(key, 1)
}

// AllowN takes cost tokens from key's bucket, or none when fewer remain.
// Costs are clamped to [1, burst] so that no request is unservable.
func (l *Limiter) AllowN(key string, cost int) bool {
	if l == nil {
		return true
	}
	if key == "" {
		key = "default"
	}
	n := float64(cost)
	if n < 1 {
		n = 1
	}
	if n > l.burst {
		n = l.burst
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()

	b, ok := l.bucket[key]
	if !ok {
		l.bucket[key] = &tokenBucket{tokens: l.burst - n, last: now}
		return true
	}

	elapsed := now.Sub(b.last).Seconds()
	if elapsed > 0 {
		b.tokens += elapsed * l.rate
		if b.tokens > l.burst {
			b.tokens = l.burst
		}
	}
	b.last = now

	if b.tokens < n {
		return false
	}
	b.tokens -= n
	return true
}
