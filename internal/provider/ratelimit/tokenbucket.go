package ratelimit

import (
	"context"
	"sync"
	"time"
)

// TokenBucket refills at rate tokens per second up to capacity (burst).
type TokenBucket struct {
	rate     float64
	capacity float64

	mu     sync.Mutex
	tokens float64
	last   time.Time
}

func NewTokenBucket(tokensPerSecond float64, burst int) *TokenBucket {
	if tokensPerSecond <= 0 {
		tokensPerSecond = 0.0000001
	}
	if burst <= 0 {
		burst = 1
	}
	return &TokenBucket{
		rate:     tokensPerSecond,
		capacity: float64(burst),
		tokens:   float64(burst),
		last:     time.Now(),
	}
}

// NewPerMinute sizes a bucket for a quota expressed in requests per minute.
// It returns nil when rpm is not positive.
func NewPerMinute(rpm, burst int) *TokenBucket {
	if rpm <= 0 {
		return nil
	}
	return NewTokenBucket(float64(rpm)/60, burst)
}

// Wait blocks until one token is available or ctx is done. A nil bucket
// never blocks.
func (tb *TokenBucket) Wait(ctx context.Context) error {
	if tb == nil {
		return nil
	}
	for {
		tb.mu.Lock()
		now := time.Now()
		if elapsed := now.Sub(tb.last).Seconds(); elapsed > 0 {
			tb.tokens += elapsed * tb.rate
			if tb.tokens > tb.capacity {
				tb.tokens = tb.capacity
			}
			tb.last = now
		}
		if tb.tokens >= 1 {
			tb.tokens--
			tb.mu.Unlock()
			return nil
		}
		deficit := 1 - tb.tokens
		tb.mu.Unlock()

		wait := time.Duration(deficit / tb.rate * float64(time.Second))
		if wait <= 0 {
			wait = time.Millisecond
		}
		if err := sleep(ctx, wait); err != nil {
			return err
		}
	}
}
