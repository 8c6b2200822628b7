// Package ratelimit gates outgoing provider requests so that the upstream
// quota is not exhausted.
package ratelimit

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Limiter blocks until a request may be sent or ctx is done.
type Limiter interface {
	Wait(ctx context.Context) error
}

// HTTPClient is the transport a Client delegates to.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client waits on every limiter before delegating a request to Next.
type Client struct {
	Next     HTTPClient
	Limiters []Limiter
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	for _, l := range c.Limiters {
		if l == nil {
			continue
		}
		if err := l.Wait(req.Context()); err != nil {
			return nil, err
		}
	}
	return c.Next.Do(req)
}

// MinInterval enforces a minimum time between consecutive requests.
// Concurrent callers are queued one Interval apart.
type MinInterval struct {
	Interval time.Duration

	mu   sync.Mutex
	next time.Time
}

func (m *MinInterval) Wait(ctx context.Context) error {
	if m.Interval <= 0 {
		return nil
	}
	m.mu.Lock()
	now := time.Now()
	slot := m.next
	if slot.Before(now) {
		slot = now
	}
	m.next = slot.Add(m.Interval)
	m.mu.Unlock()

	return sleep(ctx, time.Until(slot))
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
