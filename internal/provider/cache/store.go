package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis"
)

// Store keeps encoded provider responses for a TTL.
type Store interface {
	// Get reports false when the key is missing or expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// entry stores a cached value with its expiry.
type entry struct {
	expiresAt time.Time
	value     []byte
}

// MemoryStore is an in-process Store. MaxItems caps the number of entries;
// zero means unbounded.
type MemoryStore struct {
	MaxItems int

	now   func() time.Time
	mu    sync.RWMutex
	items map[string]entry
}

func NewMemoryStore(maxItems int) *MemoryStore {
	return &MemoryStore{MaxItems: maxItems, now: time.Now, items: make(map[string]entry)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	e, ok := s.items[key]
	s.mu.RUnlock()
	if !ok || !s.now().Before(e.expiresAt) {
		return nil, false, nil
	}
	return e.value, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = entry{expiresAt: now.Add(ttl), value: value}
	s.evict(now, key)
	return nil
}

// evict drops expired entries first, then arbitrary ones until the store fits.
// keep is never evicted.
func (s *MemoryStore) evict(now time.Time, keep string) {
	if s.MaxItems <= 0 || len(s.items) <= s.MaxItems {
		return
	}
	for k, v := range s.items {
		if len(s.items) <= s.MaxItems {
			return
		}
		if k != keep && !now.Before(v.expiresAt) {
			delete(s.items, k)
		}
	}
	for k := range s.items {
		if len(s.items) <= s.MaxItems {
			return
		}
		if k != keep {
			delete(s.items, k)
		}
	}
}

// Len returns the number of entries, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// RedisStore shares cached responses between processes through Redis.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(addr, password, prefix string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr, Password: password}),
		prefix: prefix,
	}
}

// Ping checks the connection.
func (s *RedisStore) Ping() error {
	if err := s.client.Ping().Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	b, err := s.client.Get(s.prefix + key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return b, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.client.Set(s.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
