package conversation

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned by a Backend when a key is absent or expired.
var ErrNotFound = errors.New("conversation: key not found")

// Backend is the persistence abstraction behind the Store. Implementations
// must honor the ttl on Set and treat expired entries as absent on Get.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// RedisBackend stores entries in a shared Redis cache. TTL handling is
// delegated to Redis key expiry.
type RedisBackend struct {
	client *redis.Client
}

func NewRedisBackend(client *redis.Client) *RedisBackend {
	return &RedisBackend{client: client}
}

func (b *RedisBackend) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := b.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get")
	}
	return value, nil
}

func (b *RedisBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return errors.Wrap(b.client.Set(ctx, key, value, ttl).Err(), "redis set")
}

func (b *RedisBackend) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return errors.Wrap(b.client.Del(ctx, keys...).Err(), "redis del")
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryBackend is a process-local map. It backs single-process deployments
// and doubles as the transparent fallback when the durable cache is
// unreachable. Expiry is lazy: checked on read, no background sweep.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string]memoryEntry
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string]memoryEntry)}
}

func (b *MemoryBackend) Get(ctx context.Context, key string) ([]byte, error) {
	b.mu.RLock()
	entry, ok := b.data[key]
	b.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		b.mu.Lock()
		delete(b.data, key)
		b.mu.Unlock()
		return nil, ErrNotFound
	}
	return entry.value, nil
}

func (b *MemoryBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	b.mu.Lock()
	b.data[key] = entry
	b.mu.Unlock()
	return nil
}

func (b *MemoryBackend) Delete(ctx context.Context, keys ...string) error {
	b.mu.Lock()
	for _, key := range keys {
		delete(b.data, key)
	}
	b.mu.Unlock()
	return nil
}
