package sports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Cache stores rosters by team slug.
type Cache interface {
	Get(ctx context.Context, slug string) (*Roster, bool, error)
	Set(ctx context.Context, slug string, roster *Roster, ttl time.Duration) error
	Clear(ctx context.Context) error
}

type memoryEntry struct {
	roster  Roster
	expires time.Time
}

// MemoryCache is a process-local TTL cache.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryCache creates an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry), now: time.Now}
}

func (c *MemoryCache) Get(_ context.Context, slug string) (*Roster, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[slug]
	if !ok {
		return nil, false, nil
	}
	if !c.now().Before(e.expires) {
		delete(c.entries, slug)
		return nil, false, nil
	}
	r := e.roster.clone()
	return &r, true, nil
}

func (c *MemoryCache) Set(_ context.Context, slug string, roster *Roster, ttl time.Duration) error {
	if roster == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[slug] = memoryEntry{roster: roster.clone(), expires: c.now().Add(ttl)}
	return nil
}

func (c *MemoryCache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]memoryEntry)
	return nil
}

// DefaultRedisPrefix namespaces roster keys.
const DefaultRedisPrefix = "vibequiz:roster:"

// RedisCache stores rosters as JSON with a per-key expiry.
type RedisCache struct {
	client *goredis.Client
	prefix string
}

// NewRedisCache connects to addr and verifies the connection.
func NewRedisCache(ctx context.Context, addr string) (*RedisCache, error) {
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return NewRedisCacheFromClient(client, DefaultRedisPrefix), nil
}

// NewRedisCacheFromClient wraps an existing client.
func NewRedisCacheFromClient(client *goredis.Client, prefix string) *RedisCache {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisCache{client: client, prefix: prefix}
}

func (c *RedisCache) key(slug string) string {
	return c.prefix + slug
}

func (c *RedisCache) Get(ctx context.Context, slug string) (*Roster, bool, error) {
	raw, err := c.client.Get(ctx, c.key(slug)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached roster: %w", err)
	}
	var r Roster
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached roster: %w", err)
	}
	return &r, true, nil
}

func (c *RedisCache) Set(ctx context.Context, slug string, roster *Roster, ttl time.Duration) error {
	if roster == nil {
		return nil
	}
	raw, err := json.Marshal(roster)
	if err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}
	if err := c.client.Set(ctx, c.key(slug), raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cached roster: %w", err)
	}
	return nil
}

func (c *RedisCache) Clear(ctx context.Context) error {
	var keys []string
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan roster keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// Close releases the underlying client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
