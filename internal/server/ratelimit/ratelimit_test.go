package ratelimit

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestTokenBucket_Take(t *testing.T) {
	start := time.Now()
	bucket := newTokenBucket(10, 1.0, start)

	for i := 0; i < 10; i++ {
		allowed, remaining, _, _ := bucket.take(start)
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 9-i, remaining)
	}

	allowed, remaining, reset, wait := bucket.take(start)
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)
	assert.Equal(t, start.Add(10*time.Second), reset)
	assert.Equal(t, time.Second, wait)
}

func TestTokenBucket_Refill(t *testing.T) {
	start := time.Now()
	bucket := newTokenBucket(10, 1.0, start)
	for i := 0; i < 10; i++ {
		bucket.take(start)
	}

	allowed, _, _, _ := bucket.take(start.Add(1100 * time.Millisecond))
	assert.True(t, allowed, "one token refilled after a second")

	allowed, _, _, _ = bucket.take(start.Add(1200 * time.Millisecond))
	assert.False(t, allowed)

	// Refill never exceeds capacity.
	_, remaining, _, _ := bucket.take(start.Add(time.Hour))
	assert.Equal(t, 9, remaining)
}

func TestLimiter_Allow(t *testing.T) {
	clock := newFakeClock()
	limiter := NewLimiter(&Config{Enabled: true, DefaultLimit: 10, DefaultWindow: time.Minute}, WithClock(clock.Now))
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/icons", "GET")
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 10, info.Limit)
		assert.Equal(t, 9-i, info.Remaining)
	}

	allowed, info := limiter.Allow("127.0.0.1", "/icons", "GET")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.InDelta(t, 6.0, info.RetryAfter.Seconds(), 0.01, "one token per 6s at 10/min")

	clock.Advance(7 * time.Second)
	allowed, _ = limiter.Allow("127.0.0.1", "/icons", "GET")
	assert.True(t, allowed)
}

func TestLimiter_WhitelistBlacklist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"10.0.0.1": true},
		Blacklist:     map[string]bool{"10.0.0.2": true},
	})
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, info := limiter.Allow("10.0.0.1", "/decks", "POST")
		require.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}

	allowed, _ := limiter.Allow("10.0.0.2", "/health", "GET")
	assert.False(t, allowed, "blacklist wins over the health exemption")
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/decks", "POST")
		require.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}
	assert.Equal(t, 0, limiter.Len())
}

func TestLimiter_EndpointSpecific(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/sessions/{id}/swipe", Method: "POST", Limit: 5, Window: time.Hour, Burst: 5},
		},
	}, WithClock(newFakeClock().Now))
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		// Different session ids share the client's swipe bucket.
		allowed, info := limiter.Allow("127.0.0.1", fmt.Sprintf("/sessions/s%d/swipe", i), "POST")
		require.True(t, allowed)
		assert.Equal(t, 5, info.Limit)
	}

	allowed, _ := limiter.Allow("127.0.0.1", "/sessions/other/swipe", "POST")
	assert.False(t, allowed)

	allowed, _ = limiter.Allow("127.0.0.2", "/sessions/other/swipe", "POST")
	assert.True(t, allowed, "other clients have their own bucket")

	allowed, info := limiter.Allow("127.0.0.1", "/sessions/other", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Minute})
	defer limiter.Stop()

	for i := 0; i < 20; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, DefaultLimit: 100, DefaultWindow: time.Minute}, WithClock(newFakeClock().Now))
	defer limiter.Stop()

	var wg sync.WaitGroup
	var allowedCount atomic.Int64
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := limiter.Allow("127.0.0.1", "/personalities", "GET"); allowed {
				allowedCount.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(100), allowedCount.Load())
}

func TestLimiter_Prune(t *testing.T) {
	clock := newFakeClock()
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
		IdleTimeout:   10 * time.Minute,
	}, WithClock(clock.Now))
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		limiter.Allow(fmt.Sprintf("127.0.0.%d", i+1), "/icons", "GET")
	}
	require.Equal(t, 10, limiter.Len())

	clock.Advance(6 * time.Minute)
	for i := 0; i < 5; i++ {
		limiter.Allow(fmt.Sprintf("127.0.0.%d", i+1), "/icons", "GET")
	}

	clock.Advance(6 * time.Minute)
	assert.Equal(t, 5, limiter.Prune())
	assert.Equal(t, 5, limiter.Len())
}

func TestLimiter_Burst(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/decks", Method: "POST", Limit: 10, Window: time.Minute, Burst: 5},
		},
	}, WithClock(newFakeClock().Now))
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/decks", "POST")
		require.True(t, allowed)
	}
	allowed, _ := limiter.Allow("127.0.0.1", "/decks", "POST")
	assert.False(t, allowed)
}

func TestNewLimiter_NilConfig(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()
	limiter.Stop()

	allowed, info := limiter.Allow("127.0.0.1", "/icons", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	tests := []struct {
		path, method string
		wantPath     string
	}{
		{"/sessions/abc-123/swipe", "POST", "/sessions/{id}/swipe"},
		{"/sessions/abc-123/undo", "POST", "/sessions/{id}/undo"},
		{"/sessions", "POST", "/sessions"},
		{"/sessions/", "POST", "/sessions"},
		{"/api/images", "GET", "/api/images"},
		{"/health", "GET", "/health"},
		{"/sessions/abc-123", "GET", ""},
		{"/sessions//swipe", "POST", ""},
		{"/decks", "GET", ""},
		{"/unknown", "POST", ""},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantPath == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantPath, got.Path)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "42")
	t.Setenv("RATE_LIMIT_WHITELIST", "1.1.1.1, 2.2.2.2")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "bogus")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 42, cfg.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.DefaultWindow)
	assert.True(t, cfg.Whitelist["2.2.2.2"])
	assert.NotEmpty(t, cfg.EndpointConfigs)

	t.Setenv("RATE_LIMIT_ENABLED", "false")
	assert.False(t, LoadConfig().Enabled)
}
