package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the limit for one route pattern.
type EndpointConfig struct {
	Path   string // route pattern, e.g. /sessions/{id}/swipe
	Method string
	Limit  int           // requests per Window
	Window time.Duration
	Burst  int // bucket capacity; defaults to Limit
}

// LoadConfig builds a Config from RATE_LIMIT_* environment variables.
func LoadConfig() *Config {
	if !envBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}
	return &Config{
		Enabled:         true,
		DefaultLimit:    envInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   envDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: envDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-route limits for the quiz API.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Calls that reach external APIs.
		{Path: "/api/images", Method: "GET", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/api/sports/roster", Method: "GET", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/api/sports/roster/cache", Method: "DELETE", Limit: 5, Window: time.Minute, Burst: 1},

		// Deck generation.
		{Path: "/decks", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/sessions", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},

		// Swiping is fast; allow a card a second with room for quick flicks.
		{Path: "/sessions/{id}/swipe", Method: "POST", Limit: 600, Window: time.Minute, Burst: 60},
		{Path: "/sessions/{id}/skip", Method: "POST", Limit: 600, Window: time.Minute, Burst: 60},
		{Path: "/sessions/{id}/undo", Method: "POST", Limit: 300, Window: time.Minute, Burst: 30},

		{Path: "/results", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/cards/explain", Method: "POST", Limit: 300, Window: time.Minute, Burst: 50},
	}
}

func envInt(key string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return def
}

func envBool(key string, def bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return def
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
