package redis

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Config holds the Redis connection and key expiry settings
type Config struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration

	// TTL applies to a game and its board alike, refreshed on every save.
	// Zero keeps them until deleted.
	TTL time.Duration
}

// DefaultConfig keeps an idle game for a week
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		TTL:          7 * 24 * time.Hour,
	}
}

// ConfigFromEnv reads REDIS_URL, which is required, and the optional
// REDIS_POOL_SIZE and REDIS_TTL (a Go duration such as "48h")
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	cfg.URL = getenv("REDIS_URL")
	if cfg.URL == "" {
		return cfg, errors.New("REDIS_URL is required for redis storage")
	}
	if v := getenv("REDIS_POOL_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return cfg, fmt.Errorf("invalid REDIS_POOL_SIZE %q", v)
		}
		cfg.PoolSize = n
	}
	if v := getenv("REDIS_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl < 0 {
			return cfg, fmt.Errorf("invalid REDIS_TTL %q", v)
		}
		cfg.TTL = ttl
	}
	return cfg, nil
}
