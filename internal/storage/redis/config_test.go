package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestConfigFromEnv(t *testing.T) {
	cfg, err := ConfigFromEnv(env(map[string]string{
		"REDIS_URL":       "redis://cache:6379/2",
		"REDIS_POOL_SIZE": "4",
		"REDIS_TTL":       "48h",
	}))
	require.NoError(t, err)
	assert.Equal(t, "redis://cache:6379/2", cfg.URL)
	assert.Equal(t, 4, cfg.PoolSize)
	assert.Equal(t, 48*time.Hour, cfg.TTL)
	assert.Equal(t, DefaultConfig().MinIdleConns, cfg.MinIdleConns)
}

func TestConfigFromEnvNeedsURL(t *testing.T) {
	_, err := ConfigFromEnv(env(nil))
	assert.ErrorContains(t, err, "REDIS_URL")
}

func TestConfigFromEnvRejectsBadValues(t *testing.T) {
	for name, vars := range map[string]map[string]string{
		"pool": {"REDIS_URL": "redis://x:6379", "REDIS_POOL_SIZE": "0"},
		"ttl":  {"REDIS_URL": "redis://x:6379", "REDIS_TTL": "soon"},
	} {
		_, err := ConfigFromEnv(env(vars))
		assert.Error(t, err, name)
	}
}
