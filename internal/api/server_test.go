package api_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/tilegame-go/internal/api"
)

func envOf(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestServerConfigApplyEnv(t *testing.T) {
	cfg := api.DefaultServerConfig()
	require.NoError(t, cfg.ApplyEnv(envOf(map[string]string{"HOST": "127.0.0.1", "PORT": "9090"})))

	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
}

func TestServerConfigDefaultsWithoutEnv(t *testing.T) {
	cfg := api.DefaultServerConfig()
	require.NoError(t, cfg.ApplyEnv(envOf(nil)))

	assert.Equal(t, ":8080", cfg.Addr())
}

func TestServerConfigRejectsBadPort(t *testing.T) {
	for _, port := range []string{"http", "-1", "70000"} {
		cfg := api.DefaultServerConfig()
		err := cfg.ApplyEnv(envOf(map[string]string{"PORT": port}))
		assert.Error(t, err, port)
		assert.Equal(t, 8080, cfg.Port)
	}
}
