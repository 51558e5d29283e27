package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"top-sales-tracker/internal/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		constants.EnvStage,
		constants.EnvAPIPort,
		constants.EnvBlockspanBaseURL,
		constants.EnvBlockspanAPIKey,
		constants.EnvBlockspanAPIKeyARN,
		constants.EnvQueryTimeout,
		constants.EnvSessionIdleTTL,
		constants.EnvQueryRateLimit,
		constants.EnvQueryRateBurst,
		constants.EnvCORSAllowedOrigins,
		constants.EnvTrustedProxies,
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Stage)
	assert.Equal(t, ":8000", cfg.Addr())
	assert.Equal(t, "https://api.blockspan.com", cfg.BlockspanBaseURL)
	assert.Empty(t, cfg.BlockspanAPIKey)
	assert.Empty(t, cfg.BlockspanAPIKeyARN)
	assert.Equal(t, 30*time.Second, cfg.QueryTimeout)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTTL)
	assert.Equal(t, 1.0, cfg.QueryRateLimit)
	assert.Equal(t, 3, cfg.QueryRateBurst)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.TrustedProxies)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(constants.EnvStage, "prod")
	t.Setenv(constants.EnvAPIPort, "9090")
	t.Setenv(constants.EnvBlockspanAPIKey, "key-123")
	t.Setenv(constants.EnvQueryTimeout, "5s")
	t.Setenv(constants.EnvQueryRateLimit, "0.5")
	t.Setenv(constants.EnvCORSAllowedOrigins, "http://a.test, http://b.test,")
	t.Setenv(constants.EnvTrustedProxies, "10.0.0.0/8, 192.168.1.1")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "key-123", cfg.BlockspanAPIKey)
	assert.Equal(t, 5*time.Second, cfg.QueryTimeout)
	assert.Equal(t, 0.5, cfg.QueryRateLimit)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.1"}, cfg.TrustedProxies)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "timeout", key: constants.EnvQueryTimeout, value: "soon"},
		{name: "idle ttl", key: constants.EnvSessionIdleTTL, value: "forever"},
		{name: "rate", key: constants.EnvQueryRateLimit, value: "fast"},
		{name: "burst", key: constants.EnvQueryRateBurst, value: "many"},
		{name: "zero burst", key: constants.EnvQueryRateBurst, value: "0"},
		{name: "unknown stage", key: constants.EnvStage, value: "staging"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := FromEnv()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv(constants.EnvBlockspanAPIKey)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BLOCKSPAN_API_KEY=from-file\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.BlockspanAPIKey)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Stage)
}

func TestIsValidStage(t *testing.T) {
	for _, stage := range []string{"prod", "dev", "local", "test"} {
		assert.True(t, IsValidStage(stage), stage)
	}
	assert.False(t, IsValidStage("staging"))
	assert.False(t, IsValidStage(""))
}
