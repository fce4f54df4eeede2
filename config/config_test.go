package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "http://localhost:3001", cfg.DirectoryAPIURL)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, time.Minute, cfg.HealthCheckInterval)
	assert.Equal(t, 100, cfg.MaxRequestsPerMin)
	assert.Equal(t, 10, cfg.SubmitRequestsPerMin)
	assert.Empty(t, cfg.RedisAddr)
	assert.False(t, cfg.OtelEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("DIRECTORY_API_URL", "http://directory:8080")
	v.Set("FETCH_TIMEOUT", "3s")
	v.Set("ENV", "production")
	v.Set("REDIS_ADDR", "redis:6379")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "http://directory:8080", cfg.DirectoryAPIURL)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)

	AppConfig = cfg
	t.Cleanup(func() { AppConfig = Config{} })
	assert.True(t, IsProduction())
}
