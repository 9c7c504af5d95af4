package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BACKEND_URL", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("APP_ENV", "")

	cfg := Load()

	assert.Equal(t, "https://barbing-salon-api.onrender.com", cfg.BackendURL)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://localhost:9000")
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("APP_ENV", "production")
	t.Setenv("REDIS_DB", "2")

	cfg := Load()

	assert.Equal(t, "http://localhost:9000", cfg.BackendURL)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 2, cfg.RedisDB)
}

func TestLoadBadInt(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	assert.Equal(t, 0, Load().RedisDB)
}
