package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("SESSION_SWEEP_INTERVAL", "")
	t.Setenv("MAX_UPLOAD_MB", "")

	cfg := LoadFromEnv()

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "analytics.db", cfg.DBPath)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, 5*time.Minute, cfg.SweepInterval)
	assert.Equal(t, int64(50<<20), cfg.MaxUploadBytes)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9999")
	t.Setenv("DB_PATH", "/tmp/history.db")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("SESSION_SWEEP_INTERVAL", "1m")
	t.Setenv("MAX_UPLOAD_MB", "10")

	cfg := LoadFromEnv()

	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, "/tmp/history.db", cfg.DBPath)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, time.Minute, cfg.SweepInterval)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
}

func TestLoadFromEnvMalformedFallsBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "not-a-duration")
	t.Setenv("MAX_UPLOAD_MB", "-3")

	cfg := LoadFromEnv()

	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, int64(50<<20), cfg.MaxUploadBytes)
}
