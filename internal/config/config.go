// Package config loads service settings from environment variables.
package config

import (
	"os"
	"strconv"
	"time"

	"sales-analytics/pkg/utils"
)

// Config holds the runtime settings for the analytics server.
type Config struct {
	ListenAddr     string        // HTTP listen address (default ":8080")
	DBPath         string        // sqlite upload history file (default "analytics.db")
	SessionTTL     time.Duration // idle session eviction threshold (default 1h)
	SweepInterval  time.Duration // how often idle sessions are collected (default 5m)
	MaxUploadBytes int64         // multipart body cap (default 50 MiB)
}

// LoadFromEnv reads the environment and fills in defaults for anything
// unset. Malformed values fall back to the default rather than failing
// startup.
func LoadFromEnv() *Config {
	cfg := &Config{
		ListenAddr:     os.Getenv("LISTEN_ADDR"),
		DBPath:         os.Getenv("DB_PATH"),
		SessionTTL:     utils.ParseDuration(os.Getenv("SESSION_TTL"), time.Hour),
		SweepInterval:  utils.ParseDuration(os.Getenv("SESSION_SWEEP_INTERVAL"), 5*time.Minute),
		MaxUploadBytes: 50 << 20,
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "analytics.db"
	}
	if v := os.Getenv("MAX_UPLOAD_MB"); v != "" {
		if mb, err := strconv.ParseInt(v, 10, 64); err == nil && mb > 0 {
			cfg.MaxUploadBytes = mb << 20
		}
	}
	return cfg
}
