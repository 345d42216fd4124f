// Package config maps environment variables onto the typed application
// configuration. A .env file, when present, is loaded by main before this
// runs.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// --- Server ---
	Port           int    `envconfig:"PORT" default:"5300"`
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	// Single-user gate; empty means open (local deployment).
	DeviceToken string `envconfig:"DEVICE_TOKEN"`

	// --- Storage ---
	DatabasePath string `envconfig:"DATABASE_PATH" default:"./eco-garden.db"`

	// --- Backup ---
	BackupSheetURL  string `envconfig:"BACKUP_SHEET_URL"`
	BackupQueueSize int    `envconfig:"BACKUP_QUEUE_SIZE" default:"16"`

	// --- Logging ---
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
