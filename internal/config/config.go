// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ServerHost string `env:"CONSITE_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"CONSITE_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"CONSITE_ENV" envDefault:"development"`
	LogLevel   string `env:"CONSITE_LOG_LEVEL" envDefault:"info"`

	// Event log configuration
	EventLogSize int `env:"CONSITE_EVENT_LOG_SIZE" envDefault:"500"` // Max retained events

	// Seeding configuration
	DoSeed bool `env:"CONSITE_DO_SEED" envDefault:"false"` // Enable demo content seeding
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.ServerPort < 1 || cfg.ServerPort > 65535 {
		return nil, fmt.Errorf("CONSITE_SERVER_PORT must be in range 1-65535, got %d", cfg.ServerPort)
	}
	if cfg.EventLogSize < 1 {
		return nil, fmt.Errorf("CONSITE_EVENT_LOG_SIZE must be positive, got %d", cfg.EventLogSize)
	}

	return cfg, nil
}
