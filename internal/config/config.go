// Package config loads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the settings for the familytree binary.
type Config struct {
	Port         string
	LogLevel     string
	LogFormat    string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Port:         "8080",
		LogLevel:     "info",
		LogFormat:    "text",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

// Load reads FAMILYTREE_* variables on top of Default. The given env files
// are loaded first without overriding variables already set; with no files
// a missing ./.env is not an error.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		return Config{}, fmt.Errorf("load env files: %w", err)
	}

	cfg := Default()
	cfg.Port = getEnvOrDefault("FAMILYTREE_PORT", cfg.Port)
	cfg.LogLevel = getEnvOrDefault("FAMILYTREE_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnvOrDefault("FAMILYTREE_LOG_FORMAT", cfg.LogFormat)

	var err error
	if cfg.ReadTimeout, err = getEnvDurationOrDefault("FAMILYTREE_READ_TIMEOUT", cfg.ReadTimeout); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = getEnvDurationOrDefault("FAMILYTREE_WRITE_TIMEOUT", cfg.WriteTimeout); err != nil {
		return Config{}, err
	}
	if cfg.IdleTimeout, err = getEnvDurationOrDefault("FAMILYTREE_IDLE_TIMEOUT", cfg.IdleTimeout); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the port is a usable TCP port number.
func (c Config) Validate() error {
	n, err := strconv.Atoi(c.Port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("invalid port %q: must be 1-65535", c.Port)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvDurationOrDefault(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive duration", key, v)
	}
	return d, nil
}
