// Package config reads the tool's settings from a .env file and the
// environment.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath   string
	Addr     string
	LogLevel string
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying defaults when values are missing.
func Load() Config {
	// Ignore error so the tool still runs when no .env exists.
	_ = godotenv.Load()

	return Config{
		DBPath:   envOr("SHOGISTATS_DB", defaultDBPath()),
		Addr:     envOr("SHOGISTATS_ADDR", ":8080"),
		LogLevel: envOr("SHOGISTATS_LOG_LEVEL", "INFO"),
	}
}

// Validate reports configuration that cannot work at all.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("database path must not be empty")
	}
	if c.Addr == "" {
		return errors.New("listen address must not be empty")
	}
	return nil
}

// defaultDBPath places the store under the user's home directory, falling
// back to the working directory when home is unknown.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "shogistats.db"
	}
	return filepath.Join(home, ".shogistats", "records.db")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
