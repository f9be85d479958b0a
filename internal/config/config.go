package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage backend identifiers.
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

// Config holds the application configuration
type Config struct {
	Port           int
	LogLevel       string
	LogFormat      string
	Environment    string
	StorageBackend string // "file" or "sqlite"
	DataDir        string // file backend: directory for the save blob
	DBPath         string // sqlite backend: database file path
	TickInterval   time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		Environment:    getEnv("ENVIRONMENT", "dev"),
		StorageBackend: getEnv("STORAGE_BACKEND", StorageFile),
		DataDir:        getEnv("DATA_DIR", "data"),
		DBPath:         getEnv("DB_PATH", "data/tamacore.db"),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	tickStr := getEnv("TICK_INTERVAL_MS", "250")
	tickMs, err := strconv.Atoi(tickStr)
	if err != nil || tickMs <= 0 {
		return nil, fmt.Errorf("invalid TICK_INTERVAL_MS value %q", tickStr)
	}
	cfg.TickInterval = time.Duration(tickMs) * time.Millisecond

	if cfg.StorageBackend != StorageFile && cfg.StorageBackend != StorageSQLite {
		return nil, fmt.Errorf("invalid STORAGE_BACKEND value %q (want %q or %q)",
			cfg.StorageBackend, StorageFile, StorageSQLite)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
