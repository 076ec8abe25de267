package app

import (
	"io"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer string // Optional: issuer claim for tokens (default: bartab-blog)

	DatabaseDriver string // Optional: sqlite or postgres (default: sqlite)
	DatabaseFile   string // Optional: path to SQLite database file (default: ./blog.db)
	DatabaseURL    string // Required for postgres: pgx connection string

	SigningKeyFile string // Optional: PEM Ed25519 key, generated on first start. Empty means ephemeral keys
	NumKeys        int    // Optional: number of ephemeral signing keys (default: 1, max: 10)

	AccessTokenTTL  time.Duration // Optional: access token lifetime (default: 1h)
	RefreshTokenTTL time.Duration // Optional: refresh token lifetime (default: 1h)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	LogOutput           io.Writer     // Optional: log destination (default: stdout)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:              getEnvOrDefault("BLOG_ISSUER", "bartab-blog"),
		DatabaseDriver:      getEnvOrDefault("BLOG_DATABASE_DRIVER", "sqlite"),
		DatabaseFile:        getEnvOrDefault("BLOG_DATABASE_FILE", "blog.db"),
		DatabaseURL:         os.Getenv("BLOG_DATABASE_URL"),
		SigningKeyFile:      os.Getenv("BLOG_SIGNING_KEY_FILE"),
		NumKeys:             getEnvIntOrDefault("BLOG_NUM_KEYS", 1),
		AccessTokenTTL:      getEnvDurationOrDefault("BLOG_ACCESS_TOKEN_TTL", time.Hour),
		RefreshTokenTTL:     getEnvDurationOrDefault("BLOG_REFRESH_TOKEN_TTL", time.Hour),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
