package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseFile string        // Path to SQLite database file (default: ./cabbook.db)
	TokenSecret  string        // Required: HMAC secret for identity tokens; startup fails without it
	TokenTTL     time.Duration // Optional: identity token lifetime (default: 24h)
	Issuer       string        // Optional: issuer claim for tokens (default: cabbook)

	AdminEmail    string // Optional: admin bootstrap email; bootstrap is skipped when empty
	AdminPassword string // Optional: admin bootstrap password

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		DatabaseFile: getEnvOrDefault("CABBOOK_DATABASE_FILE", "cabbook.db"),
		TokenSecret:  os.Getenv("CABBOOK_TOKEN_SECRET"),
		TokenTTL:     getEnvDurationOrDefault("CABBOOK_TOKEN_TTL", 24*time.Hour),
		Issuer:       getEnvOrDefault("CABBOOK_ISSUER", "cabbook"),

		AdminEmail:    os.Getenv("CABBOOK_ADMIN_EMAIL"),
		AdminPassword: os.Getenv("CABBOOK_ADMIN_PASSWORD"),

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

	// Accept duration strings ("24h", "30m") or plain integer minutes.
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
