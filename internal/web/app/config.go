package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseFile   string        // Optional: path to SQLite audit database file (default: ./demopass.db)
	VersionFile    string        // Optional: path to version.json written by the build (default: ./version.json)
	MaxLength      int           // Optional: maximum credential length accepted by the API (default: 128)
	AuditRetention time.Duration // Optional: how long audit events are kept (default: 30 days)

	Env                  string        // Environment (local, staging, production) (default: local)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		DatabaseFile:   getEnvOrDefault("DEMOPASS_DATABASE_FILE", "demopass.db"),
		VersionFile:    getEnvOrDefault("DEMOPASS_VERSION_FILE", "version.json"),
		MaxLength:      getEnvIntOrDefault("DEMOPASS_MAX_LENGTH", 0), // 0 falls back to the service default
		AuditRetention: getEnvDurationOrDefault("DEMOPASS_AUDIT_RETENTION", 30*24*time.Hour),

		Env:                  getEnvOrDefault("DEPLOY_ENV", "local"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
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

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
