package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the cajachica service
type Config struct {
	// Server
	Port     string
	Host     string
	LogLevel string

	// Database
	DatabaseURL      string
	DatabaseHost     string
	DatabasePort     string
	DatabaseName     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseSSLMode  string

	// Kratos
	KratosPublicURL string
	KratosAdminURL  string
	KratosSchemaID  string

	// Behavior
	ResolveTimeout    time.Duration
	MovementListLimit int
	EnableRateLimit   bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "9600")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Database configuration
	config.DatabaseURL = os.Getenv("DATABASE_URL")
	if config.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	config.DatabaseHost = getEnvOrDefault("DB_HOST", "cajachica-postgres")
	config.DatabasePort = getEnvOrDefault("DB_PORT", "5432")
	config.DatabaseName = getEnvOrDefault("DB_NAME", "cajachica_db")
	config.DatabaseUser = getEnvOrDefault("DB_USER", "cajachica_user")
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	if config.DatabasePassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", "require")

	// Kratos configuration
	config.KratosPublicURL = os.Getenv("KRATOS_PUBLIC_URL")
	if config.KratosPublicURL == "" {
		return nil, fmt.Errorf("KRATOS_PUBLIC_URL is required")
	}

	config.KratosAdminURL = os.Getenv("KRATOS_ADMIN_URL")
	if config.KratosAdminURL == "" {
		return nil, fmt.Errorf("KRATOS_ADMIN_URL is required")
	}

	config.KratosSchemaID = getEnvOrDefault("KRATOS_SCHEMA_ID", "default")

	// Behavior
	var err error
	resolveTimeoutStr := getEnvOrDefault("RESOLVE_TIMEOUT", "15s")
	config.ResolveTimeout, err = time.ParseDuration(resolveTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid RESOLVE_TIMEOUT: %w", err)
	}

	limitStr := getEnvOrDefault("MOVEMENT_LIST_LIMIT", "50")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		return nil, fmt.Errorf("invalid MOVEMENT_LIST_LIMIT: %s", limitStr)
	}
	config.MovementListLimit = limit

	config.EnableRateLimit = getBoolEnv("ENABLE_RATE_LIMIT", true)

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port out of range: %d", port)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	if c.ResolveTimeout <= 0 {
		return fmt.Errorf("resolve timeout must be positive")
	}

	return nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
