package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
// All sensitive values are loaded from the environment (.env in development).
type Config struct {
	// Server configuration
	Environment string
	ServerPort  string

	// DB configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	// Application settings
	BaseURL            string        // Public base URL for profile pages and QR codes
	JWTSecret          string        // HMAC secret for session tokens
	JWTExpiry          time.Duration // Token lifetime
	RateLimitPerMinute int           // Rate limit per IP address
	AnalyticsWindow    int           // Trailing days covered by the click histogram
	AnalyticsTopN      int           // Entries kept in referrer/country rankings
}

// LoadConfig loads configuration from environment variables.
// Returns error if required environment variables are missing.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		// Server defaults
		Environment: getEnv("ENVIRONMENT", "development"),
		ServerPort:  getEnv("SERVER_PORT", "8082"),

		// Database configuration
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "linkfolio"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		// Redis configuration
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		CacheTTL:      time.Duration(getEnvAsInt("CACHE_TTL_SECONDS", 300)) * time.Second,

		// Application settings
		BaseURL:            getEnv("BASE_URL", "http://localhost:8082"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		JWTExpiry:          time.Duration(getEnvAsInt("JWT_EXPIRY_HOURS", 72)) * time.Hour,
		RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 120),
		AnalyticsWindow:    getEnvAsInt("ANALYTICS_WINDOW_DAYS", 30),
		AnalyticsTopN:      getEnvAsInt("ANALYTICS_TOP_N", 5),
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if all required configuration is present and valid
func (c *Config) Validate() error {
	// Validate database password in production
	if c.Environment == "production" && c.DBPassword == "" {
		return fmt.Errorf("DB_PASSWORD is required in production")
	}

	if c.BaseURL == "" {
		return fmt.Errorf("BASE_URL is required")
	}

	// Tokens are unverifiable without a secret
	if c.JWTSecret == "" {
		if c.Environment == "production" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		c.JWTSecret = "dev-only-insecure-secret"
	}

	if c.AnalyticsWindow <= 0 {
		return fmt.Errorf("ANALYTICS_WINDOW_DAYS must be positive, got %d", c.AnalyticsWindow)
	}

	if c.AnalyticsTopN <= 0 {
		return fmt.Errorf("ANALYTICS_TOP_N must be positive, got %d", c.AnalyticsTopN)
	}

	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Helper functions for reading environment variables

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt reads an environment variable as integer or returns default
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
