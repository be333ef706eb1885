package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	Environment   string
	DatabaseDSN   string
	JWTSecret     string
	JWTExpiry     int64
	LogLevel      string
	SeedOnStartup bool
	AdminEmail    string
	AdminUsername string
	DevTokens     bool
}

const defaultJWTSecret = "your-secret-key"

func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		DatabaseDSN:   getEnv("DATABASE_DSN", ""),
		JWTSecret:     getEnv("JWT_SECRET", defaultJWTSecret),
		JWTExpiry:     getEnvAsInt64("JWT_EXPIRY", 24*60*60), // 24 hours
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		SeedOnStartup: getEnvAsBool("SEED_ON_STARTUP", true),
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		DevTokens:     getEnvAsBool("DEV_TOKENS", false),
	}

	if !config.IsDevelopment() && (config.JWTSecret == "" || config.JWTSecret == defaultJWTSecret) {
		return nil, errors.New("JWT_SECRET must be set outside development")
	}

	return config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// DevTokensEnabled reports whether the unauthenticated token endpoint may be
// served. It needs DEV_TOKENS=true and a development environment.
func (c *Config) DevTokensEnabled() bool {
	return c.DevTokens && c.IsDevelopment()
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return defaultValue
}
