// Package config handles loading runtime configuration for the Golf Tour API.
// Values are read from environment variables so the same binary runs unchanged in
// development, staging and production; a local .env file is honoured in development.
package config

import (
	"os"

	// godotenv reads a .env file and loads its key=value pairs into the process environment.
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values for the application.
type Config struct {
	Port           string // TCP port the HTTP server listens on (e.g. "8080")
	DatabaseURL    string // PostgreSQL connection string
	JWTSecret      string // HMAC secret used to verify bearer tokens
	Env            string // "development", "staging" or "production"
	LogLevel       string // logrus level name: debug, info, warn, error
	MigrationsPath string // Source URL for golang-migrate (e.g. "file://migrations")
}

// Load reads configuration from environment variables and returns a populated Config.
// A missing .env file is fine: real environment variables are used instead.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           getenv("PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		Env:            getenv("ENV", "development"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		MigrationsPath: getenv("MIGRATIONS_PATH", "file://migrations"),
	}
}

// IsDevelopment reports whether the server runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// getenv returns the value of an environment variable, or fallback when it is unset or empty.
func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
