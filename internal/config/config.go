package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Record sources.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string

	// Records
	RecordSource  string // "file" or "postgres"
	ShortcutsFile string
	DatabaseURL   string

	// Redis, shared by the rate limiter when several instances run
	RedisURL string

	// Launching
	BrowserCommand string // Command line used to open URLs and paths, "{target}" marks the argument
	ActionKeyword  string // Host prefix prepended to narrowed queries

	// Suggestions
	SuggestionTimeout     time.Duration
	SuggestionLimit       int
	ProviderCheckInterval time.Duration // 0 disables the provider probe
	SessionIdleTTL        time.Duration

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// OIDC bearer token verification, disabled when OIDCIssuer is empty
	OIDCIssuer   string
	OIDCClientID string

	// Rate limiting
	RateLimitMax int // Requests per minute per client
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:                   getEnv("ENV", "development"),
		ServerAddr:            getEnv("SERVER_ADDR", "127.0.0.1:3030"),
		RecordSource:          getEnv("RECORD_SOURCE", SourceFile),
		ShortcutsFile:         getEnv("SHORTCUTS_FILE", "shortcuts.yaml"),
		DatabaseURL:           getEnv("DATABASE_URL", "postgres://localhost:5432/shortcuts?sslmode=disable"),
		RedisURL:              getEnv("REDIS_URL", ""),
		BrowserCommand:        getEnv("BROWSER_COMMAND", "xdg-open"),
		ActionKeyword:         getEnv("ACTION_KEYWORD", ""),
		SuggestionTimeout:     getEnvDuration("SUGGESTION_TIMEOUT", 2*time.Second),
		SuggestionLimit:       getEnvInt("SUGGESTION_LIMIT", 8),
		ProviderCheckInterval: getEnvDuration("PROVIDER_CHECK_INTERVAL", 10*time.Minute),
		SessionIdleTTL:        getEnvDuration("SESSION_IDLE_TTL", 30*time.Minute),
		CORSOrigins:           getEnv("CORS_ORIGINS", ""),
		OIDCIssuer:            getEnv("OIDC_ISSUER", ""),
		OIDCClientID:          getEnv("OIDC_CLIENT_ID", ""),
		RateLimitMax:          getEnvInt("RATE_LIMIT_MAX", 600),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// UsesDatabase returns true if records are read from Postgres.
func (c *Config) UsesDatabase() bool {
	return c.RecordSource == SourcePostgres
}

// OIDCEnabled returns true if API requests must carry a verified bearer token.
func (c *Config) OIDCEnabled() bool {
	return c.OIDCIssuer != "" && c.OIDCClientID != ""
}
