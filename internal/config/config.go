package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	AppURL  string
	Port    string

	// Backend API
	BackendAPIURL  string
	WearableAPIURL string
	HTTPTimeout    time.Duration

	// Database (session storage, default: sqlite)
	DBDriver     string
	DBConnection string

	// Security
	JWTSecret     string
	SessionExpiry time.Duration

	// Login lockout
	LoginMaxAttempts int
	LoginLockout     time.Duration

	// Notifications
	NotificationPollInterval time.Duration

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "FitLife"),
		AppEnv:  envRequired("APP_ENV"), // Required: 'development' or 'production'
		AppURL:  envRequired("APP_URL"),
		Port:    envString("PORT", "8090"),

		// Backend API
		BackendAPIURL:  envRequired("BACKEND_API_URL"),
		WearableAPIURL: envString("WEARABLE_API_URL", "http://localhost:8080"),
		HTTPTimeout:    envDuration("HTTP_TIMEOUT", 15*time.Second),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/fitlife.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// Security
		JWTSecret:     envRequired("JWT_SECRET"),
		SessionExpiry: envDuration("SESSION_EXPIRY", 168*time.Hour), // 7 days

		// Login lockout
		LoginMaxAttempts: envInt("LOGIN_MAX_ATTEMPTS", 5),
		LoginLockout:     envDuration("LOGIN_LOCKOUT", 5*time.Minute),

		// Notifications
		NotificationPollInterval: envDuration("NOTIFICATION_POLL_INTERVAL", 30*time.Second),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),
	}

	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// LoadClient loads the subset of settings used by the command-line client.
// Server secrets are never required here.
func LoadClient() *Config {
	err := godotenv.Load()
	if err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	return &Config{
		AppName:                  envString("APP_NAME", "FitLife"),
		AppEnv:                   envString("APP_ENV", "development"),
		BackendAPIURL:            envString("BACKEND_API_URL", "http://localhost:3000"),
		WearableAPIURL:           envString("WEARABLE_API_URL", "http://localhost:8080"),
		HTTPTimeout:              envDuration("HTTP_TIMEOUT", 15*time.Second),
		DBDriver:                 "sqlite",
		DBConnection:             envString("FITLIFE_SESSION_DB", defaultClientDB()),
		SessionExpiry:            envDuration("SESSION_EXPIRY", 168*time.Hour),
		LoginMaxAttempts:         envInt("LOGIN_MAX_ATTEMPTS", 5),
		LoginLockout:             envDuration("LOGIN_LOCKOUT", 5*time.Minute),
		NotificationPollInterval: envDuration("NOTIFICATION_POLL_INTERVAL", 30*time.Second),
		SentryDSN:                envString("SENTRY_DSN", ""),
	}
}

func defaultClientDB() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "fitlife", "session.db")
}

// validateProduction ensures settings that are only optional in development are sane.
func validateProduction(cfg *Config) {
	if len(cfg.JWTSecret) < 32 {
		slog.Error("production deployment requires a JWT_SECRET of at least 32 characters")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// SecureCookies reports whether cookies must carry the Secure flag.
func (c *Config) SecureCookies() bool {
	return envBool("SECURE_COOKIES", c.IsProduction())
}

// Sanitized returns a copy of the config with only public/safe fields.
// Safe to expose in ctx and templates.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName: c.AppName,
		AppEnv:  c.AppEnv,
		AppURL:  c.AppURL,
		Port:    c.Port,

		NotificationPollInterval: c.NotificationPollInterval,
	}
}
