// Package config loads bizdesk configuration from the environment, an optional
// .env file and an optional YAML file named by BIZDESK_CONFIG.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration for both the CLI client and the
// reference collaborator.
type Config struct {
	Env      string
	LogLevel string

	// Client
	APIURL         string
	SessionPath    string
	RequestTimeout time.Duration
	PageSize       int

	// Collaborator server
	Port string

	// Database
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Seeding
	SeedData      bool
	AdminUsername string
	AdminPassword string
	AdminEmail    string
}

// PostgresURL returns the migrate-style connection URL.
func (c *Config) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// PostgresDSN returns the key/value connection string used by the gorm driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// Load loads configuration from environment variables and the optional config file.
func Load() (*Config, error) {
	// .env is optional; values already in the environment win.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path := os.Getenv("BIZDESK_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("BIZDESK_API_URL", "http://localhost:8080")
	v.SetDefault("BIZDESK_SESSION_PATH", defaultSessionPath())
	v.SetDefault("BIZDESK_REQUEST_TIMEOUT", "30s")
	v.SetDefault("BIZDESK_PAGE_SIZE", "20")

	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_PATH", "bizdesk.db")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "bizdesk")
	v.SetDefault("DB_PASSWORD", "bizdesk")
	v.SetDefault("DB_NAME", "bizdesk")
	v.SetDefault("DB_SSLMODE", "disable")

	v.SetDefault("JWT_SECRET", "fallback-secret-key-for-dev-only")
	v.SetDefault("JWT_EXPIRES_IN", "24h")

	v.SetDefault("SEED_DATA", "false")
	v.SetDefault("ADMIN_EMAIL", "admin@example.com")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Env:      v.GetString("ENV"),
		LogLevel: strings.ToLower(v.GetString("LOG_LEVEL")),

		APIURL:      strings.TrimRight(v.GetString("BIZDESK_API_URL"), "/"),
		SessionPath: v.GetString("BIZDESK_SESSION_PATH"),

		Port: v.GetString("PORT"),

		DBDriver:   strings.ToLower(v.GetString("DB_DRIVER")),
		DBPath:     v.GetString("DB_PATH"),
		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBSSLMode:  v.GetString("DB_SSLMODE"),

		JWTSecret: v.GetString("JWT_SECRET"),

		AdminUsername: v.GetString("ADMIN_USERNAME"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),
		AdminEmail:    v.GetString("ADMIN_EMAIL"),
	}

	if err := validateLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	timeout, err := parsePositiveDuration("BIZDESK_REQUEST_TIMEOUT", v.GetString("BIZDESK_REQUEST_TIMEOUT"))
	if err != nil {
		return nil, err
	}
	cfg.RequestTimeout = timeout

	expires, err := parsePositiveDuration("JWT_EXPIRES_IN", v.GetString("JWT_EXPIRES_IN"))
	if err != nil {
		return nil, err
	}
	cfg.JWTExpirationDur = expires

	pageSize, err := strconv.Atoi(v.GetString("BIZDESK_PAGE_SIZE"))
	if err != nil || pageSize <= 0 {
		return nil, fmt.Errorf("invalid BIZDESK_PAGE_SIZE %q: must be a positive integer", v.GetString("BIZDESK_PAGE_SIZE"))
	}
	cfg.PageSize = pageSize

	seed, err := parseBool(v.GetString("SEED_DATA"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_DATA value: %w", err)
	}
	cfg.SeedData = seed

	switch cfg.DBDriver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("invalid DB_DRIVER %q: must be sqlite or postgres", cfg.DBDriver)
	}

	return cfg, nil
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".bizdesk", "session.db")
	}
	return filepath.Join(home, ".bizdesk", "session.db")
}

func validateLogLevel(s string) error {
	switch s {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid LOG_LEVEL %q: must be debug, info, warn, or error", s)
	}
}

func parsePositiveDuration(key, s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %v", key, d)
	}
	return d, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no", "":
		return false, nil
	default:
		return false, fmt.Errorf("must be true, false, 1, or 0, got %q", s)
	}
}
