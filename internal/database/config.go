package database

import "bizdesk/internal/config"

// Driver names accepted by NewManager.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds database configuration
type Config struct {
	Driver string
	// Path is the sqlite database file, or ":memory:".
	Path string
	// DSN is the postgres key/value connection string used by gorm.
	DSN string
	// URL is the postgres connection URL used by migrations.
	URL string
}

// NewConfig takes the database settings from the application config.
func NewConfig(cfg *config.Config) Config {
	return Config{
		Driver: cfg.DBDriver,
		Path:   cfg.DBPath,
		DSN:    cfg.PostgresDSN(),
		URL:    cfg.PostgresURL(),
	}
}
