// Package storage implements the persistence ports on gorm.
// Postgres backs production; sqlite backs tests and local runs.
package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config contains database connection settings.
type Config struct {
	// Driver selects the backend: "postgres" or "sqlite".
	Driver string

	// DSN is the driver-specific connection string. For sqlite this is
	// a file path, or ":memory:" for an in-memory database.
	DSN string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Store owns the database handle shared by the repositories.
// It is created once at startup and injected into each repository,
// never constructed ad hoc inside model code.
type Store struct {
	db *gorm.DB
}

// Open connects to the configured database and runs schema migration.
func Open(cfg Config) (*Store, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := migrate(db); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// migrate creates or updates the schema for all persisted records.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&skuRecord{},
		&quoteRecord{},
		&quoteItemRecord{},
		&chatSessionRecord{},
		&chatMessageRecord{},
	)
	if err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}

	return nil
}

// DB exposes the underlying handle for repository construction.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("getting sql.DB: %w", err)
	}

	return sqlDB.Close()
}

// Name returns the health check name for the database.
// Implements ports.HealthChecker.
func (s *Store) Name() string {
	return "database"
}

// Check pings the database. Implements ports.HealthChecker.
func (s *Store) Check(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}
