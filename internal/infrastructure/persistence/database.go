package persistence

import (
	"fmt"
	"time"

	"github.com/financespro/backend/internal/infrastructure/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Pool sizing for a single-process deployment. Values from config take
// precedence; zeroes fall back to these.
const (
	defaultMaxOpenConns    = 25
	defaultMaxIdleConns    = 5
	defaultConnMaxLifetime = 30 * time.Minute
	defaultConnMaxIdleTime = 10 * time.Minute
)

// Database wraps the process-wide GORM connection pool. cmd/server builds
// it once and every repository shares it.
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the pool with SQL logging silenced, for tools like
// cmd/migrate that produce their own console output.
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	return NewDatabaseWithCustomLogger(cfg, logger.Default.LogMode(logger.Silent))
}

// NewDatabaseWithCustomLogger opens the pool with a caller-supplied GORM
// logger, typically the zap adapter.
func NewDatabaseWithCustomLogger(cfg *config.DatabaseConfig, gormLogger logger.Interface) (*Database, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormLogger,
		// Writes that need atomicity (invoice number allocation) open
		// their own transaction; the implicit per-write one is skipped.
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access connection pool: %w", err)
	}

	sqlDB.SetMaxOpenConns(poolSize(cfg.MaxOpenConns, defaultMaxOpenConns))
	sqlDB.SetMaxIdleConns(poolSize(cfg.MaxIdleConns, defaultMaxIdleConns))
	sqlDB.SetConnMaxLifetime(poolMinutes(cfg.ConnMaxLifetime, defaultConnMaxLifetime))
	sqlDB.SetConnMaxIdleTime(poolMinutes(cfg.ConnMaxIdleTime, defaultConnMaxIdleTime))

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Database{DB: db}, nil
}

func poolSize(configured, fallback int) int {
	if configured > 0 {
		return configured
	}
	return fallback
}

func poolMinutes(configured int, fallback time.Duration) time.Duration {
	if configured > 0 {
		return time.Duration(configured) * time.Minute
	}
	return fallback
}

// Ping checks that the pool can still reach the database
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("access connection pool: %w", err)
	}
	return sqlDB.Ping()
}

// Close drains and closes the connection pool
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("access connection pool: %w", err)
	}
	return sqlDB.Close()
}
