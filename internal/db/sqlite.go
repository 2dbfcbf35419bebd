package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"desguace-service/internal/config"
)

// New opens the embedded database, enables foreign-key enforcement and runs
// the schema migrations. Any failure here is fatal to startup and is returned
// to the caller.
func New(cfg *config.Config, log zerolog.Logger) (*Store, error) {
	gormDB, err := gorm.Open(sqlite.Open(cfg.DB.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %q: %w", cfg.DB.Path, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	// Single logical writer: one pooled connection, the engine serializes
	// everything behind it. Also keeps the foreign_keys pragma and :memory:
	// databases bound to the same connection.
	sqlDB.SetMaxOpenConns(1)

	if err := gormDB.Exec("PRAGMA foreign_keys = ON;").Error; err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(gormDB); err != nil {
		return nil, err
	}

	log.Info().Str("path", cfg.DB.Path).Msg("database initialized")

	return &Store{db: gormDB, log: log}, nil
}
