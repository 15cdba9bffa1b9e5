package database

import (
	"errors"
	"fmt"

	"github.com/lexofis/core/internal/config"
	"github.com/lexofis/core/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrUnconfigured is returned by write operations when no database
// connection string is configured. Read operations degrade instead.
var ErrUnconfigured = errors.New("database is not configured")

// Resolve opens a Postgres connection from config and runs auto-migration.
// A missing connection string is a valid state, not an error: the returned
// DB is nil and every dependent service treats that as the unconfigured store.
func Resolve(cfg *config.AppConfig, log *zap.Logger) (*gorm.DB, error) {
	if cfg.DatabaseURL == "" {
		log.Warn("database_url is not set; running with an unconfigured store")
		return nil, nil
	}

	logLevel := logger.Warn
	if cfg.IsDev() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}

// migrate runs GORM auto-migration for all models.
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ArticleModel{},
		&models.PracticeAreaModel{},
		&models.AppointmentModel{},
		&models.ContactMessageModel{},
	)
}
