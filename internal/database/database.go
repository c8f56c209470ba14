package database

import (
	"fmt"
	"time"

	"sitedesk/internal/logger"
	"sitedesk/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// allModels is the list of GORM models that make up the schema.
var allModels = []interface{}{
	&models.Project{},
	&models.Partner{},
	&models.ProgressStage{},
	&models.Transaction{},
	&models.SiteReport{},
	&models.ReportItem{},
	&models.InventoryItem{},
	&models.PurchaseRequest{},
}

// Manager handles database operations
type Manager struct {
	db *gorm.DB
}

// NewManager creates a new database manager for the configured driver.
func NewManager(config *Config) (*Manager, error) {
	var db *gorm.DB
	var err error

	switch config.Driver {
	case "postgres":
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  config.DSN(),
			PreferSimpleProtocol: true, // Required for pooled connection proxies; harmless for direct connections
		}), &gorm.Config{})
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(config.SQLitePath), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{db: db}, nil
}

// Migrate brings the schema up to date for all models.
func (m *Manager) Migrate() error {
	logger.Get().Info("Running database migrations...")

	if err := m.db.AutoMigrate(allModels...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}
