package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"society-billing-svc/internal/config"
	"society-billing-svc/internal/models"
)

// Database wraps the gorm handle so its lifecycle is explicit: opened once
// at startup, passed into the repositories, closed at shutdown.
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens a PostgreSQL connection. TranslateError is enabled so
// unique-constraint violations surface as gorm.ErrDuplicatedKey instead of
// driver-specific errors.
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Database{DB: db}, nil
}

// AutoMigrate creates or updates the residents and bills tables.
func (d *Database) AutoMigrate() error {
	return d.DB.AutoMigrate(
		&models.Resident{},
		&models.Bill{},
	)
}

// Close closes the underlying connection pool.
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
