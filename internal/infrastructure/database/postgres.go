package database

import (
	"fmt"
	"log"

	"github.com/seyalworks/tailorshop-api/internal/config"
	"github.com/seyalworks/tailorshop-api/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.Customer{},
		&entity.CatalogItem{},
		&entity.Bill{},
		&entity.BillItem{},
		&entity.WorkOrder{},
		&entity.Shop{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData makes sure the singleton shop profile row exists.
func SeedDefaultData(db *gorm.DB, cfg *config.ShopConfig) error {
	var count int64
	if err := db.Model(&entity.Shop{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	shop := entity.Shop{
		Name:        cfg.Name,
		Address:     cfg.Address,
		PhoneNumber: cfg.PhoneNumber,
	}
	if err := db.Create(&shop).Error; err != nil {
		return fmt.Errorf("failed to seed shop profile: %w", err)
	}
	log.Printf("Seeded shop profile: %s", shop.Name)
	return nil
}
