package infra

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront/internal/model"
)

// NewDatabase opens the Postgres connection pool and runs migrations.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := db.AutoMigrate(
		&model.Role{},
		&model.Status{},
		&model.Brand{},
		&model.Category{},
		&model.SubCategory{},
		&model.Section{},
		&model.User{},
		&model.Address{},
		&model.Product{},
		&model.Image{},
		&model.Order{},
		&model.Item{},
	); err != nil {
		return nil, err
	}

	log.Info().Msg("database connected and migrated")
	return db, nil
}
