// Package db opens and migrates the relational store behind gorm.
package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authentity "shop_backend/internal/feature/auth/domain/entity"
	cartentity "shop_backend/internal/feature/cart/domain/entity"
	catalogentity "shop_backend/internal/feature/catalog/domain/entity"
	orderentity "shop_backend/internal/feature/order/domain/entity"
	"shop_backend/internal/platform/config"
)

const (
	connectDeadline = 60 * time.Second
	connectBackoff  = 3 * time.Second
)

// Open opens a gorm connection with driver error translation enabled, so
// duplicate and foreign-key violations surface as gorm sentinel errors.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
}

// OpenPostgres connects to PostgreSQL, retrying until the database accepts
// connections or the deadline passes.
func OpenPostgres(cfg config.DBConfig) (*gorm.DB, error) {
	var (
		gdb *gorm.DB
		err error
	)

	deadline := time.Now().Add(connectDeadline)
	for {
		gdb, err = Open(postgres.Open(cfg.URL))
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("connect database after %s: %w", connectDeadline, err)
		}
		slog.Warn("database connect failed, retrying", "error", err)
		time.Sleep(connectBackoff)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return gdb, nil
}

// Models lists every persisted entity in dependency order.
func Models() []any {
	return []any{
		&authentity.User{},
		&catalogentity.Country{},
		&catalogentity.Category{},
		&catalogentity.Brand{},
		&catalogentity.CategoryBrand{},
		&catalogentity.Product{},
		&cartentity.Cart{},
		&cartentity.CartLine{},
		&orderentity.Order{},
		&orderentity.OrderLine{},
	}
}

// indexes are expression indexes AutoMigrate cannot derive from tags.
var indexes = []string{
	"CREATE UNIQUE INDEX IF NOT EXISTS idx_brands_name_lower ON brands (LOWER(name))",
}

// Migrate creates or updates the schema.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	for _, stmt := range indexes {
		if err := gdb.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migrate index: %w", err)
		}
	}
	return nil
}
