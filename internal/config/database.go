package config

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the store for the configured driver. The server runs against
// Postgres; the CLI keeps a local SQLite file.
func Connect(ctx context.Context, driver, dsn string) error {
	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	case DriverPostgres, "":
		dialector = postgres.Open(dsn)
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	DB = db
	return nil
}
