package db

import (
	"fmt"
	"os"

	migrate "github.com/golang-migrate/migrate/v4"
	// Blank imports register the database drivers and the file source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/diewo77/go-customers/internal/models"
)

// Open connects to the store described by dsn, choosing the driver from its
// scheme: postgres:// URLs use the PostgreSQL driver, anything else is a
// SQLite file path.
func Open(dsn string) (*gorm.DB, error) {
	dsn = NormalizeDSN(dsn)
	if dsn == "" {
		return nil, fmt.Errorf("empty DATABASE_DSN")
	}
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var dial gorm.Dialector
	if IsPostgres(dsn) {
		dial = postgres.Open(dsn)
	} else {
		dial = sqlite.Open(dsn)
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Exec("SELECT 1").Error; err != nil {
		return nil, fmt.Errorf("db ping failed: %w", err)
	}
	return db, nil
}

// Migrate brings the schema up to date via GORM AutoMigrate.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Customer{}); err != nil {
		return fmt.Errorf("automigrate customers: %w", err)
	}
	return nil
}

// MigrateSQL executes the SQL migrations in ./migrations using golang-migrate.
// Used instead of AutoMigrate when MIGRATIONS=1, so deployments control the
// schema explicitly.
func MigrateSQL(dsn string) error {
	m, err := migrate.New("file://migrations", MigrateURL(dsn))
	if err != nil {
		return err
	}
	defer func() {
		_, _ = m.Close()
	}()
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
