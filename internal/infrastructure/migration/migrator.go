// Package migration runs version-controlled SQL migrations with
// golang-migrate against the service database.
package migration

import (
	"database/sql"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"

	"rebanho/internal/shared/logger"
)

// Migrator applies versioned SQL migration scripts.
type Migrator struct {
	scriptsPath string
	logger      logger.Interface
}

// NewMigrator creates a new Migrator reading scripts from scriptsPath.
func NewMigrator(scriptsPath string, log logger.Interface) *Migrator {
	return &Migrator{
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration"),
	}
}

// Up applies all pending migrations.
func (m *Migrator) Up(db *gorm.DB) error {
	instance, err := m.createInstance(db)
	if err != nil {
		return err
	}
	defer instance.Close()

	currentVersion, dirty, err := instance.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is in dirty state at version %d", currentVersion)
	}

	if err := instance.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, _, err := instance.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("failed to get final migration version: %w", err)
	}

	m.logger.Infow("migration completed",
		"from_version", currentVersion,
		"to_version", finalVersion)

	return nil
}

// Down rolls back the given number of migrations.
func (m *Migrator) Down(db *gorm.DB, steps int) error {
	instance, err := m.createInstance(db)
	if err != nil {
		return err
	}
	defer instance.Close()

	if err := instance.Steps(-steps); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run down migrations: %w", err)
	}

	m.logger.Infow("down migration completed", "steps", steps)
	return nil
}

// Version returns the current schema version and dirty flag.
func (m *Migrator) Version(db *gorm.DB) (uint, bool, error) {
	instance, err := m.createInstance(db)
	if err != nil {
		return 0, false, err
	}
	defer instance.Close()

	version, dirty, err := instance.Version()
	if err == migrate.ErrNilVersion {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get migration version: %w", err)
	}

	return version, dirty, nil
}

func (m *Migrator) createInstance(db *gorm.DB) (*migrate.Migrate, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	return m.createMigrateInstance(sqlDB)
}

func (m *Migrator) createMigrateInstance(sqlDB *sql.DB) (*migrate.Migrate, error) {
	driver, err := mysql.WithInstance(sqlDB, &mysql.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create MySQL driver: %w", err)
	}

	sourceURL := fmt.Sprintf("file://%s", m.scriptsPath)
	instance, err := migrate.NewWithDatabaseInstance(sourceURL, "mysql", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return instance, nil
}
