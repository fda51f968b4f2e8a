package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	migrationsPath = "db/migrations"
	seedsPath      = "db/seeds"
)

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

// MigrationRunner handles database migrations and seeding
type MigrationRunner struct {
	db             *sql.DB
	logger         *slog.Logger
	migrationsPath string
	seedsPath      string
	seed           bool
}

// NewMigrationRunner creates a new migration runner. Seed files are only executed when seed is true.
func NewMigrationRunner(db *sql.DB, logger *slog.Logger, seed bool) *MigrationRunner {
	return &MigrationRunner{
		db:             db,
		logger:         logger,
		migrationsPath: migrationsPath,
		seedsPath:      seedsPath,
		seed:           seed,
	}
}

// WaitForDatabase waits for the database to be ready
func (mr *MigrationRunner) WaitForDatabase() error {
	mr.logger.Debug("waiting for database to be ready")

	for i := 0; i < maxRetries; i++ {
		err := mr.db.Ping()
		if err == nil {
			mr.logger.Debug("database is ready")
			return nil
		}

		mr.logger.Warn("database not ready", "attempt", i+1, "max_attempts", maxRetries, "error", err)
		time.Sleep(retryInterval)
	}

	return fmt.Errorf("database not ready after %d attempts", maxRetries)
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", absPath),
		"postgres",
		driver,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}

	return m, nil
}

// RunMigrations executes all pending migrations
func (mr *MigrationRunner) RunMigrations() error {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		mr.logger.Info("migrations directory not found, skipping migrations", "path", mr.migrationsPath)
		return nil
	}

	m, err := mr.newMigrate()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		mr.logger.Warn("database is in dirty state, forcing version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	mr.logger.Debug("current migration version", "version", version)

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		mr.logger.Debug("no new migrations to apply")
	} else {
		newVersion, _, err := m.Version()
		if err != nil {
			return fmt.Errorf("failed to get new migration version: %w", err)
		}
		mr.logger.Info("applied migrations", "version", newVersion)
	}

	return nil
}

// LoadSeeds executes every *.sql file of the seeds directory in name order.
// A failing file is logged and skipped.
func (mr *MigrationRunner) LoadSeeds() error {
	if !mr.seed {
		mr.logger.Debug("seed data loading disabled")
		return nil
	}

	if _, err := os.Stat(mr.seedsPath); os.IsNotExist(err) {
		mr.logger.Info("seeds directory not found, skipping seed data", "path", mr.seedsPath)
		return nil
	}

	files, err := filepath.Glob(filepath.Join(mr.seedsPath, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to find seed files: %w", err)
	}

	if len(files) == 0 {
		mr.logger.Info("no seed files found", "path", mr.seedsPath)
		return nil
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", file, err)
		}

		if _, err := mr.db.Exec(string(content)); err != nil {
			mr.logger.Warn("failed to execute seed file", "file", filepath.Base(file), "error", err)
			continue
		}

		mr.logger.Info("executed seed file", "file", filepath.Base(file))
	}

	return nil
}

// GetMigrationStatus returns the current migration status
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return 0, false, fmt.Errorf("migrations directory not found")
	}

	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}

	return m.Version()
}

// RunMigrationsIfEnabled waits for the database, applies pending migrations and loads seeds.
// It does nothing unless enabled is true.
func RunMigrationsIfEnabled(runner *MigrationRunner, enabled bool) error {
	if !enabled {
		runner.logger.Debug("auto-migration disabled")
		return nil
	}

	if err := runner.WaitForDatabase(); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := runner.RunMigrations(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}

	if err := runner.LoadSeeds(); err != nil {
		runner.logger.Warn("seed data loading failed", "error", err)
	}

	version, dirty, err := runner.GetMigrationStatus()
	if err != nil {
		runner.logger.Warn("failed to get migration status", "error", err)
	} else {
		runner.logger.Debug("migration status", "version", version, "dirty", dirty)
	}

	return nil
}
