package database

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"shop-console/internal/config"
	"shop-console/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
	logger *slog.Logger
}

func New(cfg *config.DatabaseConfig, appLogger *slog.Logger) (*DB, error) {
	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		Logger: newGormLogger(),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	conn := &DB{
		DB:     db,
		config: cfg,
		logger: appLogger,
	}

	if err := conn.HealthCheck(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

func openDialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}

// newGormLogger writes slow queries and errors to stderr so stdout only carries command output
func newGormLogger() logger.Interface {
	return logger.New(
		log.New(os.Stderr, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(&models.Customer{})
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateIndexes adds the expression indexes used by case-insensitive name and email lookups.
// Migration 000002 creates the same indexes; this covers schemas built by AutoMigrate.
func (db *DB) CreateIndexes() error {
	if db.config.Driver != config.DriverPostgres {
		return nil
	}

	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_customer_entity_email_lower ON customer_entity(LOWER(email))",
		"CREATE INDEX IF NOT EXISTS idx_customer_entity_firstname_lower ON customer_entity(LOWER(firstname))",
		"CREATE INDEX IF NOT EXISTS idx_customer_entity_lastname_lower ON customer_entity(LOWER(lastname))",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			db.logger.Warn("failed to create index", "query", query, "error", err)
		}
	}

	return nil
}

// Initialize creates and configures the database connection.
// The schema is only touched when auto migration is enabled.
func Initialize(cfg *config.Config, appLogger *slog.Logger) (*DB, error) {
	db, err := New(&cfg.Database, appLogger)
	if err != nil {
		return nil, err
	}

	if err := db.initialize(cfg); err != nil {
		return nil, err
	}

	return db, nil
}

// initialize prepares the schema and closes the connection when that fails
func (db *DB) initialize(cfg *config.Config) error {
	if err := db.prepare(cfg); err != nil {
		_ = db.Close()
		return err
	}

	db.logger.Debug("database initialized", "driver", cfg.Database.Driver)
	return nil
}

func (db *DB) prepare(cfg *config.Config) error {
	if !cfg.Database.AutoMigrate {
		db.logger.Debug("auto-migration disabled")
		return nil
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	runner := NewMigrationRunner(sqlDB, db.logger, cfg.Database.Seed)

	if cfg.Database.Driver == config.DriverPostgres {
		if err := RunMigrationsIfEnabled(runner, cfg.Database.AutoMigrate); err != nil {
			db.logger.Warn("migration runner failed, falling back to GORM AutoMigrate", "error", err)

			if err := db.AutoMigrate(); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			if err := db.CreateIndexes(); err != nil {
				db.logger.Warn("failed to create some indexes", "error", err)
			}
		}
		return nil
	}

	// golang-migrate is wired for postgres only; sqlite files get their schema from the model
	if err := db.AutoMigrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := runner.LoadSeeds(); err != nil {
		db.logger.Warn("seed data loading failed", "error", err)
	}

	return nil
}
