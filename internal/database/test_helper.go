package database

import (
	"io"
	"log/slog"
	"testing"

	"shop-console/internal/config"
	"shop-console/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a migrated in-memory sqlite database
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// every pooled connection to :memory: is a separate database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			SQLitePath:     ":memory:",
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

func CreateTestCustomer(t *testing.T, db *DB, email, firstname, lastname string) *models.Customer {
	t.Helper()

	customer := &models.Customer{
		Email:     email,
		Firstname: firstname,
		Lastname:  lastname,
		WebsiteID: 1,
	}

	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("failed to create test customer: %v", err)
	}

	return customer
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM customer_entity").Error; err != nil {
		t.Logf("failed to cleanup table customer_entity: %v", err)
	}
}
