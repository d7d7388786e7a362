// Package testutil provides test helpers for setting up in-memory databases,
// creating fixtures, and making assertions.
package testutil

import (
	"errors"
	"testing"

	"fincast/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// allModels is the list of all GORM models to auto-migrate in tests.
var allModels = []interface{}{
	&models.User{},
	&models.SalaryProjection{},
	&models.Paycheck{},
	&models.ExpenseCategory{},
	&models.Expense{},
	&models.AuditLog{},
}

// SetupTestDB creates an in-memory SQLite database with all models migrated.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// TeardownTestDB closes the underlying database connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("failed to get underlying DB for teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}

// ErrInjectedFailure is returned by creates sabotaged via FailCreatesAfter.
var ErrInjectedFailure = errors.New("injected create failure")

// FailCreatesAfter registers a create callback that lets n inserts into the
// given table succeed and fails every one after that. Used to prove that
// multi-row writes roll back as a unit.
func FailCreatesAfter(t *testing.T, db *gorm.DB, table string, n int) {
	t.Helper()

	count := 0
	err := db.Callback().Create().Before("gorm:create").Register("testutil:fail_creates", func(tx *gorm.DB) {
		if tx.Statement.Table != table {
			return
		}
		count++
		if count > n {
			tx.AddError(ErrInjectedFailure)
		}
	})
	if err != nil {
		t.Fatalf("failed to register fault-injection callback: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Callback().Create().Remove("testutil:fail_creates")
	})
}
