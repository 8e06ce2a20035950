package testutils

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/linskybing/property-portal/internal/config/db"
	"github.com/linskybing/property-portal/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewSQLiteDB opens a private in-memory database with every table migrated.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

// NewRepos returns repositories over a fresh in-memory database.
func NewRepos(t *testing.T) (*repository.Repos, *gorm.DB) {
	t.Helper()
	gdb := NewSQLiteDB(t)
	return repository.NewRepositories(gdb), gdb
}
