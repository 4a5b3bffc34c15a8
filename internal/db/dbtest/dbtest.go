// Package dbtest opens throwaway SQLite databases for package tests.
package dbtest

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"hts_portal/internal/db"
)

// New returns a migrated SQLite database in t's temp dir with foreign keys
// enforced. It is closed when the test ends.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "portal.db") + "?_foreign_keys=on"
	gdb, err := db.Connect("sqlite", dsn, zerolog.New(io.Discard))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}
