// Package dbtest provides an in-memory SQLite database for repository tests.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shop_backend/internal/platform/db"
)

// New returns a migrated, isolated in-memory database with foreign keys
// enforced. A single connection keeps every query on the same database.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.Open(sqlite.Open("file::memory:?_foreign_keys=on"))
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb))
	return gdb
}
