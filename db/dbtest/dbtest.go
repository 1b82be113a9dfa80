// Package dbtest opens throwaway SQLite databases carrying the application
// schema, for store and handler tests.
package dbtest

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/user/aquarealty/db"
	"github.com/user/aquarealty/models"
)

// Open returns an in-memory database with every model migrated and foreign
// keys enforced. It is closed when the test ends.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), db.GormConfig(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// Each new connection to :memory: is a separate, empty database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gdb.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, gdb.AutoMigrate(models.All()...))

	return gdb
}
