// Package testutil holds helpers shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/langschool/contentapi/internal/config"
	"github.com/langschool/contentapi/internal/database"
)

// NewDatabase returns a migrated, seeded SQLite database living in the test's
// temp dir, with foreign keys enforced.
func NewDatabase(t testing.TB) *database.Database {
	t.Helper()

	db, err := database.NewDatabase(config.Database{
		Driver:   config.DriverSQLite,
		Path:     filepath.Join(t.TempDir(), "test.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}
