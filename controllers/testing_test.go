package controllers

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusly/campusly-data/database"
	"github.com/campusly/campusly-data/prefs"
)

// testEnv opens a fresh database and preference store in a temp dir.
func testEnv(t *testing.T) (database.Database, *prefs.Store) {
	t.Helper()

	dir := t.TempDir()

	db, err := database.Open(filepath.Join(dir, "campusly.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	store, err := prefs.Open(filepath.Join(dir, "campusly_prefs.json"))
	require.NoError(t, err)

	return database.New(db), store
}
