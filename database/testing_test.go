package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestDatabase(t *testing.T) Database {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "campusly.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return New(db)
}
