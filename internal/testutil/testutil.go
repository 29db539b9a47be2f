package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nadir/hifztrack/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations
// applied, configured the same way as production (FKs on, WAL, single
// writer).
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.Open(":memory:")
	require.NoError(t, err)
	return database
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}
