package testutil

import (
	"path/filepath"
	"testing"

	"github.com/InkwellLabs/inkwell/internal/store"
)

// NewStore opens a SQLite store in a per-test temp directory and closes it
// when the test finishes.
func NewStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	db, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}
