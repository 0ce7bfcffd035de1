package testutil

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/forumport/vanillaexport/internal/fixtures"
)

// TestDB returns the in-memory sample Vanilla database.
func TestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	return TestDBDSN(t, ":memory:")
}

// TestDBDSN returns the sample Vanilla database at dsn.
func TestDBDSN(t *testing.T, dsn string) *sqlx.DB {
	t.Helper()
	db, err := fixtures.Open(context.Background(), dsn)
	if err != nil {
		t.Fatalf("TestDBDSN: %s: %s", dsn, err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}
