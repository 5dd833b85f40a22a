package service_test

import (
	"path/filepath"
	"testing"

	"github.com/Alok-2331/NutriSnap/internal/db"
	"github.com/Alok-2331/NutriSnap/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	sqldb, err := db.Open(filepath.Join(t.TempDir(), "nutrisnap.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	st, err := store.Open(sqldb)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return st
}
