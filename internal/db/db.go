// Package db owns the sqlite file backing NutriSnap: a single connection
// over a kv table that stores whole-state snapshots, plus the versioned
// migrations that shape it.
package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Open opens (creating if needed) the state database at path. The pool is
// capped at one connection: snapshot writes are serialized by the store, and
// a second writer would only contend on sqlite's file lock.
func Open(path string) (*sql.DB, error) {
	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open state database %q: %w", path, err)
	}
	sqldb.SetMaxOpenConns(1)
	if err := sqldb.Ping(); err != nil {
		return nil, fmt.Errorf("ping state database %q: %w", path, err)
	}
	if _, err := sqldb.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return sqldb, nil
}
