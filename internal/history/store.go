// Package history records validation runs in DuckDB so repeated runs can
// be listed and unchanged files can be skipped.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"
)

// Store manages a DuckDB connection holding validation runs.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path, "" for in-memory stores.
func (s *Store) Path() string {
	return s.path
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS validation_runs (
		id VARCHAR PRIMARY KEY,
		path VARCHAR,
		size BIGINT,
		mod_time BIGINT,
		valid BOOLEAN,
		kind VARCHAR,
		line BIGINT,
		reason VARCHAR,
		lines BIGINT,
		meta_lines BIGINT,
		records BIGINT,
		checked_at TIMESTAMP
	)`)
	return err
}
