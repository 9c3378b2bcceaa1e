package store

import (
	"database/sql"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"
)

const memoryPath = ":memory:"

// NewDB opens the DuckDB database at path. ":memory:" or an empty path opens
// a private in-memory database.
func NewDB(path string) (*sql.DB, error) {
	dsn := path
	if path == memoryPath {
		dsn = ""
	}

	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", path, err)
	}

	// Single connection: concurrent upserts on the same row would otherwise
	// hit DuckDB write-write conflicts.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database %q: %w", path, err)
	}

	return db, nil
}
