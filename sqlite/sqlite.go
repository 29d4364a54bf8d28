// Package sqlite provides the SQLite-backed preview cache.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// One writer at a time; a single connection also keeps ":memory:"
	// databases from splitting into several independent databases.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	pragmas := []string{"PRAGMA busy_timeout = 5000"}
	if db.path != ":memory:" {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			conn.Close()
			return fmt.Errorf("failed to apply %q: %w", p, err)
		}
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the database tables if they don't exist.
// Bags are stored as a JSON array; fetched_at uses a fixed-width UTC layout
// so that text ordering matches time ordering.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS previews (
			id TEXT PRIMARY KEY,
			url TEXT NOT NULL UNIQUE,
			bags TEXT NOT NULL DEFAULT '[]',
			content_hash TEXT NOT NULL DEFAULT '',
			partial INTEGER NOT NULL DEFAULT 0,
			fetched_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_previews_fetched_at ON previews(fetched_at);
	`

	_, err := db.db.Exec(schema)
	return err
}
