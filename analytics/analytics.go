// Package analytics records every generated visual in a local SQLite file.
package analytics

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Record is one logged generation.
type Record struct {
	UserAgent string
	Method    string
	Path      string
	Station   string
	Name      string
	Verbatims []string
	Tags      []string
	Artists   []string
}

// Store wraps the analytics database. sql.DB handles pooling, so one Store
// is shared by all requests.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the analytics database and ensures its schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("analytics: open %s: %w", path, err)
	}
	schema := `
	CREATE TABLE IF NOT EXISTS analytics (
		id TEXT PRIMARY KEY,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		user_agent TEXT,
		method TEXT,
		path TEXT,
		station TEXT,
		station_name TEXT,
		verbatims TEXT,
		tags TEXT,
		artists TEXT
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("analytics: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Log inserts one record with a fresh request id.
func (s *Store) Log(rec Record) error {
	query := `INSERT INTO analytics
		(id, user_agent, method, path, station, station_name, verbatims, tags, artists)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`
	_, err := s.db.Exec(query,
		uuid.NewString(),
		rec.UserAgent,
		rec.Method,
		rec.Path,
		rec.Station,
		rec.Name,
		strings.Join(rec.Verbatims, ","),
		strings.Join(rec.Tags, ","),
		strings.Join(rec.Artists, ","),
	)
	if err != nil {
		return fmt.Errorf("analytics: insert: %w", err)
	}
	return nil
}

// Count returns the number of logged generations.
func (s *Store) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM analytics;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("analytics: count: %w", err)
	}
	return count, nil
}
