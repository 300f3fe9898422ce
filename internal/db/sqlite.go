package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store and applies migrations
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS entries (
		namespace TEXT NOT NULL DEFAULT 'default',
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (namespace, key)
	);
	`
	_, err := s.db.Exec(query)
	return err
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SetEntry inserts or replaces a value
func (s *SQLiteStore) SetEntry(namespace, key, value string) error {
	query := `INSERT INTO entries (namespace, key, value, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(namespace, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	_, err := s.db.Exec(query, namespace, key, value, time.Now())
	return err
}

// GetEntry returns the stored value, or "" when the key is absent
func (s *SQLiteStore) GetEntry(namespace, key string) (string, error) {
	query := `SELECT value FROM entries WHERE namespace = ? AND key = ?`
	var value string
	err := s.db.QueryRow(query, namespace, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// DeleteEntry removes a key; deleting a missing key is not an error
func (s *SQLiteStore) DeleteEntry(namespace, key string) error {
	_, err := s.db.Exec(`DELETE FROM entries WHERE namespace = ? AND key = ?`, namespace, key)
	return err
}
