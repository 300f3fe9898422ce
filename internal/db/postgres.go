package db

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"
)

// PostgresStore implements Store using PostgreSQL
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new Postgres store and applies migrations
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *PostgresStore) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS entries (
			namespace TEXT NOT NULL DEFAULT 'default',
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (namespace, key)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_entries_namespace ON entries(namespace)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			slog.Debug("migration step failed", "error", err)
			return err
		}
	}
	return nil
}

// Close closes the database connection
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// SetEntry inserts or replaces a value
func (s *PostgresStore) SetEntry(namespace, key, value string) error {
	query := `INSERT INTO entries (namespace, key, value, updated_at) VALUES ($1, $2, $3, NOW())
			  ON CONFLICT (namespace, key) DO UPDATE SET value = $3, updated_at = NOW()`
	_, err := s.db.Exec(query, namespace, key, value)
	return err
}

// GetEntry returns the stored value, or "" when the key is absent
func (s *PostgresStore) GetEntry(namespace, key string) (string, error) {
	query := `SELECT value FROM entries WHERE namespace = $1 AND key = $2`
	row := s.db.QueryRow(query, namespace, key)
	var value string
	err := row.Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil // Return empty string if not found
	}
	return value, err
}

// DeleteEntry removes a key
func (s *PostgresStore) DeleteEntry(namespace, key string) error {
	query := `DELETE FROM entries WHERE namespace = $1 AND key = $2`
	_, err := s.db.Exec(query, namespace, key)
	return err
}
