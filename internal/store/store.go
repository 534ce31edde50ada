// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for word source positions.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS lang_positions (
			lang TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			updated_at TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Position returns the saved inorder position for lang, or 0 when none is stored.
func (s *Store) Position(ctx context.Context, lang string) (int, error) {
	var pos int
	err := s.db.QueryRowContext(ctx,
		`SELECT position FROM lang_positions WHERE lang = ?`, lang).Scan(&pos)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return pos, nil
}

// SavePosition stores the inorder position for lang.
func (s *Store) SavePosition(ctx context.Context, lang string, pos int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO lang_positions (lang, position, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(lang) DO UPDATE SET position = excluded.position, updated_at = excluded.updated_at`,
		lang, pos, time.Now().UTC().Format(time.RFC3339Nano))
	return err
}
