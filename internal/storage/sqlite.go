// Package storage provides SQLite-based persistence for the best score.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/term2048/internal/t2048"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// BestEntry is one persisted best score.
type BestEntry struct {
	Key   string
	Score int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandHome(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS best_scores (
			key TEXT PRIMARY KEY,
			score INTEGER NOT NULL DEFAULT 0
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

const keyPrefix = "best_"

// KeyForSize returns the best-score key for an n×n board.
func KeyForSize(n int) string {
	return fmt.Sprintf("%s%dx%d", keyPrefix, n, n)
}

// Board returns the board label of the entry, e.g. "4x4".
func (e BestEntry) Board() string {
	return strings.TrimPrefix(e.Key, keyPrefix)
}

// BestScore returns the best score stored under key, or 0 if none.
func (s *Store) BestScore(key string) (int, error) {
	var score int
	err := s.db.QueryRow(
		"SELECT score FROM best_scores WHERE key = ?",
		key,
	).Scan(&score)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	return score, nil
}

// SetBestScore stores score under key unless a higher value is already stored.
func (s *Store) SetBestScore(key string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO best_scores (key, score) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET score = MAX(score, excluded.score)`,
		key, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// ResetBestScore deletes the best score stored under key.
func (s *Store) ResetBestScore(key string) error {
	_, err := s.db.Exec("DELETE FROM best_scores WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("storage: cannot reset best score: %w", err)
	}
	return nil
}

// AllBestScores returns every stored best score ordered by key.
func (s *Store) AllBestScores() ([]BestEntry, error) {
	rows, err := s.db.Query("SELECT key, score FROM best_scores ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best scores: %w", err)
	}
	defer rows.Close()

	var entries []BestEntry
	for rows.Next() {
		var e BestEntry
		if err := rows.Scan(&e.Key, &e.Score); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Best returns a t2048.BestStore bound to key.
func (s *Store) Best(key string) *BestKey {
	return &BestKey{store: s, key: key}
}

// BestKey adapts Store to the engine's best-score interface for one key.
type BestKey struct {
	store *Store
	key   string
}

// BestScore implements t2048.BestStore.
func (b *BestKey) BestScore() (int, error) {
	return b.store.BestScore(b.key)
}

// SaveBestScore implements t2048.BestStore.
func (b *BestKey) SaveBestScore(score int) error {
	return b.store.SetBestScore(b.key, score)
}

var _ t2048.BestStore = (*BestKey)(nil)
