package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/history"
)

// SQLiteStore keeps the history in a SQLite table.
type SQLiteStore struct {
	db *sql.DB
}

var _ history.Store = (*SQLiteStore)(nil)

// Record is a history row with its database metadata.
type Record struct {
	ID        int64
	Entry     history.Entry
	CreatedAt time.Time
}

// OpenSQLite creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			result TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_history_match_id ON history(match_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Append inserts e and deletes everything but the newest retain rows,
// in one transaction.
func (s *SQLiteStore) Append(e history.Entry, retain int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	if _, err := tx.Exec(
		"INSERT INTO history (match_id, name, score, result, duration_ms) VALUES (?, ?, ?, ?, ?)",
		e.MatchID, e.PlayerName, e.Score, string(e.Result), e.DurationMs,
	); err != nil {
		return fmt.Errorf("storage: cannot save entry: %w", err)
	}

	if retain > 0 {
		if _, err := tx.Exec(
			`DELETE FROM history
			 WHERE id NOT IN (SELECT id FROM history ORDER BY id DESC LIMIT ?)`,
			retain,
		); err != nil {
			return fmt.Errorf("storage: cannot trim history: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit entry: %w", err)
	}
	return nil
}

// Recent returns up to limit newest entries, oldest first.
func (s *SQLiteStore) Recent(limit int) ([]history.Entry, error) {
	records, err := s.Records(limit)
	if err != nil {
		return nil, err
	}
	entries := make([]history.Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, r.Entry)
	}
	return entries, nil
}

// Records returns up to limit newest rows with their metadata, oldest first.
func (s *SQLiteStore) Records(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = history.DefaultRetain
	}

	rows, err := s.db.Query(
		`SELECT id, match_id, name, score, result, duration_ms, created_at
		 FROM (SELECT * FROM history ORDER BY id DESC LIMIT ?)
		 ORDER BY id ASC`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var result string
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Entry.MatchID,
			&r.Entry.PlayerName,
			&r.Entry.Score,
			&result,
			&r.Entry.DurationMs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Entry.Result = history.Result(result)

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}
