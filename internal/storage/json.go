// Package storage provides persistence backends for the match history:
// a JSON file holding a single array, and SQLite via the pure-Go
// modernc.org/sqlite driver.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/history"
)

// JSONStore keeps the history as one JSON array in a file.
// Every append rewrites the whole file through a temp file and rename.
type JSONStore struct {
	path string
}

var _ history.Store = (*JSONStore)(nil)

// OpenJSON opens the history file at path, creating its directory and an
// empty array when the file does not exist yet.
func OpenJSON(path string) (*JSONStore, error) {
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	s := &JSONStore{path: path}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := s.write([]history.Entry{}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Path returns the file backing the store.
func (s *JSONStore) Path() string {
	return s.path
}

// Append adds e and keeps the newest retain entries.
// An unreadable or malformed file is replaced rather than appended to.
func (s *JSONStore) Append(e history.Entry, retain int) error {
	entries, err := s.read()
	if err != nil {
		entries = nil
	}
	entries = append(entries, e)
	if retain > 0 && len(entries) > retain {
		entries = entries[len(entries)-retain:]
	}
	return s.write(entries)
}

// Recent returns up to limit newest entries, oldest first.
func (s *JSONStore) Recent(limit int) ([]history.Entry, error) {
	entries, err := s.read()
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}

// Close is a no-op; the file is only open during reads and writes.
func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) read() ([]history.Entry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []history.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []history.Entry{}, nil
	}

	var entries []history.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("storage: malformed history %s: %w", s.path, err)
	}
	return entries, nil
}

func (s *JSONStore) write(entries []history.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: cannot encode history: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".history-*.json")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // No-op after a successful rename

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write history: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot sync history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", s.path, err)
	}
	return nil
}
