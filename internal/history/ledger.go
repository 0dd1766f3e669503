package history

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// DefaultRetain is the number of entries kept when no retention is configured.
const DefaultRetain = 3

// ErrPersist wraps every storage failure surfaced by the Ledger.
var ErrPersist = errors.New("history: persist failed")

// Store is a persisted, ordered sequence of entries (oldest first).
type Store interface {
	// Append adds e to the end and drops the oldest entries beyond retain.
	Append(e Entry, retain int) error
	// Recent returns up to limit newest entries, oldest first.
	// An absent store yields an empty slice and no error.
	Recent(limit int) ([]Entry, error)
	Close() error
}

// Recorder is what a match needs to report its outcome.
type Recorder interface {
	Append(e Entry) error
}

// Ledger is a bounded FIFO log of match outcomes over a Store.
// It serialises read-modify-write cycles, so one Ledger may be shared by
// several sessions inside a process. Separate processes writing the same
// JSON file are last-writer-wins.
type Ledger struct {
	mu     sync.Mutex
	store  Store
	retain int
	logger *log.Logger
}

var _ Recorder = (*Ledger)(nil)

// NewLedger creates a ledger keeping the newest retain entries.
// A nil store gives a ledger that records nothing and reads empty.
func NewLedger(store Store, retain int, logger *log.Logger) *Ledger {
	if retain <= 0 {
		retain = DefaultRetain
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Ledger{
		store:  store,
		retain: retain,
		logger: logger,
	}
}

// Retain returns the number of entries the ledger keeps.
func (l *Ledger) Retain() int {
	return l.retain
}

// Append records a finished match. Errors wrap ErrPersist (or
// ErrInvalidEntry) and are informational: nothing is written on failure
// and callers carry on.
func (l *Ledger) Append(e Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.store == nil {
		return fmt.Errorf("%w: no store configured", ErrPersist)
	}
	if err := l.store.Append(e, l.retain); err != nil {
		l.logger.Warn("could not record match", "match", e.MatchID, "error", err)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}

	l.logger.Debug("match recorded",
		"match", e.MatchID,
		"player", e.PlayerName,
		"result", e.Result,
		"score", e.Score,
		"duration_ms", e.DurationMs,
	)
	return nil
}

// ReadRecent returns up to limit of the newest entries, most recent last.
// Read failures are logged and yield an empty slice.
func (l *Ledger) ReadRecent(limit int) []Entry {
	if limit <= 0 {
		return []Entry{}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.store == nil {
		return []Entry{}
	}
	entries, err := l.store.Recent(limit)
	if err != nil {
		l.logger.Warn("could not read history, treating as empty", "error", err)
		return []Entry{}
	}
	if len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries
}

// Close releases the underlying store.
func (l *Ledger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.store == nil {
		return nil
	}
	err := l.store.Close()
	l.store = nil
	return err
}

// Newest returns entries reversed, newest first, for display.
func Newest(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out
}
