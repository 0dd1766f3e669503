// Package history keeps a short, persisted record of finished matches.
// The Ledger retains only the newest N entries, dropping the oldest first,
// and never lets a storage failure interrupt play.
package history

import (
	"errors"
	"fmt"
)

// Result is the outcome of a finished match.
type Result string

const (
	ResultVictory Result = "victory"
	ResultDefeat  Result = "defeat"
)

// Valid reports whether r is a known outcome.
func (r Result) Valid() bool {
	return r == ResultVictory || r == ResultDefeat
}

// Entry is one finished match. Entries are immutable once written.
// The JSON form is the persisted history format and carries exactly
// name, score, result and duration_ms.
type Entry struct {
	PlayerName string `json:"name"`
	Score      int    `json:"score"`
	Result     Result `json:"result"`
	DurationMs int64  `json:"duration_ms"`

	// MatchID correlates the entry with log records. Only the SQLite
	// backend stores it.
	MatchID string `json:"-"`
}

// ErrInvalidEntry is returned for entries that violate the schema.
var ErrInvalidEntry = errors.New("history: invalid entry")

// Validate checks the schema invariants of an entry.
func (e Entry) Validate() error {
	switch {
	case e.Score < 0:
		return fmt.Errorf("%w: negative score %d", ErrInvalidEntry, e.Score)
	case e.DurationMs < 0:
		return fmt.Errorf("%w: negative duration %d", ErrInvalidEntry, e.DurationMs)
	case !e.Result.Valid():
		return fmt.Errorf("%w: unknown result %q", ErrInvalidEntry, e.Result)
	}
	return nil
}

// DurationSeconds returns the whole seconds of the match, as shown in menus.
func (e Entry) DurationSeconds() int64 {
	if e.DurationMs < 0 {
		return 0
	}
	return e.DurationMs / 1000
}

// String formats the entry the way the menu lists it.
func (e Entry) String() string {
	name := e.PlayerName
	if name == "" {
		name = "Unknown"
	}
	return fmt.Sprintf("%s - %s - score %d - %ds", name, e.Result, e.Score, e.DurationSeconds())
}
