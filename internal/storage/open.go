package storage

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/history"
)

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Open returns the history store for the named backend.
func Open(backend, path string) (history.Store, error) {
	switch backend {
	case BackendJSON, "":
		s, err := OpenJSON(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendSQLite:
		s, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}
