package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-invaders/internal/history"
)

func TestJSONStoreCreatesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.json")

	store, err := OpenJSON(path)
	require.NoError(t, err)
	defer store.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.JSONEq(t, "[]", string(data))

	entries, err := store.Recent(3)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestJSONStoreExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := OpenJSON("~/.invaders/history.json")
	require.NoError(t, err)
	defer store.Close()

	require.Equal(t, filepath.Join(home, ".invaders", "history.json"), store.Path())
	require.FileExists(t, store.Path())
}

func TestJSONStoreFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	store, err := OpenJSON(path)
	require.NoError(t, err)

	e := history.Entry{PlayerName: "ace", Score: 250, Result: history.ResultVictory, DurationMs: 31500, MatchID: "m-1"}
	require.NoError(t, store.Append(e, 3))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Exactly four fields per object; the match ID is not persisted here
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	require.Len(t, raw[0], 4)
	require.JSONEq(t, `[{"name":"ace","score":250,"result":"victory","duration_ms":31500}]`, string(data))
}

func TestJSONStoreEvictsOldestFirst(t *testing.T) {
	store, err := OpenJSON(filepath.Join(t.TempDir(), "history.json"))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		e := history.Entry{PlayerName: string(rune('a' + i)), Score: i * 10, Result: history.ResultDefeat}
		require.NoError(t, store.Append(e, 3))
	}

	entries, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "c", entries[0].PlayerName)
	require.Equal(t, "e", entries[2].PlayerName)

	entries, err = store.Recent(1)
	require.NoError(t, err)
	require.Equal(t, "e", entries[0].PlayerName)
}

func TestJSONStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store, err := OpenJSON(path)
	require.NoError(t, err)

	_, err = store.Recent(3)
	require.Error(t, err)

	// Through the ledger the corruption reads as empty history
	ledger := history.NewLedger(store, 3, nil)
	require.Empty(t, ledger.ReadRecent(3))

	// Appending replaces the corrupt content
	e := history.Entry{PlayerName: "fresh", Score: 10, Result: history.ResultVictory}
	require.NoError(t, ledger.Append(e))
	require.Equal(t, []history.Entry{e}, ledger.ReadRecent(3))
}

func TestJSONStoreEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	store, err := OpenJSON(path)
	require.NoError(t, err)

	entries, err := store.Recent(3)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestJSONStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := OpenJSON(filepath.Join(dir, "history.json"))
	require.NoError(t, err)
	require.NoError(t, store.Append(history.Entry{PlayerName: "x", Result: history.ResultVictory}, 3))

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "history.json", files[0].Name())
}
