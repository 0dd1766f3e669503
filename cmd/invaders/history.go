package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/history"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the most recent games",
	Long: `Display the most recent games, newest first, in the same form the
name screen lists them.

With the sqlite backend the match ID and finish time are shown as well.

Examples:
  invaders history
  invaders history --history ./history.json
  invaders history --backend sqlite`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func runHistory(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)
	cfg := loadConfig(logger)

	store, err := storage.Open(cfg.History.Backend, cfg.History.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Println("Recent games")
	fmt.Println()

	if sq, ok := store.(*storage.SQLiteStore); ok {
		records, err := sq.Records(cfg.History.Retain)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading history: %v\n", err)
			os.Exit(1)
		}
		if len(records) == 0 {
			printEmpty()
			return
		}
		for i := len(records) - 1; i >= 0; i-- {
			r := records[i]
			fmt.Printf("  %s  (%s, %s)\n", r.Entry, r.CreatedAt.Format("2006-01-02 15:04"), r.Entry.MatchID)
		}
		return
	}

	// The ledger treats an unreadable file as empty, like the game does.
	ledger := history.NewLedger(store, cfg.History.Retain, logger)
	entries := ledger.ReadRecent(cfg.History.Retain)
	if len(entries) == 0 {
		printEmpty()
		return
	}
	for _, e := range history.Newest(entries) {
		fmt.Printf("  %s\n", e)
	}
}

func printEmpty() {
	fmt.Println("No games recorded yet.")
	fmt.Println()
	fmt.Println("Play 'invaders play' to record the first one!")
}
