// invaders is a terminal Space Invaders game with a short history of
// recent matches.
//
// Usage:
//
//	invaders play        - Play in this terminal
//	invaders serve       - Start SSH server for remote play
//	invaders history     - Show the most recent games
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: from config, 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--config <path>        - Custom YAML config
//	--difficulty <preset>  - easy, normal or hard
//	--history <path>       - History file (default: ~/.invaders/history.json)
//	--backend <name>       - History backend: json or sqlite
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagHistory    string
	flagBackend    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders in your terminal",
	Long: `Invaders is a terminal take on the arcade classic. Enter your name,
survive the countdown and clear the 5x5 formation before it wears down
your ship. The last few games are kept in a small history file.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  history  - Show the most recent games

Examples:
  invaders play
  invaders play --difficulty hard
  invaders serve --ssh :2222
  invaders history --backend sqlite`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config, 60 by default)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagHistory, "history", "", "Path to history file (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "History backend: json or sqlite (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}
