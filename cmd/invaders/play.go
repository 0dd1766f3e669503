package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var flagName string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in this terminal.

Controls:
  Left/A, Right/D  - Move the ship
  Space            - Fire
  Enter            - Start (on the name screen)
  R                - Restart (after the match)
  Esc/B            - Back to the name screen
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 health, slower alien fire, at most 3 alien bullets
  normal - 3 health, one alien shot per second, at most 5 alien bullets
  hard   - 2 health, fast alien fire and bullets, at most 8 alien bullets

Examples:
  invaders play
  invaders play --name ada
  invaders play --difficulty easy
  invaders play --config ./my-invaders.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "", "Prefill the player name")
}

func runPlay(_ *cobra.Command, _ []string) {
	var logOut io.Writer = io.Discard
	if f, err := openLogFile(); err == nil {
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut)

	cfg := loadConfig(logger)
	ledger := openLedger(cfg, logger)
	defer func() {
		if err := ledger.Close(); err != nil {
			logger.Warn("closing history", "error", err)
		}
	}()

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = cfg.Arena.FPS
	rt.Seed = flagSeed

	opts := tui.Options{
		Game:    cfg,
		Runtime: rt,
		Ledger:  ledger,
		Logger: logger,
		Name:   flagName,
	}

	logger.Info("starting game", "fps", cfg.Arena.FPS, "seed", flagSeed, "difficulty", flagDifficulty)
	if err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
