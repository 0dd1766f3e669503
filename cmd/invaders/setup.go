package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/history"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openLogFile opens ~/.invaders/invaders.log for appending. The full-screen
// game owns the terminal, so log records go there instead.
func openLogFile() (io.WriteCloser, error) {
	path, err := config.ExpandHome("~/.invaders/invaders.log")
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// loadConfig loads the game config and applies command-line overrides.
// A broken config file is reported and the defaults are used.
func loadConfig(logger *log.Logger) config.InvadersConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("using default config", "error", err)
	}

	if flagDifficulty != "" {
		preset := config.ParseDifficulty(flagDifficulty)
		if preset == "" {
			logger.Warn("unknown difficulty, ignoring", "difficulty", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagFPS > 0 {
		cfg.Arena.FPS = flagFPS
	}
	if flagBackend != "" {
		cfg.History.Backend = flagBackend
	}
	switch {
	case flagHistory != "":
		cfg.History.Path = flagHistory
	case cfg.History.Backend == storage.BackendSQLite && strings.HasSuffix(cfg.History.Path, ".json"):
		cfg.History.Path = strings.TrimSuffix(cfg.History.Path, ".json") + ".db"
	}
	return cfg
}

// openLedger opens the configured history backend. Storage problems are
// logged and the game runs without history.
func openLedger(cfg config.InvadersConfig, logger *log.Logger) *history.Ledger {
	store, err := storage.Open(cfg.History.Backend, cfg.History.Path)
	if err != nil {
		logger.Warn("history unavailable", "backend", cfg.History.Backend, "path", cfg.History.Path, "error", err)
		return history.NewLedger(nil, cfg.History.Retain, logger)
	}
	logger.Debug("history opened", "backend", cfg.History.Backend, "path", cfg.History.Path)
	return history.NewLedger(store, cfg.History.Retain, logger)
}
