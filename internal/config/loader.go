package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Load loads the game configuration.
// Search order: customPath -> ~/.invaders/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func Load(customPath string) (InvadersConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultInvadersConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultInvadersConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("invaders.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "invaders.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultInvadersYAML)
	if err != nil {
		return DefaultInvadersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c InvadersConfig) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"arena.width", c.Arena.Width > 0},
		{"arena.height", c.Arena.Height > 0},
		{"arena.fps", c.Arena.FPS > 0},
		{"ship.width", c.Ship.Width > 0 && c.Ship.Width <= c.Arena.Width},
		{"ship.height", c.Ship.Height > 0},
		{"ship.health", c.Ship.Health > 0},
		{"ship.speed", c.Ship.Speed >= 0},
		{"ship.cooldown_ms", c.Ship.CooldownMs >= 0},
		{"aliens.width", c.Aliens.Width > 0},
		{"aliens.height", c.Aliens.Height > 0},
		{"aliens.move_distance", c.Aliens.MoveDistance >= 0},
		{"aliens.cooldown_ms", c.Aliens.CooldownMs >= 0},
		{"aliens.points", c.Aliens.Points >= 0},
		{"formation.rows", c.Formation.Rows > 0},
		{"formation.cols", c.Formation.Cols > 0},
		{"bullets.width", c.Bullets.Width > 0},
		{"bullets.height", c.Bullets.Height > 0},
		{"bullets.max_alien_bullets", c.Bullets.MaxAlienBullets >= 0},
		{"explosions.frames", c.Explosions.Frames > 0},
		{"explosions.speed", c.Explosions.Speed > 0},
		{"match.countdown", c.Match.Countdown >= 0},
		{"history.retain", c.History.Retain > 0},
		{"history.backend", c.History.Backend == "json" || c.History.Backend == "sqlite"},
	}
	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, check.name)
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
