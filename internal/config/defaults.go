package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in configuration. It mirrors
// defaults/invaders.yaml and is used when the embedded file cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Arena: ArenaConfig{
			Width:  600,
			Height: 800,
			FPS:    60,
		},
		Ship: ShipConfig{
			Width:        64,
			Height:       48,
			Health:       3,
			Speed:        8,
			CooldownMs:   500,
			BottomOffset: 100,
		},
		Aliens: AlienConfig{
			Width:        40,
			Height:       36,
			MoveSpeed:    1,
			MoveDistance: 75,
			CooldownMs:   1000,
			Points:       10,
		},
		Formation: FormationConfig{
			Rows:     5,
			Cols:     5,
			OriginX:  100,
			OriginY:  100,
			SpacingX: 100,
			SpacingY: 70,
		},
		Bullets: BulletConfig{
			PlayerSpeed:     5,
			AlienSpeed:      2,
			Width:           6,
			Height:          16,
			MaxAlienBullets: 5,
		},
		Explosions: ExplosionConfig{
			Frames: 5,
			Speed:  3,
			Small:  20,
			Medium: 40,
			Large:  160,
		},
		Match: MatchConfig{
			Countdown: 3,
		},
		History: HistoryConfig{
			Retain:  3,
			Backend: "json",
			Path:    "~/.invaders/history.json",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
