// Package config provides YAML-based configuration for the invaders game:
// play-area dimensions, speeds, cooldowns and history retention.
// Values are fixed once a match starts.
package config

// InvadersConfig contains all configuration for the game.
type InvadersConfig struct {
	Arena      ArenaConfig     `yaml:"arena"`
	Ship       ShipConfig      `yaml:"ship"`
	Aliens     AlienConfig     `yaml:"aliens"`
	Formation  FormationConfig `yaml:"formation"`
	Bullets    BulletConfig    `yaml:"bullets"`
	Explosions ExplosionConfig `yaml:"explosions"`
	Match      MatchConfig     `yaml:"match"`
	History    HistoryConfig   `yaml:"history"`
}

// ArenaConfig defines the play area in logical units (pixels of the original
// artwork). The terminal renderer scales it to the available cells.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	Health       int `yaml:"health"`
	Speed        int `yaml:"speed"`         // Units per tick
	CooldownMs   int `yaml:"cooldown_ms"`   // Minimum time between shots
	BottomOffset int `yaml:"bottom_offset"` // Ship centre distance from the bottom edge
}

// AlienConfig defines a single alien.
type AlienConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	MoveSpeed    int `yaml:"move_speed"`    // Units per tick
	MoveDistance int `yaml:"move_distance"` // Travel before reversing direction
	CooldownMs   int `yaml:"cooldown_ms"`   // Global cooldown between alien shots
	Points       int `yaml:"points"`        // Score per alien destroyed
}

// FormationConfig defines the alien grid spawned at match start.
type FormationConfig struct {
	Rows     int `yaml:"rows"`
	Cols     int `yaml:"cols"`
	OriginX  int `yaml:"origin_x"` // Centre of the first column
	OriginY  int `yaml:"origin_y"` // Centre of the first row
	SpacingX int `yaml:"spacing_x"`
	SpacingY int `yaml:"spacing_y"`
}

// BulletConfig defines both bullet kinds.
type BulletConfig struct {
	PlayerSpeed     int `yaml:"player_speed"`
	AlienSpeed      int `yaml:"alien_speed"`
	Width           int `yaml:"width"`
	Height          int `yaml:"height"`
	MaxAlienBullets int `yaml:"max_alien_bullets"`
}

// ExplosionConfig defines explosion animation and size classes.
type ExplosionConfig struct {
	Frames int `yaml:"frames"`
	Speed  int `yaml:"speed"` // Ticks per animation frame
	Small  int `yaml:"small"` // Square edge length per size class
	Medium int `yaml:"medium"`
	Large  int `yaml:"large"`
}

// MatchConfig defines match pacing.
type MatchConfig struct {
	Countdown int `yaml:"countdown"` // Seconds before play starts
}

// HistoryConfig defines the recent-games ledger.
type HistoryConfig struct {
	Retain  int    `yaml:"retain"`  // Entries kept, oldest dropped first
	Backend string `yaml:"backend"` // "json" or "sqlite"
	Path    string `yaml:"path"`
}
