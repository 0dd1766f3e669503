package config

// DifficultyPreset is a named adjustment applied once, before a match starts.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a CLI string to a preset. Unknown values yield "".
func ParseDifficulty(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal and the empty preset leave the config untouched.
func ApplyPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ship.Health = 5
		cfg.Aliens.CooldownMs = 1500
		cfg.Bullets.MaxAlienBullets = 3
	case DifficultyHard:
		cfg.Ship.Health = 2
		cfg.Aliens.CooldownMs = 600
		cfg.Bullets.MaxAlienBullets = 8
		cfg.Bullets.AlienSpeed = 3
	}
}
