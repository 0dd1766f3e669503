package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Sprite artwork. Each sprite is stretched over its entity's box when drawn,
// so the glyph grid only sets proportions.
var (
	shipSprite = []string{
		"   ▄█▄   ",
		" ▄█████▄ ",
		"█████████",
	}

	alienSprites = [][]string{
		{
			"▄▀▀▀▄",
			"▀▄▀▄▀",
		},
		{
			"▗▟█▙▖",
			"▘▝ ▘▝",
		},
		{
			"▄███▄",
			"█▀▄▀█",
		},
		{
			"╭▀▀▀╮",
			"╰┬─┬╯",
		},
		{
			"▞▀▀▀▚",
			"▚▄▄▄▞",
		},
	}

	playerBulletSprite = []string{"│"}
	alienBulletSprite  = []string{"╎"}

	explosionFrames = []rune{'·', '+', '*', '✶', '░'}
)

// Colors per entity kind.
var alienColors = []core.Color{
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorOrange,
}

// shipMask is the ship's collision silhouette.
var shipMask = core.MaskFromRows(shipSprite...)

// alienVariant picks the artwork for a grid row.
func alienVariant(row int) int {
	return row % len(alienSprites)
}
