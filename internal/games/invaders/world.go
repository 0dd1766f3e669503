package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// world holds every entity of one match.
// ship is nil once destroyed.
type world struct {
	ship       *Ship
	bullets    arena[PlayerBullet]
	aliens     arena[Alien]
	alienShots arena[AlienBullet]
	explosions arena[Explosion]
}

func (w *world) clear() {
	w.ship = nil
	w.bullets.Clear()
	w.aliens.Clear()
	w.alienShots.Clear()
	w.explosions.Clear()
}

// compact drops entities removed during the last engine pass.
func (w *world) compact() {
	w.bullets.Compact()
	w.aliens.Compact()
	w.alienShots.Compact()
	w.explosions.Compact()
}

// newShip places a full-health ship at the bottom centre of the play area.
func newShip(cfg config.InvadersConfig) *Ship {
	return &Ship{
		X:               cfg.Arena.Width / 2,
		Y:               cfg.Arena.Height - cfg.Ship.BottomOffset,
		W:               cfg.Ship.Width,
		H:               cfg.Ship.Height,
		HealthMax:       cfg.Ship.Health,
		HealthRemaining: cfg.Ship.Health,
	}
}

// spawnExplosion adds an explosion of the given size centred on (x, y).
func (w *world) spawnExplosion(x, y int, size ExplosionSize, cfg config.ExplosionConfig) {
	edge := cfg.Medium
	switch size {
	case ExplosionSmall:
		edge = cfg.Small
	case ExplosionLarge:
		edge = cfg.Large
	}
	w.explosions.Add(Explosion{X: x, Y: y, Size: size, Edge: edge})
}

// bounds returns the play area.
func bounds(cfg config.InvadersConfig) core.Rect {
	return core.NewRect(0, 0, cfg.Arena.Width, cfg.Arena.Height)
}
