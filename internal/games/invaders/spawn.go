package invaders

import "github.com/vovakirdan/tui-invaders/internal/config"

// Rand is the random source used to pick which alien fires.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// seedFormation fills the alien arena with the configured grid.
// Aliens are added row by row, left to right.
func seedFormation(w *world, cfg config.InvadersConfig) {
	f := cfg.Formation
	for row := range f.Rows {
		for col := range f.Cols {
			w.aliens.Add(Alien{
				X:       f.OriginX + col*f.SpacingX,
				Y:       f.OriginY + row*f.SpacingY,
				W:       cfg.Aliens.Width,
				H:       cfg.Aliens.Height,
				Dir:     1,
				Variant: alienVariant(row),
			})
		}
	}
}

// shotController schedules alien fire. The cooldown is shared by the whole
// formation.
type shotController struct {
	lastShotMs int64
}

func (c *shotController) reset(nowMs int64) {
	c.lastShotMs = nowMs
}

// step fires one bullet from a random surviving alien when the cooldown
// has strictly elapsed and the bullet cap allows it.
func (c *shotController) step(w *world, nowMs int64, rng Rand, cfg config.InvadersConfig) []Event {
	if nowMs-c.lastShotMs <= int64(cfg.Aliens.CooldownMs) {
		return nil
	}
	if w.alienShots.Len() >= cfg.Bullets.MaxAlienBullets {
		return nil
	}
	shooters := w.aliens.Handles()
	if len(shooters) == 0 {
		return nil
	}
	a, ok := w.aliens.Get(shooters[rng.Intn(len(shooters))])
	if !ok {
		return nil
	}
	box := a.Box()
	w.alienShots.Add(AlienBullet{
		X: a.X,
		Y: box.Bottom(),
		W: cfg.Bullets.Width,
		H: cfg.Bullets.Height,
	})
	c.lastShotMs = nowMs
	return []Event{{Kind: EventAlienFired, X: a.X, Y: box.Bottom()}}
}
