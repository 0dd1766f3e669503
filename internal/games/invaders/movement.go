package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// moveShip applies held Left/Right input and keeps the ship inside the
// play area.
func moveShip(s *Ship, in core.InputFrame, cfg config.InvadersConfig) {
	if in.Has(core.ActionLeft) {
		s.X -= cfg.Ship.Speed
	}
	if in.Has(core.ActionRight) {
		s.X += cfg.Ship.Speed
	}
	s.X = core.Clamp(s.X, s.W/2, cfg.Arena.Width-s.W+s.W/2)
}

// shipShoot fires a bullet from the ship's nose when Fire is held and the
// cooldown has strictly elapsed.
func shipShoot(w *world, in core.InputFrame, nowMs int64, cfg config.InvadersConfig) []Event {
	s := w.ship
	if s == nil || !in.Has(core.ActionFire) {
		return nil
	}
	if nowMs-s.LastShotMs <= int64(cfg.Ship.CooldownMs) {
		return nil
	}
	s.LastShotMs = nowMs
	y := s.Box().Y
	w.bullets.Add(PlayerBullet{X: s.X, Y: y, W: cfg.Bullets.Width, H: cfg.Bullets.Height})
	return []Event{{Kind: EventPlayerFired, X: s.X, Y: y}}
}

// moveAlien steps an alien sideways and reverses it once it has travelled
// further than the move distance. Reversing negates the counter, so the
// alien sweeps the same span in both directions.
func moveAlien(a *Alien, cfg config.AlienConfig) {
	a.X += a.Dir * cfg.MoveSpeed
	a.Counter += cfg.MoveSpeed
	if core.Abs(a.Counter) > cfg.MoveDistance {
		a.Dir = -a.Dir
		a.Counter = -a.Counter
	}
}

// stepPlayerBullets moves each player bullet up, drops those past the top
// edge and resolves hits against the formation.
func stepPlayerBullets(w *world, cfg config.InvadersConfig) []Event {
	var events []Event
	for h, b := range w.bullets.All() {
		b.Y -= cfg.Bullets.PlayerSpeed
		if b.Box().Bottom() < 0 {
			w.bullets.Remove(h)
			continue
		}
		if ev, hit := bulletHitsAlien(w, h, b, cfg.Aliens); hit {
			events = append(events, ev)
		}
	}
	return events
}

// stepAliens moves the formation.
func stepAliens(w *world, cfg config.InvadersConfig) {
	for _, a := range w.aliens.All() {
		moveAlien(a, cfg.Aliens)
	}
}

// stepAlienBullets moves each alien bullet down, drops those past the
// bottom edge and resolves hits against the ship.
func stepAlienBullets(w *world, cfg config.InvadersConfig) []Event {
	var events []Event
	for h, b := range w.alienShots.All() {
		b.Y += cfg.Bullets.AlienSpeed
		if b.Box().Y > cfg.Arena.Height {
			w.alienShots.Remove(h)
			continue
		}
		if ev, hit := bulletHitsShip(w, h, b); hit {
			events = append(events, ev)
		}
	}
	return events
}

// stepExplosions advances every explosion's animation. The last frame is
// held for one full period before the explosion is removed.
func stepExplosions(w *world, cfg config.ExplosionConfig) {
	last := cfg.Frames - 1
	for h, e := range w.explosions.All() {
		e.Counter++
		if e.Counter >= cfg.Speed && e.Frame < last {
			e.Counter = 0
			e.Frame++
		}
		if e.Frame >= last && e.Counter >= cfg.Speed {
			w.explosions.Remove(h)
		}
	}
}
