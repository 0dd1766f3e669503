package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// bulletHitsAlien removes bullet h and the first alien it overlaps.
// Aliens are checked in formation order, so a bullet touching two aliens
// always takes the same one.
func bulletHitsAlien(w *world, h Handle, b *PlayerBullet, cfg config.AlienConfig) (Event, bool) {
	box := b.Box()
	for ah, a := range w.aliens.All() {
		if !box.Intersects(a.Box()) {
			continue
		}
		w.aliens.Remove(ah)
		w.bullets.Remove(h)
		x, y := box.Center()
		return Event{Kind: EventAlienDestroyed, X: x, Y: y, Points: cfg.Points}, true
	}
	return Event{}, false
}

// bulletHitsShip removes alien bullet h if it touches the ship's silhouette
// and takes one point of health.
func bulletHitsShip(w *world, h Handle, b *AlienBullet) (Event, bool) {
	s := w.ship
	if s == nil {
		return Event{}, false
	}
	box := b.Box()
	if !shipMask.Overlaps(s.Box(), box) {
		return Event{}, false
	}
	w.alienShots.Remove(h)
	s.HealthRemaining = core.Max(s.HealthRemaining-1, 0)
	x, y := box.Center()
	return Event{Kind: EventShipHit, X: x, Y: y}, true
}

// destroyShipIfDead removes a ship with no health left.
func destroyShipIfDead(w *world) []Event {
	s := w.ship
	if s == nil || !s.Destroyed() {
		return nil
	}
	w.ship = nil
	return []Event{{Kind: EventShipDestroyed, X: s.X, Y: s.Y}}
}
