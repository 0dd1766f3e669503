package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Positions are entity centres in play-area units. Boxes are derived
// from the centre and the configured sprite size.

// Ship is the player's ship.
type Ship struct {
	X, Y            int
	W, H            int
	HealthMax       int
	HealthRemaining int
	LastShotMs      int64
}

// Box returns the ship's bounding box.
func (s *Ship) Box() core.Rect {
	return core.RectAt(s.X, s.Y, s.W, s.H)
}

// Destroyed reports whether the ship has no health left.
func (s *Ship) Destroyed() bool {
	return s.HealthRemaining <= 0
}

// PlayerBullet travels upward from the ship.
type PlayerBullet struct {
	X, Y int
	W, H int
}

// Box returns the bullet's bounding box.
func (b *PlayerBullet) Box() core.Rect {
	return core.RectAt(b.X, b.Y, b.W, b.H)
}

// Alien is one member of the formation.
type Alien struct {
	X, Y    int
	W, H    int
	Dir     int // +1 right, -1 left
	Counter int // Signed travel since the last reversal
	Variant int // Artwork index
}

// Box returns the alien's bounding box.
func (a *Alien) Box() core.Rect {
	return core.RectAt(a.X, a.Y, a.W, a.H)
}

// AlienBullet travels downward from an alien.
type AlienBullet struct {
	X, Y int
	W, H int
}

// Box returns the bullet's bounding box.
func (b *AlienBullet) Box() core.Rect {
	return core.RectAt(b.X, b.Y, b.W, b.H)
}

// ExplosionSize selects the explosion scale.
type ExplosionSize int

const (
	ExplosionSmall  ExplosionSize = iota + 1 // Ship hit
	ExplosionMedium                          // Alien destroyed
	ExplosionLarge                           // Ship destroyed
)

// String returns the size name.
func (s ExplosionSize) String() string {
	switch s {
	case ExplosionSmall:
		return "small"
	case ExplosionMedium:
		return "medium"
	case ExplosionLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Explosion is a purely visual animation.
type Explosion struct {
	X, Y    int
	Size    ExplosionSize
	Edge    int // Square edge length for Size
	Frame   int
	Counter int
}

// Box returns the explosion's square.
func (e *Explosion) Box() core.Rect {
	return core.RectAt(e.X, e.Y, e.Edge, e.Edge)
}
