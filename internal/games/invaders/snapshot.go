package invaders

import (
	"encoding/binary"
	"slices"

	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ShipView is a read-only copy of the ship.
type ShipView struct {
	Box             core.Rect
	HealthMax       int
	HealthRemaining int
}

// EntityView is a read-only copy of a bullet.
type EntityView struct {
	Handle Handle
	Box    core.Rect
}

// AlienView is a read-only copy of an alien.
type AlienView struct {
	Handle  Handle
	Box     core.Rect
	Dir     int
	Counter int
	Variant int
}

// ExplosionView is a read-only copy of an explosion.
type ExplosionView struct {
	Handle  Handle
	Box     core.Rect
	Size    ExplosionSize
	Frame   int
	Counter int
}

// Snapshot is the complete observable state of a match after a tick.
// Slices are copies; mutating them does not affect the match.
type Snapshot struct {
	MatchID    string
	PlayerName string
	Phase      Phase
	Countdown  int
	Score      int
	Health     int
	HealthMax  int
	ElapsedMs  int64 // Time since Start
	DurationMs int64 // Match length once terminal
	Arena      core.Rect

	Ship         *ShipView // Nil once destroyed
	Bullets      []EntityView
	Aliens       []AlienView
	AlienBullets []EntityView
	Explosions   []ExplosionView

	Events []Event
}

// Snapshot returns the current state without advancing the match.
func (m *Match) Snapshot() Snapshot {
	w := &m.world
	snap := Snapshot{
		MatchID:    m.id,
		PlayerName: m.playerName,
		Phase:      m.phase,
		Countdown:  m.countdown,
		Score:      m.score,
		HealthMax:  m.cfg.Ship.Health,
		ElapsedMs:  m.nowMs,
		DurationMs: m.durationMs,
		Arena:      bounds(m.cfg),
		Events:     slices.Clone(m.events),
	}
	if s := w.ship; s != nil {
		snap.Health = s.HealthRemaining
		snap.HealthMax = s.HealthMax
		snap.Ship = &ShipView{Box: s.Box(), HealthMax: s.HealthMax, HealthRemaining: s.HealthRemaining}
	}

	snap.Bullets = make([]EntityView, 0, w.bullets.Len())
	for h, b := range w.bullets.All() {
		snap.Bullets = append(snap.Bullets, EntityView{Handle: h, Box: b.Box()})
	}
	snap.Aliens = make([]AlienView, 0, w.aliens.Len())
	for h, a := range w.aliens.All() {
		snap.Aliens = append(snap.Aliens, AlienView{
			Handle:  h,
			Box:     a.Box(),
			Dir:     a.Dir,
			Counter: a.Counter,
			Variant: a.Variant,
		})
	}
	snap.AlienBullets = make([]EntityView, 0, w.alienShots.Len())
	for h, b := range w.alienShots.All() {
		snap.AlienBullets = append(snap.AlienBullets, EntityView{Handle: h, Box: b.Box()})
	}
	snap.Explosions = make([]ExplosionView, 0, w.explosions.Len())
	for h, e := range w.explosions.All() {
		snap.Explosions = append(snap.Explosions, ExplosionView{
			Handle:  h,
			Box:     e.Box(),
			Size:    e.Size,
			Frame:   e.Frame,
			Counter: e.Counter,
		})
	}
	return snap
}

// Hash returns a digest of the simulation state for determinism testing.
// The match ID and the tick's events are not included.
func (snap *Snapshot) Hash() uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 8)
	put := func(vals ...int64) {
		for _, v := range vals {
			buf = binary.LittleEndian.AppendUint64(buf[:0], uint64(v)) //#nosec G115 -- hash input
			_, _ = d.Write(buf)
		}
	}
	rect := func(r core.Rect) {
		put(int64(r.X), int64(r.Y), int64(r.W), int64(r.H))
	}

	_, _ = d.WriteString(snap.PlayerName)
	put(int64(snap.Phase), int64(snap.Countdown), int64(snap.Score), int64(snap.Health), snap.ElapsedMs)
	if snap.Ship != nil {
		put(1)
		rect(snap.Ship.Box)
	} else {
		put(0)
	}
	put(int64(len(snap.Bullets)))
	for _, b := range snap.Bullets {
		rect(b.Box)
	}
	put(int64(len(snap.Aliens)))
	for _, a := range snap.Aliens {
		rect(a.Box)
		put(int64(a.Dir), int64(a.Counter))
	}
	put(int64(len(snap.AlienBullets)))
	for _, b := range snap.AlienBullets {
		rect(b.Box)
	}
	put(int64(len(snap.Explosions)))
	for _, e := range snap.Explosions {
		rect(e.Box)
		put(int64(e.Size), int64(e.Frame), int64(e.Counter))
	}
	return d.Sum64()
}

// AliensRemaining returns the number of live aliens.
func (snap *Snapshot) AliensRemaining() int {
	return len(snap.Aliens)
}
