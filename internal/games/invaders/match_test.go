package invaders

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/history"
)

const frameMs = 16

// memRecorder collects appended entries.
type memRecorder struct {
	entries []history.Entry
	err     error
}

func (r *memRecorder) Append(e history.Entry) error {
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, e)
	return nil
}

func newTestMatch(t *testing.T, tweak func(*config.InvadersConfig)) (*Match, *memRecorder) {
	t.Helper()
	cfg := config.DefaultInvadersConfig()
	if tweak != nil {
		tweak(&cfg)
	}
	rec := &memRecorder{}
	return NewMatch(cfg, 42, WithRecorder(rec)), rec
}

// runUntilTerminal ticks until the match ends or maxTicks elapse.
func runUntilTerminal(m *Match, maxTicks int, input func(Snapshot) core.InputFrame) (Snapshot, int) {
	snap := m.Snapshot()
	for i := range maxTicks {
		snap = m.Tick(frameMs, input(snap))
		if snap.Phase.Terminal() {
			return snap, i + 1
		}
	}
	return snap, maxTicks
}

func noInput(Snapshot) core.InputFrame { return core.NewInputFrame() }

func TestStartRejectsBlankName(t *testing.T) {
	m, _ := newTestMatch(t, nil)

	for _, name := range []string{"", "   ", "\t\n"} {
		err := m.Start(name)
		require.ErrorIs(t, err, ErrEmptyName)
		assert.Equal(t, PhaseMenu, m.Phase())
		assert.Empty(t, m.ID())
	}
}

func TestStartInitialState(t *testing.T) {
	m, _ := newTestMatch(t, nil)
	require.NoError(t, m.Start("  ada  "))

	snap := m.Snapshot()
	assert.Equal(t, PhaseCountdown, snap.Phase)
	assert.Equal(t, 3, snap.Countdown)
	assert.Equal(t, "ada", snap.PlayerName)
	assert.NotEmpty(t, snap.MatchID)
	assert.Zero(t, snap.Score)
	assert.Len(t, snap.Aliens, 25)
	require.NotNil(t, snap.Ship)
	assert.Equal(t, 3, snap.Health)
	x, y := snap.Ship.Box.Center()
	assert.Equal(t, 300, x)
	assert.Equal(t, 700, y)
}

func TestCountdownThenActive(t *testing.T) {
	m, _ := newTestMatch(t, nil)
	require.NoError(t, m.Start("ada"))
	before := m.Snapshot()

	snap := m.Tick(999, noInput(before))
	assert.Equal(t, 3, snap.Countdown)
	snap = m.Tick(1, noInput(snap))
	assert.Equal(t, 2, snap.Countdown)
	snap = m.Tick(1000, noInput(snap))
	assert.Equal(t, 1, snap.Countdown)
	assert.Equal(t, PhaseCountdown, snap.Phase)

	snap = m.Tick(1000, core.InputOf(core.ActionLeft, core.ActionFire))
	assert.Equal(t, 0, snap.Countdown)
	assert.Equal(t, PhaseActive, snap.Phase)

	// No gameplay happened during the countdown.
	assert.Equal(t, before.Aliens, snap.Aliens)
	assert.Equal(t, before.Ship, snap.Ship)
	assert.Empty(t, snap.Bullets)
	assert.Empty(t, snap.AlienBullets)
}

func TestCountdownLongTicks(t *testing.T) {
	tests := []struct {
		name      string
		ticks     []int64
		countdown int
		phase     Phase
	}{
		{"one tick spanning the countdown", []int64{3000}, 0, PhaseActive},
		{"one tick spanning two seconds", []int64{2500}, 1, PhaseCountdown},
		{"remainder carries into the next second", []int64{2500, 500}, 0, PhaseActive},
		{"tick past the end", []int64{5000}, 0, PhaseActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestMatch(t, nil)
			require.NoError(t, m.Start("ada"))

			var snap Snapshot
			for _, ms := range tt.ticks {
				snap = m.Tick(ms, core.NewInputFrame())
			}
			assert.Equal(t, tt.countdown, snap.Countdown)
			assert.Equal(t, tt.phase, snap.Phase)
		})
	}
}

func TestCountdownFrameTicksKeepSecondBoundaries(t *testing.T) {
	m, _ := newTestMatch(t, nil)
	require.NoError(t, m.Start("ada"))

	ticks := 0
	snap := m.Snapshot()
	for snap.Phase == PhaseCountdown && ticks < 1000 {
		snap = m.Tick(frameMs, core.NewInputFrame())
		ticks++
	}
	require.Equal(t, PhaseActive, snap.Phase)
	// 188 * 16ms is the first frame at or past 3000ms.
	assert.Equal(t, 188, ticks)
	assert.Equal(t, int64(3008), snap.ElapsedMs)
}

func TestZeroElapsedTickIsNoop(t *testing.T) {
	m, _ := newTestMatch(t, nil)
	require.NoError(t, m.Start("ada"))
	for range 300 {
		m.Tick(frameMs, core.InputOf(core.ActionFire, core.ActionRight))
	}
	before := m.Snapshot()
	require.Equal(t, PhaseActive, before.Phase)

	for _, elapsed := range []int64{0, -5} {
		after := m.Tick(elapsed, core.InputOf(core.ActionFire, core.ActionLeft))
		assert.Equal(t, before.Hash(), after.Hash())
		assert.Equal(t, before.Explosions, after.Explosions)
		assert.Empty(t, after.Events)
	}
}

func TestTickInMenuDoesNothing(t *testing.T) {
	m, rec := newTestMatch(t, nil)
	snap := m.Tick(frameMs, core.InputOf(core.ActionFire))
	assert.Equal(t, PhaseMenu, snap.Phase)
	assert.Nil(t, snap.Ship)
	assert.Empty(t, snap.Aliens)
	assert.Empty(t, rec.entries)
}

func TestVictoryScenario(t *testing.T) {
	m, rec := newTestMatch(t, func(c *config.InvadersConfig) {
		c.Match.Countdown = 0
		c.Aliens.MoveSpeed = 0
		c.Bullets.MaxAlienBullets = 0
	})
	require.NoError(t, m.Start("ada"))
	require.Equal(t, PhaseActive, m.Phase())

	prevAliens := 25
	kills := 0
	aim := func(s Snapshot) core.InputFrame {
		require.LessOrEqual(t, len(s.Aliens), prevAliens, "alien count never increases")
		prevAliens = len(s.Aliens)
		kills += CountEvents(s.Events, EventAlienDestroyed)

		in := core.NewInputFrame()
		if s.Ship == nil || len(s.Aliens) == 0 {
			return in
		}
		shipX, _ := s.Ship.Box.Center()
		targetX, _ := s.Aliens[0].Box.Center()
		switch {
		case targetX < shipX-4:
			in.Set(core.ActionLeft)
		case targetX > shipX+4:
			in.Set(core.ActionRight)
		default:
			in.Set(core.ActionFire)
		}
		return in
	}

	snap, _ := runUntilTerminal(m, 200000, aim)
	kills += CountEvents(snap.Events, EventAlienDestroyed)

	require.Equal(t, PhaseVictory, snap.Phase)
	assert.Equal(t, 25, kills)
	assert.Equal(t, 250, snap.Score)
	assert.Zero(t, snap.AliensRemaining())
	assert.True(t, HasEvent(snap.Events, EventVictory))

	require.Len(t, rec.entries, 1)
	got := rec.entries[0]
	assert.Equal(t, "ada", got.PlayerName)
	assert.Equal(t, history.ResultVictory, got.Result)
	assert.Equal(t, 250, got.Score)
	assert.Equal(t, snap.ElapsedMs, got.DurationMs)
	assert.Equal(t, m.ID(), got.MatchID)

	// Terminal phase is frozen and records only once.
	frozen := snap.Bullets
	for range 100 {
		snap = m.Tick(frameMs, core.InputOf(core.ActionFire, core.ActionLeft))
	}
	assert.Equal(t, PhaseVictory, snap.Phase)
	assert.Equal(t, 250, snap.Score)
	assert.Equal(t, frozen, snap.Bullets)
	assert.Len(t, rec.entries, 1)
}

func TestDefeatScenario(t *testing.T) {
	m, rec := newTestMatch(t, func(c *config.InvadersConfig) {
		c.Match.Countdown = 0
		c.Aliens.MoveSpeed = 0
	})
	require.NoError(t, m.Start("bob"))

	// A single alien straight above the ship.
	m.world.aliens.Clear()
	m.world.aliens.Add(Alien{X: m.world.ship.X, Y: 100, W: 40, H: 36, Dir: 1})

	hits := 0
	lastHealth := 3
	watch := func(s Snapshot) core.InputFrame {
		hits += CountEvents(s.Events, EventShipHit)
		if s.Ship != nil {
			require.LessOrEqual(t, s.Health, lastHealth, "health never increases")
			lastHealth = s.Health
		}
		return core.NewInputFrame()
	}

	snap, _ := runUntilTerminal(m, 20000, watch)
	hits += CountEvents(snap.Events, EventShipHit)

	require.Equal(t, PhaseDefeat, snap.Phase)
	assert.Equal(t, 3, hits)
	assert.Nil(t, snap.Ship, "destroyed ship is removed in the same tick")
	assert.Zero(t, snap.Health)
	assert.True(t, HasEvent(snap.Events, EventShipDestroyed))
	assert.True(t, HasEvent(snap.Events, EventDefeat))
	assert.Equal(t, 1, countLarge(snap), "large explosion at the ship")

	require.Len(t, rec.entries, 1)
	assert.Equal(t, history.ResultDefeat, rec.entries[0].Result)
	assert.Equal(t, "bob", rec.entries[0].PlayerName)
	assert.Zero(t, rec.entries[0].Score)

	// The explosion keeps animating after the match ended, then goes away.
	snap = m.Tick(frameMs, core.NewInputFrame())
	assert.Equal(t, 1, countLarge(snap))
	for range 20 {
		snap = m.Tick(frameMs, core.NewInputFrame())
	}
	assert.Zero(t, countLarge(snap))
	assert.Equal(t, PhaseDefeat, snap.Phase)
	assert.Len(t, rec.entries, 1)
}

// TestVictoryUnderFire plays the default formation with alien fire, movement
// and the countdown all active. Only the ship's health is raised so the
// outcome does not depend on dodging.
func TestVictoryUnderFire(t *testing.T) {
	m, rec := newTestMatch(t, func(c *config.InvadersConfig) {
		c.Ship.Health = 1_000_000
	})
	cfg := m.Config()
	require.Equal(t, 1000, cfg.Aliens.CooldownMs)
	require.Equal(t, 5, cfg.Bullets.MaxAlienBullets)
	require.NotZero(t, cfg.Aliens.MoveSpeed)
	require.NoError(t, m.Start("cat"))
	require.Equal(t, PhaseCountdown, m.Phase())

	fired, kills, hits := 0, 0, 0
	prevAliens := 25
	aim := func(s Snapshot) core.InputFrame {
		require.LessOrEqual(t, len(s.AlienBullets), cfg.Bullets.MaxAlienBullets)
		require.LessOrEqual(t, s.AliensRemaining(), prevAliens, "alien count never increases")
		prevAliens = s.AliensRemaining()
		fired += CountEvents(s.Events, EventAlienFired)
		kills += CountEvents(s.Events, EventAlienDestroyed)
		hits += CountEvents(s.Events, EventShipHit)

		in := core.NewInputFrame()
		if s.Ship == nil || len(s.Aliens) == 0 {
			return in
		}
		shipX, _ := s.Ship.Box.Center()
		targetX, _ := s.Aliens[len(s.Aliens)-1].Box.Center()
		switch {
		case targetX < shipX-4:
			in.Set(core.ActionLeft)
		case targetX > shipX+4:
			in.Set(core.ActionRight)
		default:
			in.Set(core.ActionFire)
		}
		return in
	}

	snap, _ := runUntilTerminal(m, 200000, aim)
	kills += CountEvents(snap.Events, EventAlienDestroyed)

	require.Equal(t, PhaseVictory, snap.Phase)
	assert.Equal(t, 25, kills)
	assert.Zero(t, snap.AliensRemaining())
	assert.Equal(t, 250, snap.Score)
	assert.Positive(t, fired, "aliens fired during the match")
	assert.Equal(t, cfg.Ship.Health-hits, snap.Health)

	require.Len(t, rec.entries, 1)
	got := rec.entries[0]
	assert.Equal(t, "cat", got.PlayerName)
	assert.Equal(t, history.ResultVictory, got.Result)
	assert.Equal(t, 250, got.Score)
	assert.Equal(t, snap.ElapsedMs, got.DurationMs)
	assert.GreaterOrEqual(t, got.DurationMs, int64(3000), "duration includes the countdown")
}

func countLarge(s Snapshot) int {
	n := 0
	for _, e := range s.Explosions {
		if e.Size == ExplosionLarge {
			n++
		}
	}
	return n
}

func TestAlienBulletsNeverExceedCap(t *testing.T) {
	m, _ := newTestMatch(t, func(c *config.InvadersConfig) {
		c.Match.Countdown = 0
		c.Aliens.CooldownMs = 0
		c.Ship.Health = 1000
	})
	require.NoError(t, m.Start("ada"))

	peak := 0
	for range 600 {
		snap := m.Tick(frameMs, core.NewInputFrame())
		require.LessOrEqual(t, len(snap.AlienBullets), 5)
		peak = max(peak, len(snap.AlienBullets))
	}
	assert.Equal(t, 5, peak)
}

func TestSingleOverlapScoresOnce(t *testing.T) {
	m, _ := newTestMatch(t, func(c *config.InvadersConfig) {
		c.Match.Countdown = 0
		c.Bullets.MaxAlienBullets = 0
	})
	require.NoError(t, m.Start("ada"))
	m.world.aliens.Clear()
	m.world.aliens.Add(Alien{X: 300, Y: 400, W: 40, H: 36, Dir: 1})
	m.world.bullets.Add(PlayerBullet{X: 300, Y: 400, W: 6, H: 16})

	snap := m.Tick(frameMs, core.NewInputFrame())
	assert.Equal(t, 10, snap.Score)
	assert.Equal(t, 1, CountEvents(snap.Events, EventAlienDestroyed))
	assert.Empty(t, snap.Aliens)
	assert.Empty(t, snap.Bullets)
	require.Len(t, snap.Explosions, 1)
	assert.Equal(t, ExplosionMedium, snap.Explosions[0].Size)

	snap = m.Tick(frameMs, core.NewInputFrame())
	assert.Equal(t, PhaseVictory, snap.Phase)
	assert.Equal(t, 10, snap.Score)
}

func TestRecorderFailureIsNotFatal(t *testing.T) {
	m, rec := newTestMatch(t, func(c *config.InvadersConfig) {
		c.Match.Countdown = 0
	})
	rec.err = errors.New("disk full")
	require.NoError(t, m.Start("ada"))
	m.world.aliens.Clear()

	snap := m.Tick(frameMs, core.NewInputFrame())
	assert.Equal(t, PhaseVictory, snap.Phase)
	assert.Empty(t, rec.entries)
}

func TestRestartAndReset(t *testing.T) {
	m, rec := newTestMatch(t, func(c *config.InvadersConfig) {
		c.Match.Countdown = 0
	})
	require.NoError(t, m.Start("ada"))
	firstID := m.ID()

	require.NoError(t, m.Restart(), "restart outside a terminal phase is ignored")
	assert.Equal(t, firstID, m.ID())

	m.world.aliens.Clear()
	m.Tick(frameMs, core.NewInputFrame())
	require.Equal(t, PhaseVictory, m.Phase())

	require.NoError(t, m.Restart())
	assert.Equal(t, PhaseActive, m.Phase())
	assert.NotEqual(t, firstID, m.ID())
	assert.Equal(t, "ada", m.PlayerName())
	assert.Len(t, m.Snapshot().Aliens, 25)

	m.Reset()
	snap := m.Snapshot()
	assert.Equal(t, PhaseMenu, snap.Phase)
	assert.Nil(t, snap.Ship)
	assert.Empty(t, snap.Aliens)
	assert.Len(t, rec.entries, 1, "an abandoned match is not recorded")
}

func TestMatchDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 2000)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%7 == 0:
			inputs[i].Set(core.ActionFire)
		case i%200 < 100:
			inputs[i].Set(core.ActionLeft)
		default:
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func() Snapshot {
		m := NewMatch(config.DefaultInvadersConfig(), 7)
		require.NoError(t, m.Start("ada"))
		var snap Snapshot
		for _, in := range inputs {
			snap = m.Tick(frameMs, in)
		}
		return snap
	}

	a, b := run(), run()
	assert.NotEqual(t, a.MatchID, b.MatchID)
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.Phase, b.Phase)
}

func TestSnapshotHashChangesWithState(t *testing.T) {
	m, _ := newTestMatch(t, func(c *config.InvadersConfig) {
		c.Match.Countdown = 0
	})
	require.NoError(t, m.Start("ada"))
	a := m.Snapshot()
	b := m.Tick(frameMs, core.InputOf(core.ActionRight))
	assert.NotEqual(t, a.Hash(), b.Hash())
}
