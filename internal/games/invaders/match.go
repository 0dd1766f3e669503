// Package invaders implements the Space Invaders simulation: the entity
// arenas, movement and collision rules, alien fire scheduling and the match
// state machine. It reads no clock and draws nothing on its own; the
// terminal front end feeds it elapsed time and input and renders the
// returned Snapshot.
package invaders

import (
	"errors"
	"io"
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/history"
)

// ErrEmptyName is returned by Start when the player name is blank.
var ErrEmptyName = errors.New("invaders: player name is empty")

// MaxNameLength is the longest player name the front end accepts.
const MaxNameLength = 15

// Phase is the match lifecycle state.
type Phase int

const (
	PhaseMenu      Phase = iota // Waiting for a player name
	PhaseCountdown              // Pre-play countdown, no gameplay
	PhaseActive                 // Gameplay running
	PhaseVictory                // Every alien destroyed
	PhaseDefeat                 // Ship destroyed
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseCountdown:
		return "countdown"
	case PhaseActive:
		return "active"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Terminal reports whether the match is over.
func (p Phase) Terminal() bool {
	return p == PhaseVictory || p == PhaseDefeat
}

// Option configures a Match.
type Option func(*Match)

// WithRand sets the random source for alien fire.
func WithRand(r Rand) Option {
	return func(m *Match) {
		if r != nil {
			m.rng = r
		}
	}
}

// WithRecorder sets where finished matches are reported.
func WithRecorder(r history.Recorder) Option {
	return func(m *Match) {
		m.recorder = r
	}
}

// WithLogger sets the match logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Match) {
		if l != nil {
			m.logger = l
		}
	}
}

// Match is one player's game: all entities plus score, phase and timers.
// It is not safe for concurrent use; each session owns its own Match.
type Match struct {
	cfg      config.InvadersConfig
	rng      Rand
	recorder history.Recorder
	logger   *log.Logger

	world world
	shots shotController

	id         string
	playerName string
	phase      Phase
	score      int
	countdown  int
	nowMs      int64 // Milliseconds since Start
	lastCount  int64
	durationMs int64
	recorded   bool

	events []Event // Events of the last tick
}

// NewMatch creates a match in the Menu phase. Without WithRand alien fire
// is driven by a math/rand source seeded with seed.
func NewMatch(cfg config.InvadersConfig, seed int64, opts ...Option) *Match {
	m := &Match{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)), //#nosec G404 -- gameplay randomness
		logger: log.New(io.Discard),
		phase:  PhaseMenu,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Config returns the configuration the match runs with.
func (m *Match) Config() config.InvadersConfig {
	return m.cfg
}

// Phase returns the current phase.
func (m *Match) Phase() Phase {
	return m.phase
}

// ID returns the current match identifier, empty in the Menu phase.
func (m *Match) ID() string {
	return m.id
}

// PlayerName returns the current player's name.
func (m *Match) PlayerName() string {
	return m.playerName
}

// Score returns the current score.
func (m *Match) Score() int {
	return m.score
}

// Start begins a new match for name. Surrounding whitespace is ignored.
// A blank name returns ErrEmptyName and leaves the match untouched.
func (m *Match) Start(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	m.world.clear()
	m.world.ship = newShip(m.cfg)
	seedFormation(&m.world, m.cfg)

	m.id = uuid.NewString()
	m.playerName = name
	m.score = 0
	m.nowMs = 0
	m.lastCount = 0
	m.durationMs = 0
	m.recorded = false
	m.shots.reset(0)
	m.countdown = m.cfg.Match.Countdown
	m.events = m.events[:0]

	m.phase = PhaseCountdown
	if m.countdown <= 0 {
		m.countdown = 0
		m.phase = PhaseActive
	}

	m.logger.Debug("match started", "match", m.id, "player", name, "aliens", m.world.aliens.Len())
	return nil
}

// Restart begins a new match for the same player after the previous one
// ended. It does nothing outside the Victory and Defeat phases.
func (m *Match) Restart() error {
	if !m.phase.Terminal() {
		return nil
	}
	return m.Start(m.playerName)
}

// Reset abandons the current match and returns to the Menu phase.
// An unfinished match is not recorded.
func (m *Match) Reset() {
	m.world.clear()
	m.id = ""
	m.score = 0
	m.countdown = 0
	m.nowMs = 0
	m.durationMs = 0
	m.events = m.events[:0]
	m.phase = PhaseMenu
}

// Tick advances the match by elapsedMs using the actions in in.
// A tick with no elapsed time changes nothing.
func (m *Match) Tick(elapsedMs int64, in core.InputFrame) Snapshot {
	m.events = m.events[:0]
	if elapsedMs <= 0 || m.phase == PhaseMenu {
		return m.Snapshot()
	}
	m.nowMs += elapsedMs

	switch m.phase {
	case PhaseCountdown:
		m.tickCountdown()
	case PhaseActive:
		m.tickActive(in)
	}

	stepExplosions(&m.world, m.cfg.Explosions)
	m.world.compact()
	return m.Snapshot()
}

// tickCountdown counts down once per whole second since Start, however
// the elapsed time was split into ticks.
func (m *Match) tickCountdown() {
	for m.countdown > 0 && m.nowMs-m.lastCount >= 1000 {
		m.countdown--
		m.lastCount += 1000
	}
	if m.countdown <= 0 {
		m.countdown = 0
		m.phase = PhaseActive
		m.logger.Debug("countdown finished", "match", m.id)
	}
}

func (m *Match) tickActive(in core.InputFrame) {
	m.apply(m.shots.step(&m.world, m.nowMs, m.rng, m.cfg))

	if m.world.aliens.Len() == 0 {
		m.finish(history.ResultVictory)
		return
	}

	if s := m.world.ship; s != nil {
		moveShip(s, in, m.cfg)
		m.apply(shipShoot(&m.world, in, m.nowMs, m.cfg))
	}
	m.apply(destroyShipIfDead(&m.world))
	if m.world.ship == nil {
		m.finish(history.ResultDefeat)
		return
	}

	m.apply(stepPlayerBullets(&m.world, m.cfg))
	stepAliens(&m.world, m.cfg)
	m.apply(stepAlienBullets(&m.world, m.cfg))

	m.apply(destroyShipIfDead(&m.world))
	if m.world.ship == nil {
		m.finish(history.ResultDefeat)
	}
}

// apply records events and carries out their side effects exactly once.
func (m *Match) apply(events []Event) {
	for _, ev := range events {
		switch ev.Kind {
		case EventAlienDestroyed:
			m.score += ev.Points
			m.world.spawnExplosion(ev.X, ev.Y, ExplosionMedium, m.cfg.Explosions)
		case EventShipHit:
			m.world.spawnExplosion(ev.X, ev.Y, ExplosionSmall, m.cfg.Explosions)
		case EventShipDestroyed:
			m.world.spawnExplosion(ev.X, ev.Y, ExplosionLarge, m.cfg.Explosions)
		}
		m.events = append(m.events, ev)
	}
}

// finish enters a terminal phase and reports the outcome once per match.
func (m *Match) finish(result history.Result) {
	if result == history.ResultVictory {
		m.phase = PhaseVictory
		m.events = append(m.events, Event{Kind: EventVictory})
	} else {
		m.phase = PhaseDefeat
		m.events = append(m.events, Event{Kind: EventDefeat})
	}
	if m.recorded {
		return
	}
	m.recorded = true
	m.durationMs = m.nowMs

	entry := history.Entry{
		PlayerName: m.playerName,
		Score:      m.score,
		Result:     result,
		DurationMs: m.durationMs,
		MatchID:    m.id,
	}
	m.logger.Debug("match finished", "match", m.id, "player", m.playerName, "result", result, "score", m.score)
	if m.recorder == nil {
		return
	}
	if err := m.recorder.Append(entry); err != nil {
		m.logger.Warn("could not record match", "match", m.id, "error", err)
	}
}
