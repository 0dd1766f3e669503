package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/history"
)

// flashDuration is how long the health bar stays highlighted after a hit.
const flashDuration = 250 * time.Millisecond

// Options configures a Model.
type Options struct {
	Game    config.InvadersConfig
	Runtime core.RuntimeConfig
	Ledger  *history.Ledger // May be nil; nothing is recorded then
	Logger  *log.Logger
	Name    string // Prefilled player name
}

// Model is the Bubble Tea model for one player: the name entry menu, the
// match and its end screens.
type Model struct {
	match  *invaders.Match
	ledger *history.Ledger
	logger *log.Logger

	screen  *core.Screen
	runtime core.RuntimeConfig
	width   int
	height  int

	keys   KeyMap
	help   help.Model
	name   textinput.Model
	recent table.Model
	err    string

	held       heldInput
	clock      *clock
	now        func() time.Time
	snap       invaders.Snapshot
	flashUntil time.Time
	flash      bool
	quitting   bool
}

// NewModel creates a model showing the name entry menu.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = opts.Game.Arena.FPS
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	matchOpts := []invaders.Option{invaders.WithLogger(logger)}
	if opts.Ledger != nil {
		matchOpts = append(matchOpts, invaders.WithRecorder(opts.Ledger))
	}
	match := invaders.NewMatch(opts.Game, rt.Seed, matchOpts...)

	retain := history.DefaultRetain
	if opts.Ledger != nil {
		retain = opts.Ledger.Retain()
	}

	m := Model{
		match:   match,
		ledger:  opts.Ledger,
		logger:  logger,
		screen:  core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 1)),
		runtime: rt,
		width:   rt.ScreenW,
		height:  rt.ScreenH,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		name:    newNameInput(opts.Name),
		recent:  newRecentTable(retain),
		held:    newHeldInput(),
		clock:   &clock{},
		now:     time.Now,
		snap:    match.Snapshot(),
	}
	m.help.Width = rt.ScreenW
	m.refreshRecent()
	return m
}

// Init starts the cursor blink and the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd(m.runtime.TickRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.match.Phase() == invaders.PhaseMenu {
			return m.updateMenu(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	if m.match.Phase() == invaders.PhaseMenu {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input during and after a match.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Menu):
		m.logger.Debug("back to menu", "match", m.match.ID(), "phase", m.match.Phase())
		m.match.Reset()
		m.held.reset()
		m.snap = m.match.Snapshot()
		m.refreshRecent()
		m.name.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Restart):
		if m.match.Phase().Terminal() {
			if err := m.match.Restart(); err != nil {
				m.logger.Error("could not restart", "error", err)
				return m, nil
			}
			m.held.reset()
			m.snap = m.match.Snapshot()
		}
		return m, nil

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if a := m.keys.MapKey(msg); a != core.ActionNone {
		m.held.press(a, m.now())
	}
	return m, nil
}

// handleResize processes window resize events. The match keeps running;
// only the drawing scale changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the match by the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := m.clock.advance(now)
	wasOver := m.snap.Phase.Terminal()

	m.snap = m.match.Tick(elapsed, m.held.frame(now))

	if invaders.HasEvent(m.snap.Events, invaders.EventShipHit) {
		m.flashUntil = now.Add(flashDuration)
	}
	m.flash = now.Before(m.flashUntil)

	if !wasOver && m.snap.Phase.Terminal() {
		m.held.reset()
		m.logger.Info("match over",
			"player", m.snap.PlayerName,
			"result", m.snap.Phase,
			"score", m.snap.Score,
			"aliens_left", m.snap.AliensRemaining(),
			"duration_ms", m.snap.DurationMs,
		)
		m.refreshRecent()
	}

	return m, tickCmd(m.runtime.TickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".invaders", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	invaders.Render(m.screen, m.snap, m.flash)
	name := fmt.Sprintf("invaders_%s.txt", m.now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.snap.Phase == invaders.PhaseMenu {
		return m.menuView()
	}

	invaders.Render(m.screen, m.snap, m.flash)

	var hints help.KeyMap = playHelp{m.keys}
	if m.snap.Phase.Terminal() {
		hints = overHelp{m.keys}
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(hints))
}

// Snapshot returns the last state the match reported.
func (m Model) Snapshot() invaders.Snapshot {
	return m.snap
}

// Run starts the Bubble Tea program on the local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
