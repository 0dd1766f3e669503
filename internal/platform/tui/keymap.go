package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// holdDuration is how long a key press counts as held. Terminals send no
// key-up events, so a held key is seen as a stream of repeats; each repeat
// extends the hold.
const holdDuration = 180 * time.Millisecond

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Fire       key.Binding
	Start      key.Binding
	Restart    key.Binding
	Menu       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "fire"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Menu: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// playHelp lists the bindings shown during a match.
type playHelp struct{ k KeyMap }

func (h playHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Left, h.k.Right, h.k.Fire, h.k.Menu, h.k.Quit}
}

func (h playHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp(), {h.k.Screenshot}}
}

// overHelp lists the bindings shown after a match ended.
type overHelp struct{ k KeyMap }

func (h overHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Restart, h.k.Menu, h.k.Quit}
}

func (h overHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// menuHelp lists the bindings shown on the name entry screen.
type menuHelp struct{ k KeyMap }

func (h menuHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Start, h.k.ForceQuit}
}

func (h menuHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// MapKey translates a key message to a movement or fire action.
// Other keys map to ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	}
	return core.ActionNone
}

// heldInput turns key presses into per-tick held actions.
type heldInput struct {
	until map[core.Action]time.Time
}

func newHeldInput() heldInput {
	return heldInput{until: make(map[core.Action]time.Time)}
}

// press marks a as held until holdDuration after now. Pressing one
// direction releases the other.
func (h heldInput) press(a core.Action, now time.Time) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}
	h.until[a] = now.Add(holdDuration)
}

// frame returns the actions still held at now.
func (h heldInput) frame(now time.Time) core.InputFrame {
	f := core.NewInputFrame()
	for a, until := range h.until {
		if now.Before(until) {
			f.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	return f
}

func (h heldInput) reset() {
	clear(h.until)
}
