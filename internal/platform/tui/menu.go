package tui

import (
	"errors"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// newNameInput creates the player name field.
func newNameInput(name string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = invaders.MaxNameLength
	ti.Width = invaders.MaxNameLength + 1
	ti.Prompt = "> "
	ti.SetValue(SanitizeName(name))
	ti.Focus()
	return ti
}

// SanitizeName keeps letters and digits only, up to the name limit.
func SanitizeName(name string) string {
	var b strings.Builder
	n := 0
	for _, r := range name {
		if n == invaders.MaxNameLength {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			n++
		}
	}
	return b.String()
}

// updateMenu handles keys on the name entry screen.
func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Start):
		if err := m.match.Start(m.name.Value()); err != nil {
			if errors.Is(err, invaders.ErrEmptyName) {
				m.err = "Please enter your name"
			} else {
				m.err = err.Error()
			}
			return m, nil
		}
		m.err = ""
		m.held.reset()
		m.snap = m.match.Snapshot()
		m.logger.Info("match started", "player", m.match.PlayerName(), "match", m.match.ID())
		return m, nil
	}

	// Only letters and digits reach the field.
	if msg.Type == tea.KeyRunes {
		filtered := []rune(SanitizeName(string(msg.Runes)))
		if len(filtered) == 0 {
			return m, nil
		}
		msg.Runes = filtered
	} else if msg.Type == tea.KeySpace {
		return m, nil
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

// refreshRecent reloads the recent-games table from the ledger.
func (m *Model) refreshRecent() {
	if m.ledger == nil {
		m.recent.SetRows(nil)
		return
	}
	m.recent.SetRows(recentRows(m.ledger.ReadRecent(m.ledger.Retain())))
}

// menuView renders the name entry screen with recent games.
func (m Model) menuView() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S P A C E   I N V A D E R S"), m.width))
	b.WriteString("\n\n")

	form := labelStyle.Render("Enter your name:") + "\n" + m.name.View()
	if m.err != "" {
		form += "\n" + errorStyle.Render(m.err)
	}

	recent := labelStyle.Render("Recent games") + "\n"
	if len(m.recent.Rows()) == 0 {
		recent += helpStyle.Render("No games yet")
	} else {
		recent += m.recent.View()
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Render(form),
		"",
		panelStyle.Render(recent),
	)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))
	b.WriteString("\n\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(menuHelp{m.keys})), m.width))
	return b.String()
}
