package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/history"
)

// newRecentTable creates the recent-games table shown on the menu.
func newRecentTable(rows int) table.Model {
	columns := []table.Column{
		{Title: "Player", Width: 16},
		{Title: "Result", Width: 8},
		{Title: "Score", Width: 6},
		{Title: "Time", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(rows+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.NoColor{}).
		Bold(false)
	t.SetStyles(s)
	return t
}

// recentRows formats entries newest first.
func recentRows(entries []history.Entry) []table.Row {
	newest := history.Newest(entries)
	rows := make([]table.Row, len(newest))
	for i, e := range newest {
		name := e.PlayerName
		if name == "" {
			name = "Unknown"
		}
		rows[i] = table.Row{
			name,
			string(e.Result),
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%ds", e.DurationSeconds()),
		}
	}
	return rows
}
