// Package tui provides the Bubble Tea front end for the invaders game:
// the program loop, key handling, the name-entry menu and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxTickElapsed caps the time fed to one simulation tick, so a stalled
// terminal does not fast-forward the match.
const maxTickElapsed = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// clock converts tick timestamps into whole elapsed milliseconds.
// The remainder carries over to the next tick.
type clock struct {
	last time.Time
}

// advance returns the milliseconds since the previous call.
// The first call returns 0.
func (c *clock) advance(now time.Time) int64 {
	if c.last.IsZero() || now.Before(c.last) {
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	if d > maxTickElapsed {
		c.last = now
		return maxTickElapsed.Milliseconds()
	}
	ms := d.Milliseconds()
	c.last = c.last.Add(time.Duration(ms) * time.Millisecond)
	return ms
}
