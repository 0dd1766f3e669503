package invaders

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestHealthBar(t *testing.T) {
	tests := []struct {
		health, max, width int
		want               string
	}{
		{3, 3, 6, "██████"},
		{2, 3, 6, "████░░"},
		{1, 3, 6, "██░░░░"},
		{0, 3, 6, "░░░░░░"},
		{5, 3, 3, "███"},
		{1, 0, 5, ""},
	}
	for _, tt := range tests {
		if got := HealthBar(tt.health, tt.max, tt.width); got != tt.want {
			t.Errorf("HealthBar(%d, %d, %d) = %q, want %q", tt.health, tt.max, tt.width, got, tt.want)
		}
	}
}

func TestRenderHUDAndEntities(t *testing.T) {
	m := NewMatch(config.DefaultInvadersConfig(), 1)
	if err := m.Start("ada"); err != nil {
		t.Fatal(err)
	}
	screen := core.NewScreen(80, 30)
	Render(screen, m.Snapshot(), false)

	hud := screen.Row(0)
	for _, want := range []string{"SCORE: 0", "ada", "HP "} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}

	out := screen.String()
	if !strings.Contains(out, "GET READY!") {
		t.Error("countdown overlay not drawn")
	}
	if !strings.ContainsRune(out, '█') {
		t.Error("ship not drawn")
	}
	if screen.Get(0, 1) != '┌' {
		t.Errorf("play area frame missing, got %q", screen.Get(0, 1))
	}
}

func TestRenderResultOverlay(t *testing.T) {
	tests := []struct {
		phase Phase
		title string
	}{
		{PhaseVictory, "YOU WIN!"},
		{PhaseDefeat, "GAME OVER!"},
	}
	for _, tt := range tests {
		snap := Snapshot{
			Phase:      tt.phase,
			PlayerName: "ada",
			Score:      120,
			DurationMs: 42500,
			HealthMax:  3,
			Arena:      core.NewRect(0, 0, 600, 800),
		}
		screen := core.NewScreen(80, 30)
		Render(screen, snap, false)
		out := screen.String()
		for _, want := range []string{tt.title, "Final score: 120", "Time: 42s", "R restart"} {
			if !strings.Contains(out, want) {
				t.Errorf("%s: overlay missing %q", tt.phase, want)
			}
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	screen := core.NewScreen(20, 8)
	Render(screen, Snapshot{}, false)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected size warning")
	}
}

func TestToCellsScalesAndClips(t *testing.T) {
	arena := core.NewRect(0, 0, 600, 800)
	area := core.NewRect(1, 2, 60, 40)

	tests := []struct {
		name string
		box  core.Rect
		want core.Rect
		ok   bool
	}{
		{"origin", core.NewRect(0, 0, 10, 20), core.NewRect(1, 2, 1, 1), true},
		{"tiny box still visible", core.NewRect(300, 400, 1, 1), core.NewRect(31, 22, 1, 1), true},
		{"whole arena", arena, area, true},
		{"clipped left", core.NewRect(-20, 0, 40, 20), core.NewRect(1, 2, 2, 1), true},
		{"outside", core.NewRect(0, 900, 10, 10), core.Rect{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := toCells(tt.box, arena, area)
			if ok != tt.ok || got != tt.want {
				t.Errorf("toCells(%+v) = %+v, %v; want %+v, %v", tt.box, got, ok, tt.want, tt.ok)
			}
		})
	}
}
