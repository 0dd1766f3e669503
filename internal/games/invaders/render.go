package invaders

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Minimum screen size for a playable view.
const (
	MinScreenW = 30
	MinScreenH = 12
)

// Render draws snap into dst. Row 0 holds the HUD; the rest is the play
// area, scaled to fit. flash highlights the health bar after a hit.
func Render(dst *core.Screen, snap Snapshot, flash bool) {
	dst.Clear()
	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorBrightRed)
		return
	}

	renderHUD(dst, snap, flash)

	frame := core.NewRect(0, 1, dst.Width(), dst.Height()-1)
	dst.DrawBox(frame, core.ColorGray)
	area := core.NewRect(frame.X+1, frame.Y+1, frame.W-2, frame.H-2)

	for _, a := range snap.Aliens {
		variant := a.Variant % len(alienSprites)
		drawSprite(dst, area, snap.Arena, a.Box, alienSprites[variant], alienColors[variant])
	}
	for _, b := range snap.Bullets {
		drawSprite(dst, area, snap.Arena, b.Box, playerBulletSprite, core.ColorBrightYellow)
	}
	for _, b := range snap.AlienBullets {
		drawSprite(dst, area, snap.Arena, b.Box, alienBulletSprite, core.ColorRed)
	}
	if snap.Ship != nil {
		drawSprite(dst, area, snap.Arena, snap.Ship.Box, shipSprite, core.ColorBrightGreen)
	}
	for _, e := range snap.Explosions {
		drawExplosion(dst, area, snap.Arena, e)
	}

	switch snap.Phase {
	case PhaseCountdown:
		mid := area.Y + area.H/2
		dst.DrawTextCentered(mid-1, "GET READY!", core.ColorBrightYellow)
		dst.DrawTextCentered(mid+1, fmt.Sprintf("%d", snap.Countdown), core.ColorWhite)
	case PhaseVictory:
		drawResult(dst, area, snap, "YOU WIN!", core.ColorBrightGreen)
	case PhaseDefeat:
		drawResult(dst, area, snap, "GAME OVER!", core.ColorBrightRed)
	}
}

func renderHUD(dst *core.Screen, snap Snapshot, flash bool) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("SCORE: %d", snap.Score), core.ColorWhite)

	name := snap.PlayerName
	dst.DrawTextColor((dst.Width()-len([]rune(name)))/2, 0, name, core.ColorCyan)

	bar := HealthBar(snap.Health, snap.HealthMax, 10)
	label := "HP "
	x := dst.Width() - len(label) - len([]rune(bar)) - 1
	barColor := core.ColorGreen
	switch {
	case flash:
		barColor = core.ColorBrightRed
	case snap.Health*3 <= snap.HealthMax:
		barColor = core.ColorRed
	case snap.Health*3 <= snap.HealthMax*2:
		barColor = core.ColorYellow
	}
	dst.DrawTextColor(x, 0, label, core.ColorWhite)
	dst.DrawTextColor(x+len(label), 0, bar, barColor)
}

// HealthBar renders health as a bar of width cells.
func HealthBar(health, maxHealth, width int) string {
	if maxHealth <= 0 || width <= 0 {
		return ""
	}
	health = core.Clamp(health, 0, maxHealth)
	filled := (health*width + maxHealth - 1) / maxHealth
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func drawResult(dst *core.Screen, area core.Rect, snap Snapshot, title string, c core.Color) {
	lines := []string{
		fmt.Sprintf("Player: %s", snap.PlayerName),
		fmt.Sprintf("Final score: %d", snap.Score),
		fmt.Sprintf("Time: %ds", snap.DurationMs/1000),
		"",
		"R restart   B menu   Q quit",
	}
	w := len([]rune(title))
	for _, l := range lines {
		w = core.Max(w, len([]rune(l)))
	}
	w = core.Min(w+4, area.W)
	h := core.Min(len(lines)+4, area.H)
	box := core.NewRect(area.X+(area.W-w)/2, area.Y+(area.H-h)/2, w, h)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextCentered(box.Y+1, title, c)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+2+i, l, core.ColorWhite)
	}
}

// toCells maps a play-area box onto screen cells inside area.
// Every visible box covers at least one cell.
func toCells(box, arena, area core.Rect) (core.Rect, bool) {
	if arena.Empty() || area.Empty() {
		return core.Rect{}, false
	}
	return fullCells(box, arena, area).Intersection(area)
}

func drawSprite(dst *core.Screen, area, arena, box core.Rect, rows []string, c core.Color) {
	cells, ok := toCells(box, arena, area)
	if !ok || len(rows) == 0 {
		return
	}
	full := fullCells(box, arena, area)
	for cy := cells.Y; cy < cells.Bottom(); cy++ {
		row := []rune(rows[(cy-full.Y)*len(rows)/full.H])
		if len(row) == 0 {
			continue
		}
		for cx := cells.X; cx < cells.Right(); cx++ {
			r := row[(cx-full.X)*len(row)/full.W]
			if r != ' ' {
				dst.SetColor(cx, cy, r, c)
			}
		}
	}
}

// fullCells is toCells without clipping, used to sample sprites of boxes
// that are partly outside the play area.
func fullCells(box, arena, area core.Rect) core.Rect {
	x0 := area.X + floorDiv(box.X*area.W, arena.W)
	y0 := area.Y + floorDiv(box.Y*area.H, arena.H)
	x1 := core.Max(area.X+ceilDiv(box.Right()*area.W, arena.W), x0+1)
	y1 := core.Max(area.Y+ceilDiv(box.Bottom()*area.H, arena.H), y0+1)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func drawExplosion(dst *core.Screen, area, arena core.Rect, e ExplosionView) {
	cells, ok := toCells(e.Box, arena, area)
	if !ok {
		return
	}
	glyph := explosionFrames[core.Clamp(e.Frame, 0, len(explosionFrames)-1)]
	c := core.ColorOrange
	switch e.Size {
	case ExplosionSmall:
		c = core.ColorYellow
	case ExplosionLarge:
		c = core.ColorBrightRed
	}
	dst.DrawRect(cells, glyph, c)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
