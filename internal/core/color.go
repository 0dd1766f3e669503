package core

// Color is a foreground color for a screen cell.
// The terminal layer maps it to ANSI 256-color codes.
type Color uint8

// Palette used by the invaders renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorMagenta
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorOrange
	ColorGray
)
