package core

// Color represents a foreground color for a screen cell.
// Values map onto the ANSI 16-colour palette plus a few 256-colour extras.
type Color uint8

// Colors used by sprites, the HUD and overlays.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)
