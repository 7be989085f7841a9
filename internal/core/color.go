package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorBlue
	ColorCyan
	ColorGreen
	ColorBrightRed
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
)
