package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to a terminal style.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorAccent        // ball, paddle and blocks (#0095DD)
	ColorBorder        // playfield frame
	ColorMuted         // hints and secondary text
	ColorHighlight     // focused controls
)
