package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorBrightYellow
	ColorDarkGray
)

// String returns a human-readable name for the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBrightYellow:
		return "bright-yellow"
	case ColorDarkGray:
		return "dark-gray"
	default:
		return "unknown"
	}
}
