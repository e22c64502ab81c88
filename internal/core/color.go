package core

// Color represents a foreground color for a screen cell.
// Frontends map it to lipgloss or tcell styles.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorBrightGreen
	ColorBrightWhite
	ColorGray
)

// ANSI256 returns the xterm-256 palette index for the color.
// ColorDefault returns -1, meaning "terminal default".
func (c Color) ANSI256() int {
	switch c {
	case ColorRed:
		return 1
	case ColorGreen:
		return 2
	case ColorYellow:
		return 3
	case ColorBlue:
		return 4
	case ColorMagenta:
		return 5
	case ColorCyan:
		return 6
	case ColorBrightGreen:
		return 10
	case ColorBrightWhite:
		return 15
	case ColorGray:
		return 245
	default:
		return -1
	}
}

// Colors lists every predefined color.
func Colors() []Color {
	return []Color{
		ColorDefault, ColorRed, ColorGreen, ColorYellow, ColorBlue,
		ColorMagenta, ColorCyan, ColorBrightGreen, ColorBrightWhite, ColorGray,
	}
}
