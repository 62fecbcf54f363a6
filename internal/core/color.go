package core

// Color identifies a foreground color for a screen cell. Views draw with
// these symbolic values; the terminal renderer maps them to the active
// profile and the PNG exporter maps them to RGB.
type Color uint8

// Colors used by the game views.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightWhite
)
