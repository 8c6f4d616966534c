package core

// Color is a render hint attached to entities and screen cells.
// The platform maps it to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorPurple
	ColorGray
)

// BrickPalette is the five-step color ramp used by the brick layouts,
// hottest first.
var BrickPalette = [5]Color{ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorBlue}
