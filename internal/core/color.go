package core

// Color is a named palette entry. Front ends map it to ANSI codes or RGBA.
type Color uint8

// Palette used by the screens and sprites.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorSkyBlue
	ColorLightGray
	ColorGray
	ColorBrown
	ColorOrange
)

// String returns the palette name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorWhite:
		return "white"
	case ColorBlack:
		return "black"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorSkyBlue:
		return "skyblue"
	case ColorLightGray:
		return "lightgray"
	case ColorGray:
		return "gray"
	case ColorBrown:
		return "brown"
	case ColorOrange:
		return "orange"
	default:
		return "unknown"
	}
}
