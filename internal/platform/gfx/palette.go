// Package gfx runs games in a desktop window with Ebitengine.
package gfx

import (
	"image/color"

	"github.com/vovakirdan/jerrys-quest/internal/core"
)

// RGBA returns the window color for a palette entry. ColorDefault is white,
// the neutral tint.
func RGBA(c core.Color) color.RGBA {
	switch c {
	case core.ColorDefault, core.ColorWhite:
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	case core.ColorBlack:
		return color.RGBA{A: 0xff}
	case core.ColorRed:
		return color.RGBA{R: 0xe6, G: 0x29, B: 0x37, A: 0xff}
	case core.ColorGreen:
		return color.RGBA{G: 0xe4, B: 0x30, A: 0xff}
	case core.ColorYellow:
		return color.RGBA{R: 0xfd, G: 0xf9, A: 0xff}
	case core.ColorBlue:
		return color.RGBA{G: 0x79, B: 0xf1, A: 0xff}
	case core.ColorSkyBlue:
		return color.RGBA{R: 0x66, G: 0xbf, B: 0xff, A: 0xff}
	case core.ColorLightGray:
		return color.RGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}
	case core.ColorGray:
		return color.RGBA{R: 0x82, G: 0x82, B: 0x82, A: 0xff}
	case core.ColorBrown:
		return color.RGBA{R: 0x7f, G: 0x6a, B: 0x4f, A: 0xff}
	case core.ColorOrange:
		return color.RGBA{R: 0xff, G: 0xa1, A: 0xff}
	default:
		return color.RGBA{R: 0xff, B: 0xff, A: 0xff}
	}
}
