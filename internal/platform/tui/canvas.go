package tui

import (
	"math"

	"github.com/vovakirdan/jerrys-quest/internal/core"
)

// sprite is how a texture looks in the terminal.
type sprite struct {
	Rune rune
	Fg   core.Color
}

// sprites is the terminal texture table.
var sprites = [core.NumTextures]sprite{
	core.TexPlayer:        {'█', core.ColorOrange},
	core.TexSmallPlatform: {'▓', core.ColorBrown},
	core.TexBigPlatform:   {'▓', core.ColorGreen},
	core.TexCoin:          {'●', core.ColorYellow},
	core.TexCloud1:        {'░', core.ColorWhite},
	core.TexCloud2:        {'▒', core.ColorWhite},
}

// Canvas draws onto a Screen, scaling logical pixel coordinates to cells.
// It implements core.Renderer.
type Canvas struct {
	screen  *core.Screen
	logical core.Vec2
}

// NewCanvas creates a canvas mapping a logical w×h pixel space onto screen.
func NewCanvas(screen *core.Screen, w, h float64) *Canvas {
	return &Canvas{screen: screen, logical: core.V2(w, h)}
}

// scale returns the cells per logical pixel on each axis.
func (c *Canvas) scale() (sx, sy float64) {
	return float64(c.screen.Width()) / c.logical.X, float64(c.screen.Height()) / c.logical.Y
}

// cell converts a logical point to the cell containing it.
func (c *Canvas) cell(x, y float64) (int, int) {
	sx, sy := c.scale()
	return int(math.Floor(x * sx)), int(math.Floor(y * sy))
}

// Clear fills the screen with the background color.
func (c *Canvas) Clear(bg core.Color) {
	c.screen.Fill(bg)
}

// DrawTexture fills the cells covered by the rectangle with the texture's
// glyph. Any rectangle on screen covers at least one cell. A tint other than
// white replaces the texture color. Cell backgrounds are kept.
func (c *Canvas) DrawTexture(tex core.TextureID, x, y, w, h float64, tint core.Color) {
	if int(tex) >= len(sprites) {
		return
	}
	sp := sprites[tex]
	if tint != core.ColorWhite && tint != core.ColorDefault {
		sp.Fg = tint
	}

	sx, sy := c.scale()
	x0, y0 := c.cell(x, y)
	x1 := max(int(math.Ceil((x+w)*sx)), x0+1)
	y1 := max(int(math.Ceil((y+h)*sy)), y0+1)

	cols, rows := c.screen.Width(), c.screen.Height()
	x0, x1 = core.Clamp(x0, 0, cols), core.Clamp(x1, 0, cols)
	y0, y1 = core.Clamp(y0, 0, rows), core.Clamp(y1, 0, rows)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			bg := c.screen.GetCell(cx, cy).Bg
			c.screen.SetCell(cx, cy, core.Cell{Rune: sp.Rune, Fg: sp.Fg, Bg: bg})
		}
	}
}

// DrawText writes text starting at x on the row holding the vertical middle
// of glyphs of the given size sitting on baseline y. Terminal text has a
// single height, so size only picks the row.
func (c *Canvas) DrawText(text string, x, y, size float64, fg core.Color) {
	cx, cy := c.cell(x, y-size/2)
	c.screen.DrawText(max(cx, 0), cy, text, fg)
}
