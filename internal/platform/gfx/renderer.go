package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/jerrys-quest/internal/core"
)

// basicFontSize is the pixel height of basicfont.Face7x13.
const basicFontSize = 13

// Renderer draws onto an ebiten image. It implements core.Renderer.
type Renderer struct {
	target   *ebiten.Image
	textures *Textures
	face     ebtext.Face
}

// NewRenderer creates a renderer using the given texture table.
func NewRenderer(textures *Textures) *Renderer {
	return &Renderer{
		textures: textures,
		face:     ebtext.NewGoXFace(basicfont.Face7x13),
	}
}

// SetTarget selects the image drawn onto by subsequent calls.
func (r *Renderer) SetTarget(img *ebiten.Image) {
	r.target = img
}

// Clear fills the target with c.
func (r *Renderer) Clear(c core.Color) {
	r.target.Fill(RGBA(c))
}

// DrawTexture draws the texture stretched over the rectangle.
func (r *Renderer) DrawTexture(tex core.TextureID, x, y, w, h float64, tint core.Color) {
	if int(tex) >= len(r.textures) {
		return
	}
	img := r.textures[tex]
	b := img.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(RGBA(tint))
	op.Filter = ebiten.FilterNearest
	r.target.DrawImage(img, op)
}

// DrawText draws text starting at x with its baseline at y, scaling the
// bitmap font to size pixels.
func (r *Renderer) DrawText(text string, x, y, size float64, c core.Color) {
	scale, top := textPlacement(r.face, y, size)

	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, top)
	op.ColorScale.ScaleWithColor(RGBA(c))
	op.Filter = ebiten.FilterNearest
	ebtext.Draw(r.target, text, r.face, op)
}

// textPlacement returns the scale taking the font to size pixels and the
// y of the scaled glyph origin for a baseline at y.
func textPlacement(face ebtext.Face, y, size float64) (scale, top float64) {
	scale = size / basicFontSize
	return scale, y - face.Metrics().HAscent*scale
}
