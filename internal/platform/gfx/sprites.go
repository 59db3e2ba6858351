package gfx

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/jerrys-quest/internal/core"
)

// Source sizes of the generated sprites. Draw calls scale them to the
// requested rectangle with nearest filtering.
var spriteSizes = [core.NumTextures]image.Point{
	core.TexPlayer:        {16, 16},
	core.TexSmallPlatform: {32, 8},
	core.TexBigPlatform:   {64, 8},
	core.TexCoin:          {8, 8},
	core.TexCloud1:        {32, 16},
	core.TexCloud2:        {32, 16},
}

// SpriteImage draws the pixel art for a texture.
func SpriteImage(tex core.TextureID) *image.RGBA {
	size := spriteSizes[tex]
	img := image.NewRGBA(image.Rectangle{Max: size})

	switch tex {
	case core.TexPlayer:
		fill(img, img.Bounds(), RGBA(core.ColorOrange))
		fill(img, image.Rect(4, 4, 6, 7), RGBA(core.ColorBlack))
		fill(img, image.Rect(10, 4, 12, 7), RGBA(core.ColorBlack))
		fill(img, image.Rect(4, 11, 12, 12), RGBA(core.ColorBrown))
	case core.TexSmallPlatform, core.TexBigPlatform:
		fill(img, img.Bounds(), RGBA(core.ColorBrown))
		fill(img, image.Rect(0, 0, size.X, 2), RGBA(core.ColorGreen))
	case core.TexCoin:
		ellipse(img, img.Bounds(), RGBA(core.ColorYellow))
	case core.TexCloud1:
		blob(img, image.Rect(0, 6, 32, 16))
		blob(img, image.Rect(8, 0, 24, 12))
	case core.TexCloud2:
		blob(img, image.Rect(0, 8, 32, 16))
		blob(img, image.Rect(4, 2, 16, 12))
		blob(img, image.Rect(14, 0, 28, 12))
	default:
		panic("gfx: unknown texture")
	}
	return img
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// blob fills a white ellipse inscribed in r.
func blob(img *image.RGBA, r image.Rectangle) {
	ellipse(img, r, RGBA(core.ColorWhite))
}

// ellipse fills the ellipse inscribed in r.
func ellipse(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	rx := float64(r.Dx()) / 2
	ry := float64(r.Dy()) / 2
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// Textures is the window texture table, indexed by core.TextureID.
type Textures [core.NumTextures]*ebiten.Image

// NewTextures uploads every sprite to the GPU.
func NewTextures() *Textures {
	var t Textures
	for id := range core.NumTextures {
		t[id] = ebiten.NewImageFromImage(SpriteImage(id))
	}
	return &t
}
