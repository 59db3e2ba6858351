package core

// TextureID is a lookup key into a texture table owned by a Renderer.
// Game entities carry TextureIDs and never hold renderer resources.
type TextureID uint8

const (
	TexPlayer TextureID = iota
	TexSmallPlatform
	TexBigPlatform
	TexCoin
	TexCloud1
	TexCloud2

	// NumTextures is the size of a complete texture table.
	NumTextures
)

// String returns the asset base name for the texture.
func (t TextureID) String() string {
	switch t {
	case TexPlayer:
		return "player"
	case TexSmallPlatform:
		return "small_platform"
	case TexBigPlatform:
		return "big_platform"
	case TexCoin:
		return "coin"
	case TexCloud1:
		return "cloud1"
	case TexCloud2:
		return "cloud2"
	default:
		return "unknown"
	}
}

// Renderer is the drawing surface consumed by games.
// Coordinates are logical screen pixels with the origin at the top-left.
type Renderer interface {
	// Clear fills the whole frame with a solid color.
	Clear(c Color)

	// DrawTexture draws a texture scaled to (w, h) at (x, y), tinted with c.
	DrawTexture(tex TextureID, x, y, w, h float64, tint Color)

	// DrawText draws a string starting at x with its baseline at y.
	DrawText(text string, x, y, size float64, c Color)
}
