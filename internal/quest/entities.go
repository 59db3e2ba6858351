// Package quest implements Jerry's Quest, a side-scrolling platformer.
// The player runs and jumps across procedurally spaced platforms while
// collecting coins; falling below the screen ends the run.
package quest

import (
	"github.com/vovakirdan/jerrys-quest/internal/core"
)

// Fixed entity dimensions in pixels.
const (
	PlayerSize         = 32.0
	CoinSize           = 16.0
	PlatformHeight     = 32.0
	SmallPlatformWidth = 128.0
	BigPlatformWidth   = 256.0
	CloudWidth         = 128.0
	CloudHeight        = 64.0
)

// PlatformKind selects a platform's width and texture.
type PlatformKind uint8

const (
	PlatformSmall PlatformKind = iota
	PlatformBig
)

// Width returns the platform width for this kind.
func (k PlatformKind) Width() float64 {
	switch k {
	case PlatformSmall:
		return SmallPlatformWidth
	case PlatformBig:
		return BigPlatformWidth
	default:
		panic("quest: unknown platform kind")
	}
}

// Texture returns the texture key used to draw this kind.
func (k PlatformKind) Texture() core.TextureID {
	switch k {
	case PlatformSmall:
		return core.TexSmallPlatform
	case PlatformBig:
		return core.TexBigPlatform
	default:
		panic("quest: unknown platform kind")
	}
}

func (k PlatformKind) String() string {
	switch k {
	case PlatformSmall:
		return "small"
	case PlatformBig:
		return "big"
	default:
		return "unknown"
	}
}

// Player is the single moving actor.
type Player struct {
	Pos      core.Vec2
	Vel      core.Vec2
	OnGround bool
}

// Rect returns the player's hitbox.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.Pos.X, p.Pos.Y, PlayerSize, PlayerSize)
}

// Platform is a static solid the player can land on.
type Platform struct {
	Pos  core.Vec2
	Size core.Vec2
	Kind PlatformKind
}

// NewPlatform creates a platform of the given kind with its top-left at (x, y).
func NewPlatform(x, y float64, kind PlatformKind) Platform {
	return Platform{
		Pos:  core.V2(x, y),
		Size: core.V2(kind.Width(), PlatformHeight),
		Kind: kind,
	}
}

// Rect returns the platform's collision rectangle.
func (p Platform) Rect() core.Rect {
	return core.RectAt(p.Pos, p.Size)
}

// Right returns the x-coordinate of the platform's right edge.
func (p Platform) Right() float64 {
	return p.Pos.X + p.Size.X
}

// Coin is a pickup worth one point.
type Coin struct {
	Pos       core.Vec2
	Collected bool
}

// Rect returns the coin's hitbox.
func (c Coin) Rect() core.Rect {
	return core.NewRect(c.Pos.X, c.Pos.Y, CoinSize, CoinSize)
}

// CoinAbove returns a coin centered horizontally on p, resting 16px above its top.
func CoinAbove(p Platform) Coin {
	return Coin{
		Pos: core.V2(p.Pos.X+p.Size.X/2-CoinSize/2, p.Pos.Y-CoinSize),
	}
}

// Cloud is background decoration drifting left at Speed pixels per second.
type Cloud struct {
	Pos     core.Vec2
	Speed   float64
	Texture core.TextureID
}
