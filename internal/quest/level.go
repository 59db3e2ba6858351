package quest

import (
	"github.com/vovakirdan/jerrys-quest/internal/core"
)

// SeedPlatforms returns the fixed opening layout.
func SeedPlatforms() []Platform {
	return []Platform{
		NewPlatform(0, 400, PlatformBig),
		NewPlatform(300, 300, PlatformSmall),
		NewPlatform(500, 200, PlatformSmall),
	}
}

// SeedCoins returns the coins placed over the opening layout.
func SeedCoins() []Coin {
	return []Coin{
		{Pos: core.V2(340, 284)},
		{Pos: core.V2(540, 184)},
	}
}

// SeedClouds returns the initial background clouds.
func SeedClouds() []Cloud {
	return []Cloud{
		{Pos: core.V2(100, 100), Speed: 20, Texture: core.TexCloud1},
		{Pos: core.V2(400, 150), Speed: 30, Texture: core.TexCloud2},
		{Pos: core.V2(700, 120), Speed: 25, Texture: core.TexCloud1},
	}
}
