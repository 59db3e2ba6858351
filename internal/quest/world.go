package quest

import (
	"math/rand"

	"github.com/vovakirdan/jerrys-quest/internal/config"
	"github.com/vovakirdan/jerrys-quest/internal/core"
)

// Cloud respawn height range after wrapping.
const (
	cloudMinY = 50.0
	cloudMaxY = 200.0
)

// World is the single owner of all simulation state. Subsystems operate on
// it through methods or receive it by pointer; none keep their own copy.
type World struct {
	Player    Player
	Platforms []Platform
	Coins     []Coin
	Clouds    []Cloud
	Jump      JumpController

	CameraX   float64
	Score     int
	HighScore int

	cfg     config.QuestConfig
	rng     *rand.Rand
	spawner *Spawner
}

// NewWorld creates a world in its opening layout.
func NewWorld(cfg config.QuestConfig, policy JumpPolicy, seed int64) *World {
	rng := rand.New(rand.NewSource(seed))
	w := &World{
		Jump: JumpController{
			Policy:    policy,
			CoyoteMax: cfg.Coyote.TimeMax,
		},
		Clouds:  SeedClouds(),
		cfg:     cfg,
		rng:     rng,
		spawner: NewSpawner(cfg, rng),
	}
	w.Restart()
	return w
}

// Restart returns the player, platforms, coins and score to the opening
// layout. The high score, clouds and RNG stream are kept.
func (w *World) Restart() {
	w.Player.Respawn(core.V2(w.cfg.Player.StartX, w.cfg.Player.StartY))
	w.Jump.Reset()
	w.Platforms = SeedPlatforms()
	w.Coins = SeedCoins()
	w.Score = 0
	w.CameraX = 0
}

// Reconfigure swaps the tunables. It takes effect for physics immediately and
// for placement on the next spawn.
func (w *World) Reconfigure(cfg config.QuestConfig) {
	w.cfg = cfg
	w.Jump.CoyoteMax = cfg.Coyote.TimeMax
	w.spawner = NewSpawner(cfg, w.rng)
}

// Config returns the tunables in use.
func (w *World) Config() config.QuestConfig {
	return w.cfg
}

// MovePlayer runs input, jump and physics integration for one tick, then
// resolves collisions against the platforms.
func (w *World) MovePlayer(in core.InputSource, dt float64) {
	phys := w.cfg.Physics

	w.Player.Steer(in, phys.MoveSpeed)

	w.Jump.Tick(w.Player.OnGround, dt)
	if in.Pressed(core.ActionJump) {
		w.Jump.TryJump(&w.Player, phys.JumpForce)
	}

	w.Player.Integrate(phys.Gravity)
	Resolve(&w.Player, w.Platforms)
}

// UpdateCamera keeps the player a fixed fraction of the screen from the left edge.
func (w *World) UpdateCamera(screenW float64) {
	w.CameraX = w.Player.Pos.X - screenW/w.cfg.World.CameraDivisor
}

// SpawnAhead appends platforms, each with a coin above it, until the
// rightmost platform reaches the right edge of the camera window.
// It returns the number of platforms added.
func (w *World) SpawnAhead(screenW float64) int {
	n := 0
	for len(w.Platforms) > 0 {
		last := w.Platforms[len(w.Platforms)-1]
		if last.Right() >= w.CameraX+screenW {
			break
		}
		next := w.spawner.Next(last)
		w.Platforms = append(w.Platforms, next)
		w.Coins = append(w.Coins, CoinAbove(next))
		n++
	}
	return n
}

// Prune drops platforms and coins that are fully behind the camera window
// (with a margin), and coins already collected. It returns how many of each
// were removed.
func (w *World) Prune() (platforms, coins int) {
	limit := w.CameraX - w.cfg.World.PruneMargin

	keptPlatforms := w.Platforms[:0]
	for _, p := range w.Platforms {
		if p.Right() > limit {
			keptPlatforms = append(keptPlatforms, p)
		}
	}
	platforms = len(w.Platforms) - len(keptPlatforms)
	w.Platforms = keptPlatforms

	keptCoins := w.Coins[:0]
	for _, c := range w.Coins {
		if c.Pos.X+CoinSize > limit && !c.Collected {
			keptCoins = append(keptCoins, c)
		}
	}
	coins = len(w.Coins) - len(keptCoins)
	w.Coins = keptCoins

	return platforms, coins
}

// CollectCoins marks every uncollected coin touching the player as collected
// and adds one point per coin. It returns the number collected this call.
func (w *World) CollectCoins() int {
	hitbox := w.Player.Rect()
	n := 0
	for i := range w.Coins {
		c := &w.Coins[i]
		if c.Collected || !hitbox.Intersects(c.Rect()) {
			continue
		}
		c.Collected = true
		w.Score++
		n++
	}
	return n
}

// AllCoinsCollected reports whether every coin in the world has been collected.
func (w *World) AllCoinsCollected() bool {
	for _, c := range w.Coins {
		if !c.Collected {
			return false
		}
	}
	return true
}

// Fell reports whether the player has dropped below the bottom of the screen.
func (w *World) Fell(screenH float64) bool {
	return w.Player.Pos.Y > screenH
}

// RecordHighScore raises the high score to the current score if it is larger.
func (w *World) RecordHighScore() {
	w.HighScore = max(w.HighScore, w.Score)
}

// DriftClouds moves clouds left by their speed over dt seconds and wraps those
// that leave the screen back to the right edge at a random height.
func (w *World) DriftClouds(dt, screenW float64) {
	for i := range w.Clouds {
		c := &w.Clouds[i]
		c.Pos.X -= c.Speed * dt
		if c.Pos.X+CloudWidth < 0 {
			c.Pos.X = screenW
			c.Pos.Y = cloudMinY + w.rng.Float64()*(cloudMaxY-cloudMinY)
		}
	}
}

// ScreenX converts a world x-coordinate to screen space.
func (w *World) ScreenX(x float64) float64 {
	return x - w.CameraX
}

// CloudScreenX converts a cloud x-coordinate to screen space with parallax.
func (w *World) CloudScreenX(x float64) float64 {
	return x - w.CameraX*w.cfg.World.CloudParallax
}
