package quest

import (
	"time"

	"github.com/vovakirdan/jerrys-quest/internal/config"
	"github.com/vovakirdan/jerrys-quest/internal/core"
	"github.com/vovakirdan/jerrys-quest/internal/registry"
)

// Game runs one variant of Jerry's Quest.
type Game struct {
	variant Variant
	cfg     config.QuestConfig
	pending *config.QuestConfig // Applied on the next restart
	world   *World
	state   State

	// Screen size reported by the clock on the last step
	screenW, screenH float64
}

// New creates a game for the given variant. cfg must have passed config.Validate.
func New(v Variant, cfg config.QuestConfig) *Game {
	g := &Game{
		variant: v,
		cfg:     cfg,
	}
	g.Reset(core.RuntimeConfig{
		ScreenW: int(cfg.World.ScreenWidth),
		ScreenH: int(cfg.World.ScreenHeight),
		Seed:    1,
	})
	return g
}

// ID returns the unique identifier for this variant.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset initializes a fresh session: new RNG stream, zero high score, and
// the variant's initial state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	g.screenW, g.screenH = float64(runtime.ScreenW), float64(runtime.ScreenH)
	g.applyPending()
	g.world = NewWorld(g.cfg, g.variant.Jump, runtime.Seed)
	if !g.variant.Clouds {
		g.world.Clouds = nil
	}
	g.state = g.variant.Initial
}

// Reconfigure queues a new configuration to take effect at the next restart.
// cfg must have passed config.Validate.
func (g *Game) Reconfigure(cfg config.QuestConfig) {
	g.pending = &cfg
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputSource, clk core.Clock) core.StepResult {
	dt := clk.Elapsed()
	screenW, screenH := clk.ScreenSize()
	g.screenW, g.screenH = screenW, screenH

	if g.variant.Clouds {
		g.world.DriftClouds(dt, screenW)
	}

	switch g.state {
	case StateTitle:
		if in.Pressed(core.ActionJump) {
			g.state = StatePlaying
		}
	case StatePlaying:
		g.stepPlaying(in, dt, screenW, screenH)
	case StateWin, StateGameOver:
		if in.Pressed(core.ActionRestart) {
			g.restart()
		}
	default:
		panic("quest: unknown state")
	}

	return core.StepResult{State: g.State()}
}

// stepPlaying runs one tick of gameplay: movement and collision, camera,
// world window maintenance, pickups, then the win and fall checks.
func (g *Game) stepPlaying(in core.InputSource, dt, screenW, screenH float64) {
	w := g.world

	w.MovePlayer(in, dt)
	w.UpdateCamera(screenW)

	if g.variant.Procedural {
		w.SpawnAhead(screenW)
		w.Prune()
	}

	w.CollectCoins()

	if g.variant.WinOnCoins && w.AllCoinsCollected() {
		g.state = StateWin
		return
	}

	if w.Fell(screenH) {
		w.RecordHighScore()
		g.state = StateGameOver
	}
}

// restart begins a new run from the opening layout.
func (g *Game) restart() {
	if g.applyPending() {
		g.world.Reconfigure(g.cfg)
	}
	g.world.Restart()
	g.state = StatePlaying
}

func (g *Game) applyPending() bool {
	if g.pending == nil {
		return false
	}
	g.cfg = *g.pending
	g.pending = nil
	return true
}

// Phase returns the current flow state.
func (g *Game) Phase() State {
	return g.state
}

// World exposes the simulation state for inspection.
func (g *Game) World() *World {
	return g.world
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:     g.state.String(),
		Score:     g.world.Score,
		HighScore: g.world.HighScore,
		GameOver:  g.state == StateGameOver,
		Won:       g.state == StateWin,
	}
}

// Register the variants with the registry
func init() {
	for _, v := range []Variant{VariantEndless, VariantCollect} {
		registry.Register(v.ID, func(cfg config.QuestConfig) registry.Game {
			return New(v, cfg)
		})
	}
}
