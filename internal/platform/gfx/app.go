package gfx

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/jerrys-quest/internal/config"
	"github.com/vovakirdan/jerrys-quest/internal/core"
	"github.com/vovakirdan/jerrys-quest/internal/registry"
)

// maxFrameDT caps the seconds one update can cover after a stall.
const maxFrameDT = 0.1

// Reconfigurer is implemented by games that accept a new configuration
// while running.
type Reconfigurer interface {
	Reconfigure(cfg config.QuestConfig)
}

// Options configures the window front end.
type Options struct {
	// Scale multiplies the logical screen size for the initial window size.
	Scale float64

	// Watcher, when set, feeds reloaded configurations to the game.
	Watcher *config.Watcher

	Logger *log.Logger
}

// App adapts a game to ebiten.Game.
type App struct {
	game     registry.Game
	renderer *Renderer
	bindings []Binding
	config   core.RuntimeConfig
	watcher  *config.Watcher
	logger   *log.Logger

	lastUpdate time.Time
	phase      string
	paused     bool
}

// NewApp creates the window adapter. The game is reset with cfg.
func NewApp(game registry.Game, cfg core.RuntimeConfig, opts Options) *App {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	game.Reset(cfg)
	return &App{
		game:     game,
		renderer: NewRenderer(NewTextures()),
		bindings: DefaultBindings(),
		config:   cfg,
		watcher:  opts.Watcher,
		logger:   logger,
		phase:    game.State().Phase,
	}
}

// Update advances the game by one tick.
func (a *App) Update() error {
	a.drainWatcher()

	in := ReadInput(a.bindings)
	if in.Pressed(core.ActionQuit) {
		return ebiten.Termination
	}
	if in.Pressed(core.ActionPause) {
		a.paused = !a.paused
		a.logger.Debug("pause toggled", "paused", a.paused)
	}

	now := time.Now()
	dt := 1 / float64(a.config.TickRate)
	if !a.lastUpdate.IsZero() {
		dt = core.ClampF(now.Sub(a.lastUpdate).Seconds(), 0, maxFrameDT)
	}
	a.lastUpdate = now

	if a.paused {
		return nil
	}

	clk := core.FixedClock{
		DT: dt,
		W:  float64(a.config.ScreenW),
		H:  float64(a.config.ScreenH),
	}
	state := a.game.Step(in, clk).State
	if state.Phase != a.phase {
		a.logger.Debug("state changed",
			"game", a.game.ID(),
			"from", a.phase,
			"to", state.Phase,
			"score", state.Score,
			"highscore", state.HighScore,
		)
		a.phase = state.Phase
		if state.Finished() {
			a.logger.Info("run ended", "game", a.game.ID(), "phase", state.Phase, "score", state.Score)
		}
	}
	return nil
}

// drainWatcher applies the newest reloaded configuration, if any.
func (a *App) drainWatcher() {
	if a.watcher == nil {
		return
	}
	select {
	case cfg, ok := <-a.watcher.Configs:
		if !ok {
			a.watcher = nil
			return
		}
		if rc, ok := a.game.(Reconfigurer); ok {
			rc.Reconfigure(cfg)
			a.logger.Info("config reloaded, applies on restart", "path", a.watcher.Path())
		}
	case err, ok := <-a.watcher.Errors:
		if !ok {
			a.watcher = nil
			return
		}
		a.logger.Warn("config reload rejected", "error", err)
	default:
	}
}

// Draw renders the current screen.
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.SetTarget(screen)
	a.game.Draw(a.renderer)
	if a.paused {
		w := float64(a.config.ScreenW)
		h := float64(a.config.ScreenH)
		a.renderer.DrawText("Paused", w/2-60, h/2-120, 40, core.ColorWhite)
	}
}

// Layout returns the fixed logical screen size. The window scales it.
func (a *App) Layout(_, _ int) (int, int) {
	return a.config.ScreenW, a.config.ScreenH
}

// Run opens a window and plays the game until it is closed or quit.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	app := NewApp(game, cfg, opts)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(cfg.ScreenW)*scale), int(float64(cfg.ScreenH)*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(app.config.TickRate)

	return ebiten.RunGame(app)
}
