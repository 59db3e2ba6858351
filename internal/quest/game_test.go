package quest

import (
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/vovakirdan/jerrys-quest/internal/config"
	"github.com/vovakirdan/jerrys-quest/internal/core"
	"github.com/vovakirdan/jerrys-quest/internal/registry"
)

var clock = core.NewFixedClock(60, screenW, screenH)

func newTestGame(v Variant) *Game {
	g := New(v, config.DefaultQuestConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 800, ScreenH: 600, TickRate: 60, Seed: 42})
	return g
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func press(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Press(a)
	}
	return f
}

func hold(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Hold(a)
	}
	return f
}

// startPlaying moves an endless game past the title screen.
func startPlaying(t *testing.T, g *Game) {
	t.Helper()
	g.Step(press(core.ActionJump), clock)
	if g.Phase() != StatePlaying {
		t.Fatalf("Phase() = %v, expected playing", g.Phase())
	}
}

// dropOut puts the player below the screen and steps once.
func dropOut(g *Game) {
	g.World().Player.Pos.Y = screenH + 50
	g.Step(idle(), clock)
}

func TestTitleWaitsForJump(t *testing.T) {
	g := newTestGame(VariantEndless)

	if g.Phase() != StateTitle {
		t.Fatalf("Phase() = %v, expected title", g.Phase())
	}

	start := g.World().Player
	for i := 0; i < 30; i++ {
		g.Step(press(core.ActionRestart, core.ActionMoveRight), clock)
	}
	if g.Phase() != StateTitle {
		t.Errorf("Phase() = %v, expected title without a jump press", g.Phase())
	}
	if g.World().Player != start {
		t.Errorf("player moved on the title screen: %+v", g.World().Player)
	}

	startPlaying(t, g)
}

func TestTitleDriftsClouds(t *testing.T) {
	g := newTestGame(VariantEndless)
	before := g.World().Clouds[0].Pos.X

	g.Step(idle(), clock)

	if got := g.World().Clouds[0].Pos.X; got >= before {
		t.Errorf("cloud x = %v, expected less than %v", got, before)
	}
}

func TestFallEndsRunAndRecordsHighScore(t *testing.T) {
	g := newTestGame(VariantEndless)
	startPlaying(t, g)

	g.World().Score = 7
	g.Step(idle(), clock)
	if g.World().HighScore != 0 {
		t.Errorf("HighScore = %d during play, expected 0", g.World().HighScore)
	}

	dropOut(g)

	if g.Phase() != StateGameOver {
		t.Fatalf("Phase() = %v, expected gameover", g.Phase())
	}
	st := g.State()
	if !st.GameOver || st.Won || !st.Finished() {
		t.Errorf("State() = %+v, expected a finished game over", st)
	}
	if st.HighScore != 7 {
		t.Errorf("HighScore = %d, expected 7", st.HighScore)
	}
}

func TestHighScoreNeverDecreases(t *testing.T) {
	g := newTestGame(VariantEndless)
	startPlaying(t, g)

	g.World().Score = 5
	dropOut(g)
	g.Step(press(core.ActionRestart), clock)

	g.World().Score = 2
	dropOut(g)

	if hs := g.State().HighScore; hs != 5 {
		t.Errorf("HighScore = %d, expected 5", hs)
	}
}

func TestRestartReturnsToOpeningLayout(t *testing.T) {
	g := newTestGame(VariantEndless)
	startPlaying(t, g)

	w := g.World()
	w.Score = 4
	w.Coins[0].Collected = true
	w.Player.Pos.X = 900
	g.Step(idle(), clock) // spawns ahead and moves the camera
	dropOut(g)

	// Only restart leaves the game over screen
	g.Step(press(core.ActionJump), clock)
	if g.Phase() != StateGameOver {
		t.Fatalf("Phase() = %v after jump, expected gameover", g.Phase())
	}

	g.Step(press(core.ActionRestart), clock)

	if g.Phase() != StatePlaying {
		t.Fatalf("Phase() = %v, expected playing", g.Phase())
	}
	w = g.World()
	if w.Score != 0 || w.HighScore != 4 {
		t.Errorf("Score, HighScore = %d, %d, expected 0, 4", w.Score, w.HighScore)
	}
	want := Player{Pos: core.V2(50, 300)}
	if w.Player != want {
		t.Errorf("Player = %+v, expected %+v", w.Player, want)
	}
	if w.Jump.Timer != 0 || w.CameraX != 0 {
		t.Errorf("Jump.Timer, CameraX = %v, %v, expected 0, 0", w.Jump.Timer, w.CameraX)
	}
	if !reflect.DeepEqual(w.Platforms, SeedPlatforms()) {
		t.Errorf("Platforms = %+v, expected seed layout", w.Platforms)
	}
	if !reflect.DeepEqual(w.Coins, SeedCoins()) {
		t.Errorf("Coins = %+v, expected seed coins", w.Coins)
	}
}

func TestEndlessSpawnsAndPrunesAroundCamera(t *testing.T) {
	g := newTestGame(VariantEndless)
	startPlaying(t, g)

	w := g.World()
	w.Player.Pos = core.V2(2000, 100)
	g.Step(idle(), clock)

	if len(w.Platforms) == 0 {
		t.Fatal("no platforms left around the camera")
	}
	for _, p := range w.Platforms {
		if p.Right() <= w.CameraX-100 {
			t.Errorf("platform %+v should have been pruned (camera %v)", p, w.CameraX)
		}
	}
	if last := w.Platforms[len(w.Platforms)-1]; last.Right() < w.CameraX+screenW {
		t.Errorf("rightmost edge %v short of window edge %v", last.Right(), w.CameraX+screenW)
	}
	for _, c := range w.Coins {
		if c.Collected {
			t.Errorf("collected coin %+v kept after prune", c)
		}
	}
}

func TestCollectVariantWinsOnExactTick(t *testing.T) {
	g := newTestGame(VariantCollect)
	if g.Phase() != StatePlaying {
		t.Fatalf("Phase() = %v, expected playing", g.Phase())
	}
	w := g.World()

	// Over the first coin
	w.Player.Pos = core.V2(335, 269.5)
	g.Step(idle(), clock)
	if w.Score != 1 || g.Phase() != StatePlaying {
		t.Fatalf("after first coin: score %d, phase %v", w.Score, g.Phase())
	}

	// Over the second coin
	w.Player.Pos = core.V2(535, 169.5)
	w.Player.Vel = core.Vec2{}
	g.Step(idle(), clock)
	if w.Score != 2 {
		t.Errorf("Score = %d, expected 2", w.Score)
	}
	if g.Phase() != StateWin {
		t.Fatalf("Phase() = %v, expected win on the collecting tick", g.Phase())
	}
	if st := g.State(); !st.Won || st.GameOver {
		t.Errorf("State() = %+v, expected won", st)
	}
	if w.HighScore != 0 {
		t.Errorf("HighScore = %d, winning should not record it", w.HighScore)
	}

	g.Step(press(core.ActionRestart), clock)
	if g.Phase() != StatePlaying || w.Score != 0 || !reflect.DeepEqual(w.Coins, SeedCoins()) {
		t.Errorf("restart after win: phase %v, score %d, coins %+v", g.Phase(), w.Score, w.Coins)
	}
}

func TestCollectVariantWinBeatsFall(t *testing.T) {
	g := newTestGame(VariantCollect)
	w := g.World()
	w.Coins = []Coin{{Pos: core.V2(100, 650)}}
	w.Player.Pos = core.V2(95, 640)

	g.Step(idle(), clock)

	if g.Phase() != StateWin {
		t.Errorf("Phase() = %v, expected win to be checked before the fall", g.Phase())
	}
}

func TestCollectVariantStaticLayout(t *testing.T) {
	g := newTestGame(VariantCollect)
	w := g.World()

	if len(w.Clouds) != 0 {
		t.Errorf("Clouds = %d, expected none", len(w.Clouds))
	}

	w.Player.Pos = core.V2(2000, 100)
	g.Step(idle(), clock)

	if !reflect.DeepEqual(w.Platforms, SeedPlatforms()) {
		t.Errorf("Platforms = %+v, expected the fixed layout", w.Platforms)
	}
	if len(w.Coins) != 2 {
		t.Errorf("Coins = %d, expected 2", len(w.Coins))
	}

	dropOut(g)
	if g.Phase() != StateGameOver {
		t.Errorf("Phase() = %v, expected gameover", g.Phase())
	}
}

func TestCollectVariantKeepsCollectedCoins(t *testing.T) {
	g := newTestGame(VariantCollect)
	w := g.World()
	w.Player.Pos = core.V2(335, 269.5)
	g.Step(idle(), clock)

	if len(w.Coins) != 2 || !w.Coins[0].Collected {
		t.Errorf("Coins = %+v, expected the collected coin kept and marked", w.Coins)
	}
}

func TestReconfigureAppliesOnRestart(t *testing.T) {
	g := newTestGame(VariantEndless)
	faster := config.DefaultQuestConfig()
	faster.Physics.MoveSpeed = 5
	g.Reconfigure(faster)

	startPlaying(t, g)
	g.Step(hold(core.ActionMoveRight), clock)
	if vx := g.World().Player.Vel.X; vx != 4 {
		t.Errorf("Vel.X = %v before restart, expected 4", vx)
	}

	dropOut(g)
	g.Step(press(core.ActionRestart), clock)
	g.Step(hold(core.ActionMoveRight), clock)

	if vx := g.World().Player.Vel.X; vx != 5 {
		t.Errorf("Vel.X = %v after restart, expected 5", vx)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() *Game {
		g := newTestGame(VariantEndless)
		for i := 0; i < 900; i++ {
			in := hold(core.ActionMoveRight)
			if i%25 == 0 {
				in.Press(core.ActionJump)
			}
			if g.Phase() == StateGameOver {
				in.Press(core.ActionRestart)
			}
			g.Step(in, clock)
		}
		return g
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a.World().Platforms, b.World().Platforms) {
		t.Error("same seed and inputs produced different platforms")
	}
	if !reflect.DeepEqual(a.World().Clouds, b.World().Clouds) {
		t.Error("same seed and inputs produced different clouds")
	}
	if a.World().Player != b.World().Player || a.State() != b.State() {
		t.Errorf("diverged: %+v / %+v", a.State(), b.State())
	}
}

type drawCall struct {
	texture bool
	tex     core.TextureID
	text    string
	x, y    float64
}

type recordingRenderer struct {
	clears []core.Color
	calls  []drawCall
}

func (r *recordingRenderer) Clear(c core.Color) {
	r.clears = append(r.clears, c)
}

func (r *recordingRenderer) DrawTexture(tex core.TextureID, x, y, w, h float64, tint core.Color) {
	r.calls = append(r.calls, drawCall{texture: true, tex: tex, x: x, y: y})
}

func (r *recordingRenderer) DrawText(text string, x, y, size float64, c core.Color) {
	r.calls = append(r.calls, drawCall{text: text, x: x, y: y})
}

func (r *recordingRenderer) textures(tex core.TextureID) int {
	n := 0
	for _, c := range r.calls {
		if c.texture && c.tex == tex {
			n++
		}
	}
	return n
}

func (r *recordingRenderer) hasText(s string) bool {
	_, ok := r.text(s)
	return ok
}

func (r *recordingRenderer) text(s string) (drawCall, bool) {
	i := slices.IndexFunc(r.calls, func(c drawCall) bool { return !c.texture && c.text == s })
	if i < 0 {
		return drawCall{}, false
	}
	return r.calls[i], true
}

func TestDrawFollowsState(t *testing.T) {
	g := newTestGame(VariantEndless)

	r := &recordingRenderer{}
	g.Draw(r)
	if len(r.clears) != 1 || r.clears[0] != core.ColorSkyBlue {
		t.Errorf("title clears = %v, expected one sky blue", r.clears)
	}
	if !r.hasText("Press Space to Play") || r.textures(core.TexPlayer) != 0 {
		t.Error("title screen should prompt and not draw the player")
	}
	if n := r.textures(core.TexCloud1) + r.textures(core.TexCloud2); n != 3 {
		t.Errorf("title drew %d clouds, expected 3", n)
	}

	startPlaying(t, g)
	g.World().Coins[0].Collected = true
	r = &recordingRenderer{}
	g.Draw(r)
	if r.textures(core.TexPlayer) != 1 {
		t.Errorf("player drawn %d times, expected 1", r.textures(core.TexPlayer))
	}
	if r.textures(core.TexCoin) != 1 {
		t.Errorf("coins drawn %d times, expected only the uncollected one", r.textures(core.TexCoin))
	}
	if r.textures(core.TexBigPlatform) != 1 || r.textures(core.TexSmallPlatform) != 2 {
		t.Error("platform textures should follow platform kind")
	}
	if !r.hasText("Score: 0") || !r.hasText("Highscore: 0") {
		t.Error("HUD missing")
	}

	dropOut(g)
	r = &recordingRenderer{}
	g.Draw(r)
	if r.clears[0] != core.ColorBlack || !r.hasText("Game Over!") || !r.hasText("Press R to restart") {
		t.Errorf("game over screen wrong: %+v", r)
	}
	if r.textures(core.TexPlayer) != 0 {
		t.Error("game over screen should not draw the world")
	}
}

func TestDrawWinScreen(t *testing.T) {
	g := newTestGame(VariantCollect)
	for i := range g.World().Coins {
		g.World().Coins[i].Collected = true
	}
	g.Step(idle(), clock)

	r := &recordingRenderer{}
	g.Draw(r)
	if !r.hasText("You Win!") || r.hasText("Game Over!") {
		t.Errorf("win screen wrong: %+v", r.calls)
	}
}

func TestDrawUsesClockScreenSize(t *testing.T) {
	g := newTestGame(VariantEndless)
	small := core.NewFixedClock(60, 400, 300)

	g.Step(idle(), small)

	r := &recordingRenderer{}
	g.Draw(r)
	prompt, ok := r.text("Press Space to Play")
	if !ok {
		t.Fatal("title prompt not drawn")
	}
	if prompt.x != 30 || prompt.y != 170 {
		t.Errorf("prompt at (%v, %v), expected (30, 170) for a 400x300 screen", prompt.x, prompt.y)
	}
}

func TestRegisteredVariants(t *testing.T) {
	tests := []struct {
		id    string
		phase string
	}{
		{"quest", "title"},
		{"coins", "playing"},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			g, err := registry.Create(tc.id, config.DefaultQuestConfig())
			if err != nil {
				t.Fatalf("Create(%q) error: %v", tc.id, err)
			}
			if g.ID() != tc.id {
				t.Errorf("ID() = %q, expected %q", g.ID(), tc.id)
			}
			if got := g.State().Phase; got != tc.phase {
				t.Errorf("State().Phase = %q, expected %q", got, tc.phase)
			}
		})
	}

	bad := config.DefaultQuestConfig()
	bad.Spawner.MinGap = 500
	bad.Spawner.MaxGap = 600
	if _, err := registry.Create("quest", bad); !errors.Is(err, config.ErrUnreachableGap) {
		t.Errorf("Create() with unreachable gap: err = %v, expected ErrUnreachableGap", err)
	}
}
