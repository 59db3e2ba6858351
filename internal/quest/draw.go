package quest

import (
	"fmt"

	"github.com/vovakirdan/jerrys-quest/internal/core"
)

// Draw renders the screen for the current state, laid out for the screen
// size the clock reported on the last step.
func (g *Game) Draw(r core.Renderer) {
	w, h := g.screenW, g.screenH

	switch g.state {
	case StateTitle:
		g.drawTitle(r, w, h)
	case StatePlaying:
		g.drawPlaying(r)
	case StateWin:
		g.drawWin(r, w, h)
	case StateGameOver:
		g.drawGameOver(r, w, h)
	default:
		panic("quest: unknown state")
	}
}

func (g *Game) drawTitle(r core.Renderer, w, h float64) {
	r.Clear(core.ColorSkyBlue)

	for _, c := range g.world.Clouds {
		r.DrawTexture(c.Texture, c.Pos.X, c.Pos.Y, CloudWidth, CloudHeight, core.ColorWhite)
	}

	r.DrawText(g.variant.Title, w/2-200, h/2-50, 60, core.ColorWhite)
	r.DrawText("Press Space to Play", w/2-170, h/2+20, 40, core.ColorWhite)
}

func (g *Game) drawPlaying(r core.Renderer) {
	world := g.world
	r.Clear(core.ColorSkyBlue)

	for _, c := range world.Clouds {
		r.DrawTexture(c.Texture, world.CloudScreenX(c.Pos.X), c.Pos.Y, CloudWidth, CloudHeight, core.ColorWhite)
	}

	for _, p := range world.Platforms {
		r.DrawTexture(p.Kind.Texture(), world.ScreenX(p.Pos.X), p.Pos.Y, p.Size.X, p.Size.Y, core.ColorWhite)
	}

	for _, c := range world.Coins {
		if c.Collected {
			continue
		}
		r.DrawTexture(core.TexCoin, world.ScreenX(c.Pos.X), c.Pos.Y, CoinSize, CoinSize, core.ColorWhite)
	}

	pl := world.Player
	r.DrawTexture(core.TexPlayer, world.ScreenX(pl.Pos.X), pl.Pos.Y, PlayerSize, PlayerSize, core.ColorWhite)

	r.DrawText(fmt.Sprintf("Score: %d", world.Score), 20, 30, 30, core.ColorBlack)
	r.DrawText(fmt.Sprintf("Highscore: %d", world.HighScore), 20, 60, 30, core.ColorBlack)
}

func (g *Game) drawGameOver(r core.Renderer, w, h float64) {
	r.Clear(core.ColorBlack)
	r.DrawText("Game Over!", w/2-100, h/2, 50, core.ColorRed)
	g.drawResults(r, w, h)
}

func (g *Game) drawWin(r core.Renderer, w, h float64) {
	r.Clear(core.ColorBlack)
	r.DrawText("You Win!", w/2-90, h/2, 50, core.ColorYellow)
	g.drawResults(r, w, h)
}

func (g *Game) drawResults(r core.Renderer, w, h float64) {
	r.DrawText(fmt.Sprintf("Score: %d", g.world.Score), w/2-50, h/2+50, 30, core.ColorWhite)
	r.DrawText(fmt.Sprintf("Highscore: %d", g.world.HighScore), w/2-70, h/2+90, 30, core.ColorWhite)
	r.DrawText("Press R to restart", w/2-130, h/2+140, 30, core.ColorWhite)
}
