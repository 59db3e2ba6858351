package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/jerrys-quest/internal/core"
)

// Binding maps an action to the keys that trigger it.
type Binding struct {
	Action core.Action
	Keys   []ebiten.Key
}

// DefaultBindings returns the keyboard layout for the window.
func DefaultBindings() []Binding {
	return []Binding{
		{core.ActionMoveLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
		{core.ActionMoveRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
		{core.ActionJump, []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp}},
		{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
		{core.ActionPause, []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}},
		{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}},
	}
}

// ReadInput polls the keyboard into an input frame for this tick.
func ReadInput(bindings []Binding) core.InputFrame {
	f := core.NewInputFrame()
	for _, b := range bindings {
		for _, k := range b.Keys {
			if inpututil.IsKeyJustPressed(k) {
				f.Press(b.Action)
			} else if ebiten.IsKeyPressed(k) {
				f.Hold(b.Action)
			}
		}
	}
	return f
}
