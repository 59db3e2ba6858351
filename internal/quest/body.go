package quest

import (
	"github.com/vovakirdan/jerrys-quest/internal/core"
)

// Steer sets horizontal velocity straight from input: no acceleration or drag.
// Left takes precedence when both directions are held.
func (p *Player) Steer(in core.InputSource, moveSpeed float64) {
	switch {
	case in.Down(core.ActionMoveLeft):
		p.Vel.X = -moveSpeed
	case in.Down(core.ActionMoveRight):
		p.Vel.X = moveSpeed
	default:
		p.Vel.X = 0
	}
}

// Integrate applies one tick of gravity and moves the player (semi-implicit Euler).
// The step is per tick, not per second; frame time does not scale it.
func (p *Player) Integrate(gravity float64) {
	p.Vel.Y += gravity
	p.Pos = p.Pos.Add(p.Vel)
}

// Respawn puts the player back at start, at rest and airborne.
func (p *Player) Respawn(start core.Vec2) {
	p.Pos = start
	p.Vel = core.Vec2{}
	p.OnGround = false
}
