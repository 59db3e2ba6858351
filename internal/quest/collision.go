package quest

// Resolve performs one-sided vertical collision resolution of the player
// against every platform, once each, in slice order.
//
// Landing: moving down and the player's bottom was at or above the platform
// top before this tick's move. The player is snapped onto the platform.
//
// Head-bump: moving up and the player's top was at or below the platform
// bottom before this tick's move. The player is snapped under the platform.
// Platforms are therefore solid from below, not jump-through.
//
// Horizontal overlap is never resolved. The pass is not iterated to a
// fixpoint: a contact zeroes vertical velocity, so later platforms overlapped
// in the same tick are left unresolved.
func Resolve(p *Player, platforms []Platform) {
	p.OnGround = false

	for i := range platforms {
		plat := platforms[i].Rect()
		if !p.Rect().Intersects(plat) {
			continue
		}

		switch {
		case p.Vel.Y > 0 && p.Pos.Y+PlayerSize-p.Vel.Y <= plat.Y:
			p.Pos.Y = plat.Y - PlayerSize
			p.Vel.Y = 0
			p.OnGround = true
		case p.Vel.Y < 0 && p.Pos.Y-p.Vel.Y >= plat.Bottom():
			p.Pos.Y = plat.Bottom()
			p.Vel.Y = 0
		}
	}
}
