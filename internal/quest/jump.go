package quest

// JumpPolicy decides when a jump press is honoured.
type JumpPolicy uint8

const (
	// JumpBuffered allows jumping while the coyote timer is running,
	// including a short window after walking off a ledge.
	JumpBuffered JumpPolicy = iota
	// JumpGrounded allows jumping only while standing on a platform.
	JumpGrounded
)

func (p JumpPolicy) String() string {
	switch p {
	case JumpBuffered:
		return "buffered"
	case JumpGrounded:
		return "grounded"
	default:
		return "unknown"
	}
}

// JumpController owns the coyote timer.
// Timer is refilled to CoyoteMax while grounded and counts down in the air.
// It may go negative; any value <= 0 means the grace period has expired.
type JumpController struct {
	Policy    JumpPolicy
	CoyoteMax float64
	Timer     float64
}

// Tick advances the coyote timer by dt seconds.
func (j *JumpController) Tick(onGround bool, dt float64) {
	if onGround {
		j.Timer = j.CoyoteMax
		return
	}
	j.Timer -= dt
}

// TryJump launches the player if the policy allows it and reports whether it did.
// A successful jump consumes the remaining grace time so that a second press
// cannot jump again off the same ledge.
func (j *JumpController) TryJump(p *Player, force float64) bool {
	var ok bool
	switch j.Policy {
	case JumpBuffered:
		ok = j.Timer > 0
	case JumpGrounded:
		ok = p.OnGround
	default:
		panic("quest: unknown jump policy")
	}
	if !ok {
		return false
	}

	p.Vel.Y = force
	p.OnGround = false
	j.Timer = 0
	return true
}

// Reset clears the coyote timer.
func (j *JumpController) Reset() {
	j.Timer = 0
}
