package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPhysics is returned when physics constants cannot describe a jump arc.
	ErrInvalidPhysics = errors.New("config: invalid physics")

	// ErrUnreachableGap is returned when the reachable jump distance is shorter
	// than the minimum platform gap, which would leave the spawner an empty range.
	ErrUnreachableGap = errors.New("config: minimum gap exceeds jump reach")

	// ErrInvalidBounds is returned for inverted or empty spawner/world ranges.
	ErrInvalidBounds = errors.New("config: invalid bounds")
)

// Validate checks a configuration for inconsistencies that would make the
// simulation ill-defined. It must pass before a game enters the Playing state.
func Validate(cfg QuestConfig) error {
	p := cfg.Physics
	if p.Gravity <= 0 {
		return fmt.Errorf("%w: gravity must be positive, got %g", ErrInvalidPhysics, p.Gravity)
	}
	if p.JumpForce >= 0 {
		return fmt.Errorf("%w: jump_force must be negative, got %g", ErrInvalidPhysics, p.JumpForce)
	}
	if p.MoveSpeed <= 0 {
		return fmt.Errorf("%w: move_speed must be positive, got %g", ErrInvalidPhysics, p.MoveSpeed)
	}
	if cfg.Coyote.TimeMax < 0 {
		return fmt.Errorf("%w: coyote time_max must not be negative, got %g", ErrInvalidPhysics, cfg.Coyote.TimeMax)
	}

	s := cfg.Spawner
	if s.ReachMargin <= 0 || s.ReachMargin > 1 {
		return fmt.Errorf("%w: reach_margin must be in (0, 1], got %g", ErrInvalidBounds, s.ReachMargin)
	}
	if s.MinY > s.MaxY {
		return fmt.Errorf("%w: min_y %g exceeds max_y %g", ErrInvalidBounds, s.MinY, s.MaxY)
	}
	if s.MaxStep < 0 {
		return fmt.Errorf("%w: max_step must not be negative, got %g", ErrInvalidBounds, s.MaxStep)
	}

	reach := cfg.MaxJumpDistance()
	if reach < s.MinGap {
		return fmt.Errorf("%w: max jump distance %.1f < min gap %.1f", ErrUnreachableGap, reach, s.MinGap)
	}
	if s.MaxGap < s.MinGap {
		return fmt.Errorf("%w: max_gap %g < min_gap %g", ErrInvalidBounds, s.MaxGap, s.MinGap)
	}

	w := cfg.World
	if w.ScreenWidth <= 0 || w.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %gx%g", ErrInvalidBounds, w.ScreenWidth, w.ScreenHeight)
	}
	if w.CameraDivisor <= 0 {
		return fmt.Errorf("%w: camera_divisor must be positive, got %g", ErrInvalidBounds, w.CameraDivisor)
	}
	return nil
}
