// Package config provides YAML-based game configuration loading and
// validation for the platformer.
package config

// QuestConfig contains all tunables for Jerry's Quest.
type QuestConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Coyote  CoyoteConfig  `yaml:"coyote"`
	Spawner SpawnerConfig `yaml:"spawner"`
	World   WorldConfig   `yaml:"world"`
}

// PhysicsConfig defines per-tick physics constants.
// Velocities are pixels per tick; they are not scaled by frame time.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`    // Added to vertical velocity each tick (positive = down)
	JumpForce float64 `yaml:"jump_force"` // Vertical velocity set on jump (negative = up)
	MoveSpeed float64 `yaml:"move_speed"` // Horizontal speed while a direction is held
}

// PlayerConfig defines the player's spawn point.
type PlayerConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// CoyoteConfig defines the jump grace period after leaving the ground.
type CoyoteConfig struct {
	TimeMax float64 `yaml:"time_max"` // Seconds
}

// SpawnerConfig defines the bounds of procedural platform placement.
type SpawnerConfig struct {
	MinGap      float64 `yaml:"min_gap"`      // Smallest horizontal gap between platforms
	MaxGap      float64 `yaml:"max_gap"`      // Upper clamp applied on top of the jump reach
	ReachMargin float64 `yaml:"reach_margin"` // Fraction of the theoretical jump reach to use
	MaxStep     float64 `yaml:"max_step"`     // Largest vertical change from the previous platform
	MinY        float64 `yaml:"min_y"`        // Top of the playable band
	MaxY        float64 `yaml:"max_y"`        // Bottom of the playable band
}

// WorldConfig defines the logical screen and camera window.
type WorldConfig struct {
	ScreenWidth   float64 `yaml:"screen_width"`
	ScreenHeight  float64 `yaml:"screen_height"`
	CameraDivisor float64 `yaml:"camera_divisor"` // Player sits at screen_width/camera_divisor from the left edge
	PruneMargin   float64 `yaml:"prune_margin"`   // Distance behind the camera before entities are dropped
	CloudParallax float64 `yaml:"cloud_parallax"` // Camera offset factor applied to clouds
}

// MaxJumpDistance returns the largest horizontal gap guaranteed reachable by a
// single jump: full symmetric airtime times run speed, scaled by the margin.
func (c QuestConfig) MaxJumpDistance() float64 {
	tUp := -c.Physics.JumpForce / c.Physics.Gravity
	tTotal := 2 * tUp
	return c.Physics.MoveSpeed * tTotal * c.Spawner.ReachMargin
}

// GapRange returns the [min, max] horizontal gap the spawner draws from.
func (c QuestConfig) GapRange() (float64, float64) {
	return c.Spawner.MinGap, min(c.MaxJumpDistance(), c.Spawner.MaxGap)
}
