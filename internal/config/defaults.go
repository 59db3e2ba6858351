package config

import (
	_ "embed"
)

//go:embed defaults/quest.yaml
var defaultQuestYAML []byte

// DefaultQuestConfig returns the default Jerry's Quest configuration.
func DefaultQuestConfig() QuestConfig {
	return QuestConfig{
		Physics: PhysicsConfig{
			Gravity:   0.5,
			JumpForce: -12.0,
			MoveSpeed: 4.0,
		},
		Player: PlayerConfig{
			StartX: 50,
			StartY: 300,
		},
		Coyote: CoyoteConfig{
			TimeMax: 0.15,
		},
		Spawner: SpawnerConfig{
			MinGap:      120,
			MaxGap:      220,
			ReachMargin: 0.9,
			MaxStep:     80,
			MinY:        150,
			MaxY:        400,
		},
		World: WorldConfig{
			ScreenWidth:   800,
			ScreenHeight:  600,
			CameraDivisor: 3,
			PruneMargin:   100,
			CloudParallax: 0.3,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultQuestYAML
}
