package config

import (
	_ "embed"
)

//go:embed defaults/kokaton.yaml
var defaultKokatonYAML []byte

// DefaultKokatonConfig returns the default Fight Kokaton configuration.
func DefaultKokatonConfig() KokatonConfig {
	return KokatonConfig{
		World: WorldConfig{
			Width:  1100,
			Height: 650,
		},
		Player: PlayerConfig{
			StartX: 300,
			StartY: 200,
			Step:   5,
		},
		Beam: BeamConfig{
			Speed: 5,
		},
		Hazards: HazardConfig{
			Count:         5,
			Radius:        10,
			Speed:         5,
			Color:         "red",
			SpawnAttempts: 20,
		},
		Explosion: ExplosionConfig{
			Life: 10,
		},
		Gameplay: GameplayConfig{
			TickRate:       50,
			GameOverHoldMs: 1000,
			ScoreX:         100,
			ScoreY:         50,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				ExtraHazards:    5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultKokatonYAML
}
