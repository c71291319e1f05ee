// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// KokatonConfig contains all configuration for Fight Kokaton.
type KokatonConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Beam       BeamConfig       `yaml:"beam"`
	Hazards    HazardConfig     `yaml:"hazards"`
	Explosion  ExplosionConfig  `yaml:"explosion"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the size of the playfield in pixels.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the kokaton's start position and movement.
type PlayerConfig struct {
	StartX int `yaml:"start_x"` // Center X at game start
	StartY int `yaml:"start_y"` // Center Y at game start
	Step   int `yaml:"step"`    // Pixels moved per held direction per tick
}

// BeamConfig defines beam parameters.
type BeamConfig struct {
	Speed int `yaml:"speed"` // Pixels per tick along each moving axis
}

// HazardConfig defines the bouncing bombs.
type HazardConfig struct {
	Count         int    `yaml:"count"`
	Radius        int    `yaml:"radius"`
	Speed         int    `yaml:"speed"` // Pixels per tick on each axis
	Color         string `yaml:"color"`
	SpawnAttempts int    `yaml:"spawn_attempts"` // Re-rolls to avoid spawning on the player
}

// ExplosionConfig defines the hit animation.
type ExplosionConfig struct {
	Life int `yaml:"life"` // Ticks the explosion lives, including the removal tick
}

// GameplayConfig defines HUD placement and platform timing.
type GameplayConfig struct {
	TickRate       int `yaml:"tick_rate"`         // Target frames per second
	GameOverHoldMs int `yaml:"game_over_hold_ms"` // How long the final frame stays up
	ScoreX         int `yaml:"score_x"`
	ScoreY         int `yaml:"score_y"` // Measured from the bottom edge of the world
}

// DifficultyConfig scales the hazards at game start.
type DifficultyConfig struct {
	Enabled      bool          `yaml:"enabled"`
	InitialLevel float64       `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Scaling      ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to hazard speed
	ExtraHazards    int     `yaml:"extra_hazards"`    // Hazards added on top of count
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Unknown values map to "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
