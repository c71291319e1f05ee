package config

import "math"

// DifficultyManager derives hazard parameters from the difficulty level.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// Level returns the difficulty level (0.0 to 1.0). Disabled scaling is level 0.
func (d *DifficultyManager) Level() float64 {
	if !d.cfg.Enabled {
		return 0
	}
	return d.initialLevel
}

// Speed returns the hazard speed for the current level, never below 1.
func (d *DifficultyManager) Speed(baseSpeed int) int {
	// Speed increases from base to base * (1 + speedMultiplier)
	speed := int(math.Round(float64(baseSpeed) * (1.0 + d.Level()*d.cfg.Scaling.SpeedMultiplier)))
	if speed < 1 {
		speed = 1
	}
	return speed
}

// HazardCount returns the number of hazards spawned at game start.
func (d *DifficultyManager) HazardCount(baseCount int) int {
	return baseCount + int(d.Level()*float64(d.cfg.Scaling.ExtraHazards))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
