package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/kokaton/internal/core"
)

// LoadKokaton loads the Fight Kokaton configuration.
// Search order: customPath -> ~/.arcade/configs/kokaton.yaml -> ./configs/kokaton.yaml -> embedded default
// Values missing from a file keep their defaults.
func LoadKokaton(customPath string) (KokatonConfig, error) {
	cfg := DefaultKokatonConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("kokaton.yaml"), filepath.Join("configs", "kokaton.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultKokatonConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultKokatonYAML, &cfg); err != nil {
		return DefaultKokatonConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate checks that the configuration describes a playable game.
func (c KokatonConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, errors.New("world size must be positive"))
	}
	if c.Player.Step <= 0 {
		errs = append(errs, errors.New("player step must be positive"))
	}
	if c.Player.StartX < 0 || c.Player.StartX > c.World.Width ||
		c.Player.StartY < 0 || c.Player.StartY > c.World.Height {
		errs = append(errs, errors.New("player start must be inside the world"))
	}
	if c.Beam.Speed <= 0 {
		errs = append(errs, errors.New("beam speed must be positive"))
	}
	if c.Hazards.Count < 0 {
		errs = append(errs, errors.New("hazard count must not be negative"))
	}
	if c.Hazards.Radius <= 0 || 2*c.Hazards.Radius > c.World.Width || 2*c.Hazards.Radius > c.World.Height {
		errs = append(errs, errors.New("hazard radius must be positive and fit the world"))
	}
	if c.Hazards.SpawnAttempts < 0 {
		errs = append(errs, errors.New("hazard spawn attempts must not be negative"))
	}
	if _, ok := core.ParseColor(c.Hazards.Color); !ok {
		errs = append(errs, fmt.Errorf("unknown hazard color %q", c.Hazards.Color))
	}
	if c.Explosion.Life <= 0 {
		errs = append(errs, errors.New("explosion life must be positive"))
	}
	if c.Gameplay.TickRate <= 0 {
		errs = append(errs, errors.New("tick rate must be positive"))
	}
	return errors.Join(errs...)
}

// ApplyKokatonPreset modifies the config based on a difficulty preset.
func ApplyKokatonPreset(cfg *KokatonConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Hazards.Count = 3
	case DifficultyHard:
		cfg.Hazards.Radius += cfg.Hazards.Radius / 2
	}
}
