package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML KokatonConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}

	if fromYAML != DefaultKokatonConfig() {
		t.Errorf("embedded YAML and DefaultKokatonConfig() differ:\nyaml: %+v\ncode: %+v", fromYAML, DefaultKokatonConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultKokatonConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadKokatonFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadKokaton("")
	if err != nil {
		t.Fatalf("LoadKokaton() failed: %v", err)
	}
	if cfg.World.Width != 1100 || cfg.World.Height != 650 {
		t.Errorf("world = %dx%d, expected 1100x650", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Hazards.Count != 5 {
		t.Errorf("hazard count = %d, expected 5", cfg.Hazards.Count)
	}
}

func TestLoadKokatonUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "kokaton.yaml"), []byte("hazards:\n  count: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadKokaton("")
	if err != nil {
		t.Fatalf("LoadKokaton() failed: %v", err)
	}
	if cfg.Hazards.Count != 9 {
		t.Errorf("hazard count = %d, expected 9 from user config", cfg.Hazards.Count)
	}
	// Unset fields keep their defaults
	if cfg.Hazards.Radius != 10 || cfg.Player.Step != 5 {
		t.Errorf("partial user config should keep defaults, got %+v", cfg)
	}
}

func TestLoadKokatonCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("player:\n  step: 8\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadKokaton(path)
	if err != nil {
		t.Fatalf("LoadKokaton() failed: %v", err)
	}
	if cfg.Player.Step != 8 {
		t.Errorf("player step = %d, expected 8", cfg.Player.Step)
	}
}

func TestLoadKokatonCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadKokaton(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: ["), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadKokaton(bad); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Errorf("broken YAML should fail to parse, got %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("beam:\n  speed: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadKokaton(invalid); err == nil || !strings.Contains(err.Error(), "beam speed") {
		t.Errorf("invalid config should be rejected, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*KokatonConfig)
		want   string
	}{
		{"empty world", func(c *KokatonConfig) { c.World.Width = 0 }, "world size"},
		{"zero step", func(c *KokatonConfig) { c.Player.Step = 0 }, "player step"},
		{"start outside", func(c *KokatonConfig) { c.Player.StartX = 5000 }, "player start"},
		{"negative count", func(c *KokatonConfig) { c.Hazards.Count = -1 }, "hazard count"},
		{"huge radius", func(c *KokatonConfig) { c.Hazards.Radius = 400 }, "hazard radius"},
		{"negative spawn attempts", func(c *KokatonConfig) { c.Hazards.SpawnAttempts = -1 }, "spawn attempts"},
		{"unknown color", func(c *KokatonConfig) { c.Hazards.Color = "purplish" }, `unknown hazard color "purplish"`},
		{"no explosion life", func(c *KokatonConfig) { c.Explosion.Life = 0 }, "explosion life"},
		{"no tick rate", func(c *KokatonConfig) { c.Gameplay.TickRate = 0 }, "tick rate"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultKokatonConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.want)
			}
		})
	}
}

func TestApplyKokatonPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
		count   int
		radius  int
	}{
		{"", false, 0.0, 5, 10},
		{DifficultyFixed, false, 0.0, 5, 10},
		{DifficultyEasy, true, 0.0, 3, 10},
		{DifficultyNormal, true, 0.3, 5, 10},
		{DifficultyHard, true, 0.7, 5, 15},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultKokatonConfig()
			ApplyKokatonPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Hazards.Count != tc.count {
				t.Errorf("Hazards.Count = %d, expected %d", cfg.Hazards.Count, tc.count)
			}
			if cfg.Hazards.Radius != tc.radius {
				t.Errorf("Hazards.Radius = %d, expected %d", cfg.Hazards.Radius, tc.radius)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should be DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown presets should map to empty")
	}
}
