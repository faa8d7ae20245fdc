package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadShaft loads the shaft configuration.
// Search order: customPath -> ~/.shaft/configs/shaft.yaml -> ./configs/shaft.yaml -> embedded default
//
// Files are layered over the defaults, so a file only needs the keys it changes.
func LoadShaft(customPath string) (ShaftConfig, error) {
	cfg := DefaultShaftConfig()

	// Embedded default first so every later layer starts from it
	if err := yaml.Unmarshal(defaultShaftYAML, &cfg); err != nil {
		cfg = DefaultShaftConfig() // Fallback to hardcoded if embed fails
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decodeOver(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("shaft.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := decodeOver(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "shaft.yaml")); err == nil {
		if err := decodeOver(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	return cfg, nil
}

// decodeOver unmarshals data on top of a copy of cfg and only commits when the
// whole document parses.
func decodeOver(data []byte, cfg *ShaftConfig) error {
	next := *cfg
	next.Platforms.SpawnBands = append([]SpawnBand(nil), cfg.Platforms.SpawnBands...)
	if err := yaml.Unmarshal(data, &next); err != nil {
		return err
	}
	*cfg = next
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shaft", "configs", filename)
}

// ApplyShaftPreset modifies the config based on a difficulty preset.
func ApplyShaftPreset(cfg *ShaftConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Gameplay.Lives = 150
		cfg.World.ScrollSpeed = 0.4
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Gameplay.Lives = 50
		cfg.Difficulty.Scaling.SpeedMultiplier = 0.25
		cfg.Difficulty.Scaling.MaxSpeed = 1.5
	default:
		cfg.Difficulty.Enabled = true
	}
}

// Marshal renders a config back to YAML.
func Marshal(cfg ShaftConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
