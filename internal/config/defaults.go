package config

import (
	_ "embed"
)

//go:embed defaults/shaft.yaml
var defaultShaftYAML []byte

// DefaultShaftConfig returns the built-in tuning. It mirrors defaults/shaft.yaml
// and is used when the embedded file cannot be parsed.
func DefaultShaftConfig() ShaftConfig {
	return ShaftConfig{
		World: WorldConfig{
			CellWidth:   10,
			CellHeight:  25,
			ScrollSpeed: 0.5,
		},
		Player: PlayerConfig{
			Width:         30,
			Height:        40,
			StartY:        100,
			MoveSpeed:     5,
			DamageFlashMS: 500,
		},
		Physics: PhysicsConfig{
			Gravity:          0.25,
			JumpPower:        8,
			SpringMultiplier: 1.5,
		},
		Platforms: PlatformsConfig{
			Width:         80,
			Height:        15,
			Gap:           150,
			MinGap:        120,
			GapJitter:     0.5,
			MinCount:      5,
			InitialOffset: 50,
			BreakFrames:   60,
			DespawnMargin: 100,
			MinSpeed:      1,
			MaxSpeed:      3,
			SpawnBands: []SpawnBand{
				{AboveDepth: 100, Spike: 0.05, Breaking: 0.20, Moving: 0.35, Spring: 0.45},
				{AboveDepth: 200, Spike: 0.10, Breaking: 0.25, Moving: 0.40, Spring: 0.50},
				{AboveDepth: 500, Spike: 0.15, Breaking: 0.35, Moving: 0.55, Spring: 0.70},
			},
		},
		Hazards: HazardsConfig{
			CeilingHeight: 15,
			SpikeWidth:    20,
			PushSpeed:     2,
		},
		Gameplay: GameplayConfig{
			Lives:       100,
			SpikeDamage: 1,
		},
		Controls: ControlsConfig{
			Left:    []string{"left", "a", "A"},
			Right:   []string{"right", "d", "D"},
			Jump:    []string{" ", "up", "w"},
			Start:   []string{"enter"},
			Restart: []string{"r"},
			Pause:   []string{"p"},
			HoldMS:  150,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			DepthPerLevel: 500,
			Scaling: ScalingConfig{
				SpeedMultiplier: 0,
				MaxSpeed:        0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultShaftYAML
}
