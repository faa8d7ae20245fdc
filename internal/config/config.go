// Package config provides YAML-based game configuration loading and
// difficulty management for the shaft game.
package config

// ShaftConfig contains all tuning for the shaft game.
// Distances are world units; speeds are units per tick.
type ShaftConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Platforms  PlatformsConfig  `yaml:"platforms"`
	Hazards    HazardsConfig    `yaml:"hazards"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Controls   ControlsConfig   `yaml:"controls"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig maps terminal cells onto world units and sets the scroll rate.
type WorldConfig struct {
	CellWidth   float64 `yaml:"cell_width"`   // World units per column
	CellHeight  float64 `yaml:"cell_height"`  // World units per row
	ScrollSpeed float64 `yaml:"scroll_speed"` // Depth added per tick at difficulty 1
}

// PlayerConfig defines the player's body and movement.
type PlayerConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	StartY        float64 `yaml:"start_y"`
	MoveSpeed     float64 `yaml:"move_speed"`
	DamageFlashMS int     `yaml:"damage_flash_ms"`
}

// PhysicsConfig defines vertical motion.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	JumpPower        float64 `yaml:"jump_power"`
	SpringMultiplier float64 `yaml:"spring_multiplier"`
}

// PlatformsConfig defines platform geometry and the spawn policy.
type PlatformsConfig struct {
	Width         float64     `yaml:"width"`
	Height        float64     `yaml:"height"`
	Gap           float64     `yaml:"gap"`            // Base vertical gap between spawns
	MinGap        float64     `yaml:"min_gap"`        // Floor for randomized gaps
	GapJitter     float64     `yaml:"gap_jitter"`     // Gap is Gap*(1+rand[0,GapJitter))
	MinCount      int         `yaml:"min_count"`      // Live platforms never drop below this
	InitialOffset float64     `yaml:"initial_offset"` // First platform sits this far below the player's top
	BreakFrames   int         `yaml:"break_frames"`
	DespawnMargin float64     `yaml:"despawn_margin"` // Platforms this far above depth are dropped
	MinSpeed      float64     `yaml:"min_speed"`
	MaxSpeed      float64     `yaml:"max_speed"`
	SpawnBands    []SpawnBand `yaml:"spawn_bands"`
}

// SpawnBand holds cumulative type thresholds used once depth exceeds AboveDepth.
// Thresholds are checked in order spike, breaking, moving, spring; anything
// left over spawns a normal platform.
type SpawnBand struct {
	AboveDepth float64 `yaml:"above_depth"`
	Spike      float64 `yaml:"spike"`
	Breaking   float64 `yaml:"breaking"`
	Moving     float64 `yaml:"moving"`
	Spring     float64 `yaml:"spring"`
}

// HazardsConfig defines the fixed ceiling spikes and spike push-through.
type HazardsConfig struct {
	CeilingHeight float64 `yaml:"ceiling_height"` // Screen-relative y at or above which the ceiling hits
	SpikeWidth    float64 `yaml:"spike_width"`    // Width of one ceiling tooth
	PushSpeed     float64 `yaml:"push_speed"`     // Minimum fall speed forced by any spike
}

// GameplayConfig defines lives and damage.
type GameplayConfig struct {
	Lives       int `yaml:"lives"`
	SpikeDamage int `yaml:"spike_damage"`
}

// ControlsConfig lists key aliases per logical control.
// Key names follow Bubble Tea's key strings ("left", "a", " ", "enter").
type ControlsConfig struct {
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Jump    []string `yaml:"jump"`
	Start   []string `yaml:"start"`
	Restart []string `yaml:"restart"`
	Pause   []string `yaml:"pause"`
	HoldMS  int      `yaml:"hold_ms"` // How long a terminal key press counts as held
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled       bool          `yaml:"enabled"`
	DepthPerLevel float64       `yaml:"depth_per_level"` // Depth that adds 1.0 to difficulty
	Scaling       ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Scroll speed gained per difficulty level above 1
	MaxSpeed        float64 `yaml:"max_speed"`        // Cap on scroll speed; 0 means uncapped
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	if s == "" {
		return DifficultyNormal, true
	}
	for _, p := range Presets() {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}
