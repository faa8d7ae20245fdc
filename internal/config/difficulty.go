package config

import "math"

// DifficultyManager turns the session's difficulty value into scroll speed.
// Difficulty itself is owned by the game state (1 + depth/DepthPerLevel);
// this type only decides how strongly the world reacts to it.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Scaling.SpeedMultiplier > 0
}

// Level converts depth into a difficulty value starting at 1.
func (d *DifficultyManager) Level(depth float64) float64 {
	per := d.cfg.DepthPerLevel
	if per <= 0 {
		per = 500 // Prevent division by zero
	}
	return 1 + depth/per
}

// ScrollSpeed returns the scroll speed for the given difficulty.
// With progression disabled the base speed is returned unchanged.
func (d *DifficultyManager) ScrollSpeed(base, difficulty float64) float64 {
	if !d.IsEnabled() {
		return base
	}
	level := math.Max(difficulty-1, 0)
	speed := base * (1 + level*d.cfg.Scaling.SpeedMultiplier)
	if limit := d.cfg.Scaling.MaxSpeed; limit > 0 && speed > limit {
		speed = limit
	}
	return speed
}
