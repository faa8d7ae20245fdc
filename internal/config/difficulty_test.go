package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(DefaultShaftConfig().Difficulty)

	tests := []struct {
		depth, expected float64
	}{
		{0, 1},
		{1, 1.002},
		{500, 2},
		{10000, 21},
	}
	for _, tc := range tests {
		if got := d.Level(tc.depth); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%f) = %f, expected %f", tc.depth, got, tc.expected)
		}
	}
}

func TestScrollSpeedConstantByDefault(t *testing.T) {
	d := NewDifficultyManager(DefaultShaftConfig().Difficulty)

	for _, difficulty := range []float64{1, 2, 21} {
		if got := d.ScrollSpeed(0.5, difficulty); got != 0.5 {
			t.Errorf("ScrollSpeed(0.5, %f) = %f, expected 0.5", difficulty, got)
		}
	}
}

func TestScrollSpeedScalesAndCaps(t *testing.T) {
	cfg := DefaultShaftConfig()
	ApplyShaftPreset(&cfg, DifficultyHard)
	d := NewDifficultyManager(cfg.Difficulty)

	if got := d.ScrollSpeed(0.5, 1); got != 0.5 {
		t.Errorf("ScrollSpeed at difficulty 1 = %f, expected 0.5", got)
	}
	if got := d.ScrollSpeed(0.5, 3); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("ScrollSpeed at difficulty 3 = %f, expected 0.75", got)
	}
	if got := d.ScrollSpeed(0.5, 100); got != 1.5 {
		t.Errorf("ScrollSpeed should cap at 1.5, got %f", got)
	}

	d.SetEnabled(false)
	if got := d.ScrollSpeed(0.5, 100); got != 0.5 {
		t.Errorf("disabled progression should keep base speed, got %f", got)
	}
}
