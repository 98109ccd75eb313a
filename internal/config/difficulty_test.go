package config

import (
	"math"
	"testing"
)

func scoreProgression(maxAt int) DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: maxAt},
		Scaling: ScalingConfig{
			SpeedMultiplier:   0.5,
			IntervalReduction: 3,
			SpawnReduction:    40,
		},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLevelProgressesWithScore(t *testing.T) {
	d := NewDifficultyManager(scoreProgression(100))

	if lvl := d.Level(0, 0); !almostEqual(lvl, 0.0) {
		t.Errorf("Expected level 0.0 at score 0, got %v", lvl)
	}
	if lvl := d.Level(50, 0); !almostEqual(lvl, 0.5) {
		t.Errorf("Expected level 0.5 at half score, got %v", lvl)
	}
	if lvl := d.Level(100, 0); !almostEqual(lvl, 1.0) {
		t.Errorf("Expected level 1.0 at max score, got %v", lvl)
	}
	// Past the max the level stays clamped
	if lvl := d.Level(500, 0); !almostEqual(lvl, 1.0) {
		t.Errorf("Expected level clamped to 1.0, got %v", lvl)
	}
}

func TestLevelProgressesWithTime(t *testing.T) {
	cfg := scoreProgression(200)
	cfg.Progression.Type = "time"
	d := NewDifficultyManager(cfg)

	// Score must be ignored, ticks drive the level
	if lvl := d.Level(9999, 0); !almostEqual(lvl, 0.0) {
		t.Errorf("Expected level 0.0 at tick 0, got %v", lvl)
	}
	if lvl := d.Level(0, 100); !almostEqual(lvl, 0.5) {
		t.Errorf("Expected level 0.5 at tick 100, got %v", lvl)
	}
}

func TestLevelDisabled(t *testing.T) {
	cfg := scoreProgression(100)
	cfg.Enabled = false
	cfg.InitialLevel = 0.3
	d := NewDifficultyManager(cfg)

	if lvl := d.Level(100, 100); !almostEqual(lvl, 0.3) {
		t.Errorf("Expected frozen level 0.3 when disabled, got %v", lvl)
	}
}

func TestLevelNoneProgression(t *testing.T) {
	cfg := scoreProgression(100)
	cfg.Progression.Type = "none"
	cfg.InitialLevel = 0.7
	d := NewDifficultyManager(cfg)

	if lvl := d.Level(100, 100); !almostEqual(lvl, 0.7) {
		t.Errorf("Expected frozen level 0.7 with none progression, got %v", lvl)
	}
	if d.IsEnabled() {
		t.Error("Expected IsEnabled false with none progression")
	}
}

func TestLevelInterpolatesFromInitial(t *testing.T) {
	d := NewDifficultyManager(scoreProgression(100))
	d.SetInitialLevel(0.5)

	// Halfway progress covers half the remaining range: 0.5 + 0.5*0.5
	if lvl := d.Level(50, 0); !almostEqual(lvl, 0.75) {
		t.Errorf("Expected level 0.75 from initial 0.5 at half score, got %v", lvl)
	}
}

func TestSetInitialLevelClamps(t *testing.T) {
	d := NewDifficultyManager(scoreProgression(100))

	d.SetInitialLevel(1.5)
	if lvl := d.Level(0, 0); !almostEqual(lvl, 1.0) {
		t.Errorf("Expected initial level clamped to 1.0, got %v", lvl)
	}
	d.SetInitialLevel(-0.5)
	if lvl := d.Level(0, 0); !almostEqual(lvl, 0.0) {
		t.Errorf("Expected initial level clamped to 0.0, got %v", lvl)
	}
}

func TestSpeedScaling(t *testing.T) {
	d := NewDifficultyManager(scoreProgression(100))

	if s := d.Speed(10.0, 0, 0); !almostEqual(s, 10.0) {
		t.Errorf("Expected base speed 10.0 at level 0, got %v", s)
	}
	// SpeedMultiplier 0.5 means +50% at max level
	if s := d.Speed(10.0, 100, 0); !almostEqual(s, 15.0) {
		t.Errorf("Expected speed 15.0 at max level, got %v", s)
	}
}

func TestMoveIntervalShrinks(t *testing.T) {
	d := NewDifficultyManager(scoreProgression(100))

	if iv := d.MoveInterval(8, 0, 0); iv != 8 {
		t.Errorf("Expected interval 8 at level 0, got %d", iv)
	}
	if iv := d.MoveInterval(8, 50, 0); iv != 7 {
		t.Errorf("Expected interval 7 at half level, got %d", iv)
	}
	if iv := d.MoveInterval(8, 100, 0); iv != 5 {
		t.Errorf("Expected interval 5 at max level, got %d", iv)
	}
	// Reduction never pushes the interval below one tick
	if iv := d.MoveInterval(2, 100, 0); iv != 1 {
		t.Errorf("Expected interval floor of 1, got %d", iv)
	}
}

func TestSpawnIntervalShrinks(t *testing.T) {
	d := NewDifficultyManager(scoreProgression(100))

	if iv := d.SpawnInterval(60, 0, 0); iv != 60 {
		t.Errorf("Expected spawn interval 60 at level 0, got %d", iv)
	}
	if iv := d.SpawnInterval(60, 50, 0); iv != 40 {
		t.Errorf("Expected spawn interval 40 at half level, got %d", iv)
	}
	// Reduction never pushes the interval below the floor of 10
	if iv := d.SpawnInterval(30, 100, 0); iv != 10 {
		t.Errorf("Expected spawn interval floor of 10, got %d", iv)
	}
}

func TestIsEnabled(t *testing.T) {
	d := NewDifficultyManager(scoreProgression(100))
	if !d.IsEnabled() {
		t.Error("Expected IsEnabled true for enabled score progression")
	}

	d.SetEnabled(false)
	if d.IsEnabled() {
		t.Error("Expected IsEnabled false after SetEnabled(false)")
	}
}
