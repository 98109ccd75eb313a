package config

import (
	_ "embed"
)

//go:embed defaults/xonix.yaml
var defaultXonixYAML []byte

//go:embed defaults/paratrooper.yaml
var defaultParatrooperYAML []byte

// DefaultXonixConfig returns the default Xonix configuration.
func DefaultXonixConfig() XonixConfig {
	return XonixConfig{
		Field: XonixField{
			Width:  60,
			Height: 20,
		},
		Rules: XonixRules{
			TargetPercent:  75,
			Lives:          3,
			MoveEveryTicks: 6,
		},
		Agents: XonixAgents{
			Count:          3,
			MoveEveryTicks: 8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score", // score is the claimed percentage
				MaxAt: 75,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.5,
				IntervalReduction: 3,
				SpawnReduction:    0,
			},
		},
	}
}

// DefaultParatrooperConfig returns the default Paratrooper configuration.
func DefaultParatrooperConfig() ParatrooperConfig {
	return ParatrooperConfig{
		Turret: TurretConfig{
			RotateSpeed:   0.05,
			CooldownTicks: 10,
			BulletSpeed:   1.2,
		},
		Waves: WaveConfig{
			InitialHelis:   3,
			MaxHelis:       8,
			HeliSpeed:      0.4,
			DropMinTicks:   60,
			DropMaxTicks:   120,
			ChuteOpenTicks: 12,
			FallSpeed:      0.5,
			ChuteFallSpeed: 0.15,
		},
		Scoring: ScoringConfig{
			HeliPoints:    50,
			TrooperPoints: 25,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.8,
				IntervalReduction: 0,
				SpawnReduction:    40,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "xonix":
		return defaultXonixYAML
	case "paratrooper":
		return defaultParatrooperYAML
	default:
		return nil
	}
}
