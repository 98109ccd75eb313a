// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// XonixConfig contains all configuration for the Xonix territory game.
type XonixConfig struct {
	Field      XonixField       `yaml:"field"`
	Rules      XonixRules       `yaml:"rules"`
	Agents     XonixAgents      `yaml:"agents"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// XonixField sizes the playing field in cells.
type XonixField struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// XonixRules defines win condition, lives and player cadence.
type XonixRules struct {
	TargetPercent  float64 `yaml:"target_percent"`   // claimed share that wins the game
	Lives          int     `yaml:"lives"`            // lives before game over
	MoveEveryTicks int     `yaml:"move_every_ticks"` // player step interval
}

// XonixAgents defines the hostile agents roaming the open field.
type XonixAgents struct {
	Count          int `yaml:"count"`            // agents at game start
	MoveEveryTicks int `yaml:"move_every_ticks"` // agent step interval at difficulty 0
}

// ParatrooperConfig contains all configuration for the Paratrooper game.
type ParatrooperConfig struct {
	Turret     TurretConfig     `yaml:"turret"`
	Waves      WaveConfig       `yaml:"waves"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TurretConfig defines the player turret.
type TurretConfig struct {
	RotateSpeed   float64 `yaml:"rotate_speed"`   // radians per tick
	CooldownTicks int     `yaml:"cooldown_ticks"` // ticks between shots
	BulletSpeed   float64 `yaml:"bullet_speed"`   // cells per tick
}

// WaveConfig defines helicopter waves and paratrooper drops.
type WaveConfig struct {
	InitialHelis   int     `yaml:"initial_helis"`    // helicopters in the first wave
	MaxHelis       int     `yaml:"max_helis"`        // cap across waves
	HeliSpeed      float64 `yaml:"heli_speed"`       // cells per tick
	DropMinTicks   int     `yaml:"drop_min_ticks"`   // min ticks between drops per heli
	DropMaxTicks   int     `yaml:"drop_max_ticks"`   // max ticks between drops per heli
	ChuteOpenTicks int     `yaml:"chute_open_ticks"` // free-fall ticks before the chute opens
	FallSpeed      float64 `yaml:"fall_speed"`       // free-fall cells per tick
	ChuteFallSpeed float64 `yaml:"chute_fall_speed"` // cells per tick under the chute
}

// ScoringConfig defines kill rewards.
type ScoringConfig struct {
	HeliPoints    int `yaml:"heli_points"`
	TrooperPoints int `yaml:"trooper_points"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	IntervalReduction int     `yaml:"interval_reduction"` // Ticks removed from move intervals at max difficulty
	SpawnReduction    int     `yaml:"spawn_reduction"`    // Ticks removed from spawn intervals at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
