package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadXonix loads Xonix configuration.
// Search order: customPath -> ~/.arcade/configs/xonix.yaml -> ./configs/xonix.yaml -> embedded default
func LoadXonix(customPath string) (XonixConfig, error) {
	var cfg XonixConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("xonix.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/xonix.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultXonixYAML, &cfg); err != nil {
		return DefaultXonixConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadParatrooper loads Paratrooper configuration.
// Search order: customPath -> ~/.arcade/configs/paratrooper.yaml -> ./configs/paratrooper.yaml -> embedded default
func LoadParatrooper(customPath string) (ParatrooperConfig, error) {
	var cfg ParatrooperConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("paratrooper.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/paratrooper.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultParatrooperYAML, &cfg); err != nil {
		return DefaultParatrooperConfig(), nil // Fallback to hardcoded if embed fails
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

// ApplyXonixPreset modifies the config based on a difficulty preset.
func ApplyXonixPreset(cfg *XonixConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the field based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Rules.Lives = 4
		cfg.Agents.Count = 2
		cfg.Agents.MoveEveryTicks = 10
	case DifficultyHard:
		cfg.Rules.Lives = 2
		cfg.Agents.Count = 5
		cfg.Agents.MoveEveryTicks = 6
	}
}

// ApplyParatrooperPreset modifies the config based on a difficulty preset.
func ApplyParatrooperPreset(cfg *ParatrooperConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust waves based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Waves.InitialHelis = 2
		cfg.Waves.MaxHelis = 6
		cfg.Turret.CooldownTicks = 8
	case DifficultyHard:
		cfg.Waves.InitialHelis = 4
		cfg.Waves.HeliSpeed = 0.55
		cfg.Waves.DropMinTicks = 40
		cfg.Waves.DropMaxTicks = 90
	}
}
