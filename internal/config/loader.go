package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMazeChase loads the maze chase configuration.
// Search order: customPath -> ~/.mazechase/configs/mazechase.yaml ->
// ./configs/mazechase.yaml -> embedded default.
// Files only need to set the keys they change; the rest keep their defaults.
func LoadMazeChase(customPath string) (MazeChaseConfig, error) {
	cfg := DefaultMazeChaseConfig()
	if err := yaml.Unmarshal(defaultMazeChaseYAML, &cfg); err != nil {
		cfg = DefaultMazeChaseConfig() // Fallback to hardcoded if embed fails
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath("mazechase.yaml"), filepath.Join("configs", "mazechase.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		overlay := cfg
		if err := yaml.Unmarshal(data, &overlay); err == nil && overlay.Validate() == nil {
			return overlay, nil
		}
	}

	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mazechase", "configs", filename)
}

// ApplyMazeChasePreset modifies the config based on a difficulty preset.
func ApplyMazeChasePreset(cfg *MazeChaseConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Speed.Base *= 0.9
		cfg.Timings.FrightenedTicks += 120
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Timings.FrightenedTicks -= 120
		if cfg.Timings.FrightenedTicks < 120 {
			cfg.Timings.FrightenedTicks = 120
		}
	}
}
