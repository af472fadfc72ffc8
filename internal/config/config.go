// Package config provides YAML-based game configuration loading and
// difficulty management for mazechase.
package config

import (
	"fmt"
	"strings"
)

// MazeChaseConfig contains all configuration for the maze chase game.
// Durations are in ticks at 60 Hz, distances in pixels with 20 px tiles.
type MazeChaseConfig struct {
	Maze       MazeConfig       `yaml:"maze"`
	Player     PlayerConfig     `yaml:"player"`
	Ghosts     GhostsConfig     `yaml:"ghosts"`
	Timings    TimingsConfig    `yaml:"timings"`
	Speed      SpeedConfig      `yaml:"speed"`
	Pickups    PickupsConfig    `yaml:"pickups"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Tile is a grid position in a YAML-friendly form.
type Tile struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// MazeConfig describes the wall map. An empty layout selects the built-in
// classic maze. Rows use '#' for walls, '-' for the house door, '.' for a
// floor tile with a dot and ' ' for a bare floor tile.
type MazeConfig struct {
	Layout    []string `yaml:"layout"`
	TunnelRow int      `yaml:"tunnel_row"` // -1 disables the wrap
	TileSize  float64  `yaml:"tile_size"`
}

// PlayerConfig defines the player start and movement.
type PlayerConfig struct {
	Start           Tile    `yaml:"start"`
	Speed           float64 `yaml:"speed"`
	BoostMultiplier float64 `yaml:"boost_multiplier"`
	BoostTicks      int     `yaml:"boost_ticks"`
}

// GhostsConfig places the house and the ghosts.
type GhostsConfig struct {
	HouseCenter Tile         `yaml:"house_center"`
	HouseExit   Tile         `yaml:"house_exit"`
	Spawns      []GhostSpawn `yaml:"spawns"`
}

// GhostSpawn is one ghost's start. Name is blinky, pinky, inky or clyde.
type GhostSpawn struct {
	Name       string `yaml:"name"`
	Tile       Tile   `yaml:"tile"`
	InHouse    bool   `yaml:"in_house"`
	HouseDelay int    `yaml:"house_delay"`
}

// Wave is one scatter/chase period. Ticks <= 0 means forever.
type Wave struct {
	Mode  string `yaml:"mode"`
	Ticks int    `yaml:"ticks"`
}

// TimingsConfig holds the mode schedule and frightened timings.
type TimingsConfig struct {
	Waves                []Wave `yaml:"waves"`
	FrightenedTicks      int    `yaml:"frightened_ticks"`
	FrightenedMinorTicks int    `yaml:"frightened_minor_ticks"`
	FlashTicks           int    `yaml:"flash_ticks"`
	FrightenedRepick     int    `yaml:"frightened_repick"`
	StuckTicks           int    `yaml:"stuck_ticks"`
}

// SpeedConfig defines ghost speed factors.
type SpeedConfig struct {
	Base             float64 `yaml:"base"`
	ProgressiveStep  float64 `yaml:"progressive_step"`
	ProgressiveTicks int     `yaml:"progressive_ticks"`
	ProgressiveMax   float64 `yaml:"progressive_max"`
	DebuffMultiplier float64 `yaml:"debuff_multiplier"`
	DebuffTicks      int     `yaml:"debuff_ticks"`
	BuffMultiplier   float64 `yaml:"buff_multiplier"`
	BuffTicks        int     `yaml:"buff_ticks"`
	FrightenedFactor float64 `yaml:"frightened_factor"`
	EatenFactor      float64 `yaml:"eaten_factor"`
}

// PickupsConfig configures both pickup kinds.
type PickupsConfig struct {
	Major PickupRule `yaml:"major"`
	Minor PickupRule `yaml:"minor"`
}

// PickupRule configures one pickup kind. Empty candidates fall back to the
// tiles nearest the maze corners.
type PickupRule struct {
	Candidates   []Tile `yaml:"candidates"`
	Cap          int    `yaml:"cap"`
	InitialDelay int    `yaml:"initial_delay"`
	MinDelay     int    `yaml:"min_delay"`
	MaxDelay     int    `yaml:"max_delay"`
	Despawn      int    `yaml:"despawn"`
	Warn         int    `yaml:"warn"`
}

// ScoringConfig defines points per event.
type ScoringConfig struct {
	Dot   int `yaml:"dot"`
	Major int `yaml:"major"`
	Minor int `yaml:"minor"`
	Ghost int `yaml:"ghost"`
}

// GameplayConfig defines run-level rules.
type GameplayConfig struct {
	Lives      int `yaml:"lives"`
	Levels     int `yaml:"levels"`      // mazes to clear for a win
	ReadyTicks int `yaml:"ready_ticks"` // freeze before each start
	DeathTicks int `yaml:"death_ticks"` // freeze after losing a life
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // level/score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier     float64 `yaml:"speed_multiplier"`     // added to ghost speed at max difficulty
	FrightenedReduction int     `yaml:"frightened_reduction"` // frightened ticks removed at max difficulty
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
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a name into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q", s)
}

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

// ghostNames are the identities a spawn may use.
var ghostNames = map[string]bool{"blinky": true, "pinky": true, "inky": true, "clyde": true}

// Validate reports the first nonsensical value in cfg.
func (cfg MazeChaseConfig) Validate() error {
	if n := len(cfg.Maze.Layout); n > 0 {
		w := len(cfg.Maze.Layout[0])
		for i, row := range cfg.Maze.Layout {
			if len(row) != w {
				return fmt.Errorf("config: maze row %d has width %d, expected %d", i, len(row), w)
			}
		}
		if cfg.Maze.TunnelRow >= n {
			return fmt.Errorf("config: tunnel row %d outside a maze of %d rows", cfg.Maze.TunnelRow, n)
		}
	}
	if cfg.Maze.TileSize <= 0 {
		return fmt.Errorf("config: tile_size must be positive")
	}
	if cfg.Player.Speed <= 0 || cfg.Speed.Base <= 0 {
		return fmt.Errorf("config: speeds must be positive")
	}
	// Agents snap within 5 px of a node, so a step must not skip a tile.
	ghostTop := cfg.Speed.Base * cfg.Speed.ProgressiveMax * cfg.Speed.BuffMultiplier * cfg.Speed.EatenFactor *
		NewDifficultyManager(cfg.Difficulty).MaxSpeed()
	if cfg.Player.Speed*cfg.Player.BoostMultiplier >= cfg.Maze.TileSize || ghostTop >= cfg.Maze.TileSize {
		return fmt.Errorf("config: top speed must stay under one tile per tick")
	}
	if cfg.Speed.ProgressiveMax < 1 {
		return fmt.Errorf("config: progressive_max must be at least 1")
	}

	if len(cfg.Ghosts.Spawns) == 0 {
		return fmt.Errorf("config: at least one ghost is required")
	}
	seen := make(map[string]bool)
	for _, s := range cfg.Ghosts.Spawns {
		name := strings.ToLower(s.Name)
		if !ghostNames[name] {
			return fmt.Errorf("config: unknown ghost %q", s.Name)
		}
		if seen[name] {
			return fmt.Errorf("config: ghost %q listed twice", s.Name)
		}
		seen[name] = true
		if s.HouseDelay < 0 {
			return fmt.Errorf("config: %s house_delay must not be negative", name)
		}
	}

	if len(cfg.Timings.Waves) == 0 {
		return fmt.Errorf("config: waves must not be empty")
	}
	for i, w := range cfg.Timings.Waves {
		if w.Mode != "scatter" && w.Mode != "chase" {
			return fmt.Errorf("config: wave %d has mode %q, expected scatter or chase", i, w.Mode)
		}
	}
	if cfg.Timings.FrightenedTicks <= 0 || cfg.Timings.FrightenedMinorTicks <= 0 {
		return fmt.Errorf("config: frightened durations must be positive")
	}

	for name, r := range map[string]PickupRule{"major": cfg.Pickups.Major, "minor": cfg.Pickups.Minor} {
		if r.Cap < 0 || r.MinDelay < 0 || r.MaxDelay < r.MinDelay {
			return fmt.Errorf("config: %s pickup cap or delay range is invalid", name)
		}
		if r.Warn > r.Despawn {
			return fmt.Errorf("config: %s pickup warn exceeds despawn", name)
		}
	}

	if cfg.Gameplay.Lives <= 0 {
		return fmt.Errorf("config: lives must be positive")
	}
	if cfg.Gameplay.Levels <= 0 {
		return fmt.Errorf("config: levels must be positive")
	}
	return nil
}
