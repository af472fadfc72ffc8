package config

import (
	_ "embed"
)

//go:embed defaults/mazechase.yaml
var defaultMazeChaseYAML []byte

// DefaultMazeChaseConfig returns the default maze chase configuration.
// It matches defaults/mazechase.yaml and is used when the embedded file
// cannot be parsed.
func DefaultMazeChaseConfig() MazeChaseConfig {
	return MazeChaseConfig{
		Maze: MazeConfig{
			TunnelRow: 14,
			TileSize:  20,
		},
		Player: PlayerConfig{
			Start:           Tile{13, 23},
			Speed:           1.733,
			BoostMultiplier: 2.0,
			BoostTicks:      300,
		},
		Ghosts: GhostsConfig{
			HouseCenter: Tile{14, 15},
			HouseExit:   Tile{14, 12},
			Spawns: []GhostSpawn{
				{Name: "blinky", Tile: Tile{14, 12}, HouseDelay: 60},
				{Name: "pinky", Tile: Tile{14, 15}, InHouse: true, HouseDelay: 120},
				{Name: "inky", Tile: Tile{12, 15}, InHouse: true, HouseDelay: 300},
				{Name: "clyde", Tile: Tile{16, 15}, InHouse: true, HouseDelay: 480},
			},
		},
		Timings: TimingsConfig{
			Waves: []Wave{
				{"scatter", 420}, {"chase", 1200},
				{"scatter", 420}, {"chase", 1200},
				{"scatter", 300}, {"chase", 1200},
				{"scatter", 300}, {"chase", -1},
			},
			FrightenedTicks:      360,
			FrightenedMinorTicks: 120,
			FlashTicks:           90,
			FrightenedRepick:     30,
			StuckTicks:           60,
		},
		Speed: SpeedConfig{
			Base:             1.625,
			ProgressiveStep:  0.05,
			ProgressiveTicks: 480,
			ProgressiveMax:   1.5,
			DebuffMultiplier: 0.75,
			DebuffTicks:      300,
			BuffMultiplier:   1.5,
			BuffTicks:        180,
			FrightenedFactor: 0.5,
			EatenFactor:      2.0,
		},
		Pickups: PickupsConfig{
			Major: PickupRule{
				Candidates:   []Tile{{1, 3}, {26, 3}, {1, 23}, {26, 23}},
				Cap:          2,
				InitialDelay: 300,
				MinDelay:     600,
				MaxDelay:     900,
				Despawn:      600,
				Warn:         300,
			},
			Minor: PickupRule{
				Candidates:   []Tile{{6, 17}, {21, 17}, {14, 23}, {13, 5}},
				Cap:          1,
				InitialDelay: 600,
				MinDelay:     900,
				MaxDelay:     1500,
				Despawn:      480,
				Warn:         300,
			},
		},
		Scoring: ScoringConfig{
			Dot:   10,
			Major: 50,
			Minor: 50,
			Ghost: 200,
		},
		Gameplay: GameplayConfig{
			Lives:      3,
			Levels:     3,
			ReadyTicks: 120,
			DeathTicks: 90,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 3,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:     0.3,
				FrightenedReduction: 120,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "mazechase":
		return defaultMazeChaseYAML
	default:
		return nil
	}
}
