package mazechase

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/sim"
)

var identities = map[string]sim.Identity{
	"blinky": sim.Blinky,
	"pinky":  sim.Pinky,
	"inky":   sim.Inky,
	"clyde":  sim.Clyde,
}

// WorldOptions turns a validated config into simulation options. An empty
// layout selects the classic maze.
func WorldOptions(cfg config.MazeChaseConfig, seed int64, logger *log.Logger) (sim.Options, error) {
	layout, tunnel := cfg.Maze.Layout, cfg.Maze.TunnelRow
	if len(layout) == 0 {
		layout = sim.ClassicLayout()
	}
	grid, err := sim.ParseGrid(layout, tunnel)
	if err != nil {
		return sim.Options{}, fmt.Errorf("mazechase: maze: %w", err)
	}

	opts := sim.DefaultOptions(grid)
	opts.TileSize = cfg.Maze.TileSize
	opts.PlayerStart = tile(cfg.Player.Start)
	opts.PlayerSpeed = cfg.Player.Speed
	opts.BoostMultiplier = cfg.Player.BoostMultiplier
	opts.BoostTicks = cfg.Player.BoostTicks
	opts.HouseCenter = tile(cfg.Ghosts.HouseCenter)
	opts.HouseExit = tile(cfg.Ghosts.HouseExit)

	opts.Ghosts = opts.Ghosts[:0]
	for _, s := range cfg.Ghosts.Spawns {
		id, ok := identities[strings.ToLower(s.Name)]
		if !ok {
			return sim.Options{}, fmt.Errorf("mazechase: unknown ghost %q", s.Name)
		}
		spawn := sim.GhostSpawn{
			ID:         id,
			Tile:       tile(s.Tile),
			InHouse:    s.InHouse,
			HouseDelay: s.HouseDelay,
		}
		if !s.InHouse {
			spawn.Facing = sim.DirLeft
		}
		opts.Ghosts = append(opts.Ghosts, spawn)
	}

	opts.Waves = opts.Waves[:0]
	for _, w := range cfg.Timings.Waves {
		mode := sim.ModeChase
		if w.Mode == "scatter" {
			mode = sim.ModeScatter
		}
		opts.Waves = append(opts.Waves, sim.Wave{Mode: mode, Ticks: w.Ticks})
	}
	opts.FrightenedTicks = cfg.Timings.FrightenedTicks
	opts.FrightenedMinor = cfg.Timings.FrightenedMinorTicks
	opts.FlashTicks = cfg.Timings.FlashTicks
	opts.FrightenedRepick = cfg.Timings.FrightenedRepick
	opts.StuckTicks = cfg.Timings.StuckTicks

	opts.Speed = sim.SpeedConfig{
		Base:             cfg.Speed.Base,
		ProgressiveStep:  cfg.Speed.ProgressiveStep,
		ProgressiveTicks: cfg.Speed.ProgressiveTicks,
		ProgressiveMax:   cfg.Speed.ProgressiveMax,
		DebuffMultiplier: cfg.Speed.DebuffMultiplier,
		DebuffTicks:      cfg.Speed.DebuffTicks,
		BuffMultiplier:   cfg.Speed.BuffMultiplier,
		BuffTicks:        cfg.Speed.BuffTicks,
		FrightenedFactor: cfg.Speed.FrightenedFactor,
		EatenFactor:      cfg.Speed.EatenFactor,
	}

	opts.Pickups = []sim.PickupRule{
		pickupRule(sim.PickupMajor, cfg.Pickups.Major),
		pickupRule(sim.PickupMinor, cfg.Pickups.Minor),
	}

	opts.Seed = seed
	opts.Logger = logger
	return opts, nil
}

func pickupRule(kind sim.PickupKind, r config.PickupRule) sim.PickupRule {
	out := sim.PickupRule{
		Kind:         kind,
		Cap:          r.Cap,
		InitialDelay: r.InitialDelay,
		MinDelay:     r.MinDelay,
		MaxDelay:     r.MaxDelay,
		Despawn:      r.Despawn,
		Warn:         r.Warn,
	}
	for _, c := range r.Candidates {
		out.Candidates = append(out.Candidates, tile(c))
	}
	return out
}

func tile(t config.Tile) sim.Coord {
	return sim.C(t.X, t.Y)
}
