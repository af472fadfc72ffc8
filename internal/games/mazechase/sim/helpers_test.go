package sim_test

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/mazechase/internal/games/mazechase/sim"
)

// box returns a w x h layout with a wall border and an open interior.
func box(w, h int) []string {
	rows := make([]string, h)
	for y := range h {
		if y == 0 || y == h-1 {
			rows[y] = strings.Repeat("#", w)
			continue
		}
		rows[y] = "#" + strings.Repeat(" ", w-2) + "#"
	}
	return rows
}

func mustGrid(t *testing.T, rows []string, tunnel int) *sim.Grid {
	t.Helper()
	g, err := sim.ParseGrid(rows, tunnel)
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	return g
}

func mustGraph(t *testing.T, g *sim.Grid) *sim.NavGraph {
	t.Helper()
	ng, err := sim.BuildGraph(g, sim.DefaultTileSize)
	if err != nil {
		t.Fatalf("BuildGraph failed: %v", err)
	}
	return ng
}

// smallOptions returns options for a tiny open grid with a single ghost
// (or none) and no pickups.
func smallOptions(g *sim.Grid, player sim.Coord, ghosts ...sim.GhostSpawn) sim.Options {
	opts := sim.DefaultOptions(g)
	opts.PlayerStart = player
	opts.Ghosts = ghosts
	opts.HouseCenter = player
	opts.HouseExit = player
	opts.Waves = []sim.Wave{{Mode: sim.ModeChase, Ticks: -1}}
	opts.Pickups = nil
	return opts
}

func mustWorld(t *testing.T, opts sim.Options) *sim.World {
	t.Helper()
	w, err := sim.NewWorld(opts)
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	return w
}

func classicWorld(t *testing.T, seed int64) *sim.World {
	t.Helper()
	opts, err := sim.ClassicOptions()
	if err != nil {
		t.Fatalf("ClassicOptions failed: %v", err)
	}
	opts.Seed = seed
	return mustWorld(t, opts)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
