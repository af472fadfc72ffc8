package sim_test

import (
	"testing"

	"github.com/vovakirdan/mazechase/internal/games/mazechase/sim"
)

func TestDirectTargetsPlayerTile(t *testing.T) {
	for y := range 31 {
		for x := range 28 {
			p := sim.C(x, y)
			got := sim.ChaseTarget(sim.Blinky, sim.TargetContext{Player: p, PlayerDir: sim.DirLeft, W: 28, H: 31})
			if got != p {
				t.Fatalf("expected %v, got %v", p, got)
			}
		}
	}
}

func TestAmbushTarget(t *testing.T) {
	player := sim.C(10, 10)
	tests := []struct {
		dir  sim.Dir
		want sim.Coord
	}{
		{sim.DirUp, sim.C(6, 6)}, // arcade quirk: up also shifts left
		{sim.DirDown, sim.C(10, 14)},
		{sim.DirLeft, sim.C(6, 10)},
		{sim.DirRight, sim.C(14, 10)},
		{sim.DirNone, sim.C(10, 10)},
	}

	for _, tt := range tests {
		got := sim.ChaseTarget(sim.Pinky, sim.TargetContext{Player: player, PlayerDir: tt.dir, W: 28, H: 31})
		if got != tt.want {
			t.Errorf("facing %s: expected %v, got %v", tt.dir, tt.want, got)
		}
	}
}

func TestPincerTarget(t *testing.T) {
	ctx := sim.TargetContext{
		Player:    sim.C(10, 10),
		PlayerDir: sim.DirRight,
		Anchor:    sim.C(14, 12),
		HasAnchor: true,
		W:         28,
		H:         31,
	}
	// pivot (12,10), vector from anchor (-2,-2)
	if got := sim.ChaseTarget(sim.Inky, ctx); got != sim.C(10, 8) {
		t.Errorf("expected (10,8), got %v", got)
	}

	ctx.PlayerDir = sim.DirUp
	// pivot (8,8) with the up quirk
	if got := sim.ChaseTarget(sim.Inky, ctx); got != sim.C(2, 4) {
		t.Errorf("expected (2,4), got %v", got)
	}
}

func TestShyTarget(t *testing.T) {
	far := sim.TargetContext{Self: sim.C(1, 1), Player: sim.C(20, 20), W: 28, H: 31}
	if got := sim.ChaseTarget(sim.Clyde, far); got != far.Player {
		t.Errorf("expected player tile when far, got %v", got)
	}

	near := sim.TargetContext{Self: sim.C(18, 18), Player: sim.C(20, 20), W: 28, H: 31}
	if got := sim.ChaseTarget(sim.Clyde, near); got != sim.C(0, 30) {
		t.Errorf("expected retreat corner when near, got %v", got)
	}
}

func TestScatterCornersAreDistinct(t *testing.T) {
	seen := make(map[sim.Coord]sim.Identity)
	for _, id := range sim.Identities {
		c := sim.ScatterCorner(id, 28, 31)
		if other, ok := seen[c]; ok {
			t.Errorf("%s and %s share corner %v", id, other, c)
		}
		seen[c] = id
	}
	if got := sim.ScatterCorner(sim.Blinky, 28, 31); got != sim.C(26, 0) {
		t.Errorf("expected blinky corner (26,0), got %v", got)
	}
}

func TestStrategies(t *testing.T) {
	want := map[sim.Identity]sim.Strategy{
		sim.Blinky: sim.StrategyDirect,
		sim.Pinky:  sim.StrategyAmbush,
		sim.Inky:   sim.StrategyPincer,
		sim.Clyde:  sim.StrategyShy,
	}
	for id, s := range want {
		if got := sim.StrategyOf(id); got != s {
			t.Errorf("%s: expected %s, got %s", id, s, got)
		}
	}
}
