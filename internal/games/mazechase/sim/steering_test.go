package sim_test

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/mazechase/internal/games/mazechase/sim"
)

func TestTieBreakPrefersUpOverRight(t *testing.T) {
	ng := mustGraph(t, mustGrid(t, box(5, 5), -1))

	// From the bottom-left cell only Up and Right are open, both one tile
	// from the target.
	d := sim.ChooseDirection(ng, sim.SteeringInput{
		At:     ng.NodeAt(sim.C(1, 3)),
		Target: sim.C(2, 2),
		Mode:   sim.ModeChase,
	}, nil)
	if d != sim.DirUp {
		t.Errorf("expected up, got %s", d)
	}
}

func TestReverseExcludedWithoutGrant(t *testing.T) {
	ng := mustGraph(t, mustGrid(t, box(7, 3), -1))
	in := sim.SteeringInput{
		At:      ng.NodeAt(sim.C(3, 1)),
		Current: sim.DirRight,
		Target:  sim.C(1, 1),
		Mode:    sim.ModeChase,
	}

	if d := sim.ChooseDirection(ng, in, nil); d != sim.DirRight {
		t.Errorf("expected to keep going right without a grant, got %s", d)
	}

	in.CanReverse = true
	if d := sim.ChooseDirection(ng, in, nil); d != sim.DirLeft {
		t.Errorf("expected reversal towards the target with a grant, got %s", d)
	}
}

func TestDeadEndForcesReversal(t *testing.T) {
	ng := mustGraph(t, mustGrid(t, box(7, 3), -1))
	in := sim.SteeringInput{
		At:      ng.NodeAt(sim.C(5, 1)),
		Current: sim.DirRight,
		Target:  sim.C(6, 1),
		Mode:    sim.ModeScatter,
	}

	got := sim.Candidates(ng, in)
	if len(got) != 1 || got[0] != sim.DirLeft {
		t.Fatalf("expected only left, got %v", got)
	}
	if d := sim.ChooseDirection(ng, in, nil); d != sim.DirLeft {
		t.Errorf("expected left, got %s", d)
	}
}

func TestFrightenedPicksAmongCandidates(t *testing.T) {
	ng := mustGraph(t, mustGrid(t, box(5, 5), -1))
	rng := rand.New(rand.NewSource(3))
	in := sim.SteeringInput{
		At:      ng.NodeAt(sim.C(2, 2)),
		Current: sim.DirUp,
		Mode:    sim.ModeFrightened,
	}

	seen := make(map[sim.Dir]bool)
	for range 200 {
		d := sim.ChooseDirection(ng, in, rng)
		if d == sim.DirDown {
			t.Fatal("frightened ghost reversed without a grant")
		}
		seen[d] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected all three exits to be picked, got %v", seen)
	}
}

func TestBoxScenarioChoosesUp(t *testing.T) {
	g := mustGrid(t, box(5, 5), -1)
	w := mustWorld(t, smallOptions(g, sim.C(1, 1), sim.GhostSpawn{ID: sim.Blinky, Tile: sim.C(3, 3)}))

	blinky, _ := w.Ghost(sim.Blinky)
	if blinky.Mode() != sim.ModeChase {
		t.Fatalf("expected chase, got %s", blinky.Mode())
	}

	w.Step(sim.DirRight)

	if w.Player().Tile() != sim.C(1, 1) || w.Player().Dir != sim.DirRight {
		t.Fatalf("expected player leaving (1,1) to the right, got %v %s", w.Player().Tile(), w.Player().Dir)
	}
	if blinky.Target() != sim.C(1, 1) {
		t.Errorf("expected target (1,1), got %v", blinky.Target())
	}
	if blinky.Dir != sim.DirUp {
		t.Errorf("expected up, got %s", blinky.Dir)
	}
}
