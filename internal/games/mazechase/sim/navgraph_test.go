package sim_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/mazechase/internal/games/mazechase/sim"
)

func TestBuildGraphNodeCount(t *testing.T) {
	rows := sim.ClassicLayout()
	ng := mustGraph(t, mustGrid(t, rows, sim.ClassicTunnelRow))

	want := 0
	for _, row := range rows {
		for _, ch := range row {
			if ch != '#' {
				want++
			}
		}
	}
	if ng.Len() != want {
		t.Errorf("expected %d nodes, got %d", want, ng.Len())
	}
}

func TestNeighborsAreSymmetric(t *testing.T) {
	g := mustGrid(t, sim.ClassicLayout(), sim.ClassicTunnelRow)
	ng := mustGraph(t, g)

	dirs := []sim.Dir{sim.DirUp, sim.DirDown, sim.DirLeft, sim.DirRight}
	for y := range g.H {
		for x := range g.W {
			n := ng.NodeAt(sim.C(x, y))
			if n == nil {
				continue
			}
			for _, d := range dirs {
				nb := ng.Neighbor(n, d, true)
				if nb == nil {
					continue
				}
				if back := ng.Neighbor(nb, d.Opposite(), true); back != n {
					t.Fatalf("edge %v -%s-> %v is not mirrored", n.Tile, d, nb.Tile)
				}
			}
		}
	}
}

func TestTunnelWrap(t *testing.T) {
	ng := mustGraph(t, mustGrid(t, sim.ClassicLayout(), sim.ClassicTunnelRow))

	left := ng.NodeAt(sim.C(0, sim.ClassicTunnelRow))
	right := ng.NodeAt(sim.C(27, sim.ClassicTunnelRow))

	if got := ng.Neighbor(left, sim.DirLeft, false); got != right {
		t.Fatalf("expected left edge to wrap to the right edge")
	}
	if got := ng.Neighbor(right, sim.DirRight, false); got != left {
		t.Fatalf("expected right edge to wrap to the left edge")
	}
	if _, ok := ng.WrapPartner(left, sim.DirRight); ok {
		t.Error("moving inward must not wrap")
	}
	if p, ok := ng.WrapPartner(left, sim.DirLeft); !ok || p != right {
		t.Error("expected WrapPartner to return the right edge")
	}
}

func TestDoorNeighborOnlyForGhostsGoingHome(t *testing.T) {
	ng := mustGraph(t, mustGrid(t, sim.ClassicLayout(), sim.ClassicTunnelRow))
	exit := ng.NodeAt(sim.C(14, 12))

	if ng.Neighbor(exit, sim.DirDown, false) != nil {
		t.Error("expected the door to be closed without allowDoor")
	}
	nb := ng.Neighbor(exit, sim.DirDown, true)
	if nb == nil || !nb.Door {
		t.Error("expected the door node with allowDoor")
	}
}

func TestNearestNode(t *testing.T) {
	ng := mustGraph(t, mustGrid(t, sim.ClassicLayout(), sim.ClassicTunnelRow))

	target := sim.C(13, 23)
	p := ng.Center(target)
	p.X += 4
	p.Y -= 3

	n, err := ng.NearestNode(p)
	if err != nil {
		t.Fatalf("NearestNode failed: %v", err)
	}
	if n.Tile != target {
		t.Errorf("expected %v, got %v", target, n.Tile)
	}

	n, err = ng.NearestNode(ng.Center(sim.C(14, 13)))
	if err != nil {
		t.Fatalf("NearestNode failed: %v", err)
	}
	if n.Door {
		t.Error("NearestNode must not resolve onto a door")
	}
}

func TestBuildGraphNilGrid(t *testing.T) {
	if _, err := sim.BuildGraph(nil, 0); !errors.Is(err, sim.ErrNoPath) {
		t.Errorf("expected ErrNoPath, got %v", err)
	}
}
