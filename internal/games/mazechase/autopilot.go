package mazechase

import (
	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/sim"
)

var steerActions = map[sim.Dir]core.Action{
	sim.DirUp:    core.ActionUp,
	sim.DirDown:  core.ActionDown,
	sim.DirLeft:  core.ActionLeft,
	sim.DirRight: core.ActionRight,
}

var autopilotDirs = [4]sim.Dir{sim.DirUp, sim.DirLeft, sim.DirDown, sim.DirRight}

// Autopilot steers the player for headless runs: it walks the shortest path
// to the nearest dot, pickup or frightened ghost and avoids tiles close to
// dangerous ghosts. It is deterministic for a given world.
type Autopilot struct {
	// Caution is the Manhattan distance kept from dangerous ghosts.
	Caution int
}

// NewAutopilot returns an autopilot with a two-tile safety margin.
func NewAutopilot() *Autopilot {
	return &Autopilot{Caution: 2}
}

// Frame builds the input for the next tick of g.
func (a *Autopilot) Frame(g *Game) core.InputFrame {
	frame := core.NewInputFrame()
	if g.Over() {
		return frame
	}
	if w := g.World(); w != nil {
		if d := a.Next(w); d != sim.DirNone {
			frame.Set(steerActions[d])
		}
	}
	return frame
}

// Next returns the direction to request, or DirNone to keep going.
func (a *Autopilot) Next(w *sim.World) sim.Dir {
	p := w.Player()
	if p.Moving() {
		return sim.DirNone
	}

	danger := make(map[sim.Coord]bool)
	prey := make(map[sim.Coord]bool)
	for _, gh := range w.Ghosts() {
		switch {
		case gh.InHouse() || gh.Mode() == sim.ModeEaten:
		case gh.Mode() == sim.ModeFrightened:
			prey[gh.Tile()] = true
		default:
			t := gh.Tile()
			for dy := -a.Caution; dy <= a.Caution; dy++ {
				for dx := -a.Caution; dx <= a.Caution; dx++ {
					if core.Abs(dx)+core.Abs(dy) <= a.Caution {
						danger[t.Add(dx, dy)] = true
					}
				}
			}
		}
	}
	pickups := make(map[sim.Coord]bool)
	for _, pk := range w.Pickups() {
		pickups[pk.Tile] = true
	}

	goal := func(c sim.Coord) bool {
		return w.HasDot(c) || pickups[c] || prey[c]
	}
	if d := a.search(w.Graph(), p.Node, goal, danger); d != sim.DirNone {
		return d
	}
	// Boxed in: head for the nearest safe tile.
	return a.search(w.Graph(), p.Node, func(c sim.Coord) bool { return !danger[c] }, nil)
}

// search runs a breadth-first search from start and returns the first step
// towards the closest tile accepted by goal. Blocked tiles are not entered.
func (a *Autopilot) search(g *sim.NavGraph, start *sim.Node, goal func(sim.Coord) bool, blocked map[sim.Coord]bool) sim.Dir {
	if start == nil {
		return sim.DirNone
	}
	type entry struct {
		node  *sim.Node
		first sim.Dir
	}
	seen := map[*sim.Node]bool{start: true}
	queue := []entry{{node: start}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range autopilotDirs {
			nb := g.Neighbor(cur.node, d, false)
			if nb == nil || seen[nb] || blocked[nb.Tile] {
				continue
			}
			seen[nb] = true
			first := cur.first
			if first == sim.DirNone {
				first = d
			}
			if goal(nb.Tile) {
				return first
			}
			queue = append(queue, entry{node: nb, first: first})
		}
	}
	return sim.DirNone
}
