package sim

import "math/rand"

// SteeringInput describes a ghost standing on a node and deciding where to go.
type SteeringInput struct {
	At         *Node
	Current    Dir
	Target     Coord
	Mode       Mode
	CanReverse bool
	AllowDoor  bool
}

// Candidates enumerates the legal exits of a node in Up, Down, Left, Right
// order. The reverse of the current direction is left out unless reversal
// is granted or it is the only way out.
func Candidates(g *NavGraph, in SteeringInput) []Dir {
	reverse := in.Current.Opposite()

	out := make([]Dir, 0, 4)
	for _, d := range scanOrder {
		if g.Neighbor(in.At, d, in.AllowDoor) == nil {
			continue
		}
		if d == reverse && !in.CanReverse {
			continue
		}
		out = append(out, d)
	}

	if len(out) == 0 && g.Neighbor(in.At, reverse, in.AllowDoor) != nil {
		out = append(out, reverse)
	}
	return out
}

// ChooseDirection picks the next direction at a node. Frightened ghosts pick
// uniformly at random. Everyone else takes the exit whose next tile is
// closest to the target, ties broken Up > Left > Down > Right.
func ChooseDirection(g *NavGraph, in SteeringInput, rng *rand.Rand) Dir {
	options := Candidates(g, in)
	if len(options) == 0 {
		return DirNone
	}

	if in.Mode == ModeFrightened && rng != nil {
		return options[rng.Intn(len(options))]
	}

	best := options[0]
	bestDist := in.At.Tile.Step(best, 1).Dist(in.Target)
	for _, d := range options[1:] {
		// The unwrapped neighbor tile, so the tunnel does not look like a
		// shortcut to the far edge.
		dist := in.At.Tile.Step(d, 1).Dist(in.Target)
		if dist < bestDist || (dist == bestDist && d.Priority() < best.Priority()) {
			best, bestDist = d, dist
		}
	}
	return best
}
