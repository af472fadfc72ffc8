package sim

// ArrivalEpsilon is the remaining distance, in pixels, under which an agent
// snaps onto its target node.
const ArrivalEpsilon = 5.0

// Agent is the node-to-node motion shared by the player and the ghosts.
// Node is authoritative. Target is non-nil only while moving between nodes.
type Agent struct {
	Node   *Node
	Target *Node
	Pos    Vec
	Dir    Dir

	requested Dir
}

// Place puts the agent on a node, stationary, facing d.
func (a *Agent) Place(n *Node, d Dir) {
	a.Teleport(n)
	a.Dir = d
	a.requested = DirNone
}

// Teleport moves the agent onto a node without interpolation.
func (a *Agent) Teleport(n *Node) {
	a.Node = n
	a.Target = nil
	a.Pos = n.Pos
}

// Request queues a direction. It is applied the next time the agent stands
// on a node and a neighbor exists that way.
func (a *Agent) Request(d Dir) {
	a.requested = d
}

// Requested returns the queued direction.
func (a *Agent) Requested() Dir {
	return a.requested
}

// Moving reports whether the agent is between nodes.
func (a *Agent) Moving() bool {
	return a.Target != nil
}

// Tile returns the agent's discrete position.
func (a *Agent) Tile() Coord {
	if a.Node == nil {
		return Coord{}
	}
	return a.Node.Tile
}

// Reverse flips the direction. Mid-edge the origin and target swap so the
// agent heads back to the node it came from.
func (a *Agent) Reverse() {
	if a.Target != nil {
		a.Node, a.Target = a.Target, a.Node
	}
	a.Dir = a.Dir.Opposite()
}

// Step advances the agent by speed pixels. It returns true when the agent
// arrived on a node this tick.
func (a *Agent) Step(g *NavGraph, speed float64, allowDoor bool) bool {
	if a.Node == nil {
		return false
	}
	if a.Target == nil && !a.acquire(g, allowDoor) {
		return false
	}

	dst := a.Target.Pos
	dx, dy := dst.X-a.Pos.X, dst.Y-a.Pos.Y
	remaining := a.Pos.Dist(dst)
	if remaining-speed < ArrivalEpsilon {
		a.Node = a.Target
		a.Target = nil
		a.Pos = dst
		if partner, ok := g.WrapPartner(a.Node, a.Dir); ok {
			a.Teleport(partner)
		}
		return true
	}

	a.Pos.X += dx / remaining * speed
	a.Pos.Y += dy / remaining * speed
	return false
}

// acquire picks the next target: the requested direction first, then the
// current one. With neither available the agent stops.
func (a *Agent) acquire(g *NavGraph, allowDoor bool) bool {
	for _, d := range [2]Dir{a.requested, a.Dir} {
		next := g.Neighbor(a.Node, d, allowDoor)
		if next == nil {
			continue
		}
		if partner, ok := g.WrapPartner(a.Node, d); ok {
			a.Teleport(partner)
			next = g.Neighbor(partner, d, allowDoor)
			if next == nil {
				a.Dir = d
				return false
			}
		}
		a.Target = next
		a.Dir = d
		return true
	}
	a.Dir = DirNone
	return false
}
