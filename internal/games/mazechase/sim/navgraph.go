package sim

import (
	"errors"
	"math"
	"math/rand"
)

// ErrNoPath is returned when a query cannot be answered because the graph
// has no walkable nodes.
var ErrNoPath = errors.New("sim: no path")

// Vec is a continuous pixel position.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dist returns the Euclidean distance between two positions.
func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Node is a walkable tile with its adjacency.
type Node struct {
	Tile Coord
	Pos  Vec // pixel center
	Door bool

	neighbors [5]*Node // indexed by Dir
	wrap      [5]bool  // true where the neighbor is the tunnel partner
}

// NavGraph is the graph of walkable tile centers built from a Grid.
// It is immutable after BuildGraph returns.
type NavGraph struct {
	grid     *Grid
	tileSize float64
	index    []*Node // row-major, nil for walls
	nodes    []*Node
}

// BuildGraph creates one node per passable cell (doors included) and wires
// 4-directional neighbors. The two edge cells of the tunnel row are linked
// to each other.
func BuildGraph(g *Grid, tileSize float64) (*NavGraph, error) {
	if g == nil {
		return nil, ErrNoPath
	}
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}

	ng := &NavGraph{
		grid:     g,
		tileSize: tileSize,
		index:    make([]*Node, g.W*g.H),
	}

	for y := range g.H {
		for x := range g.W {
			c := C(x, y)
			if g.IsWall(c) {
				continue
			}
			n := &Node{Tile: c, Pos: ng.Center(c), Door: g.IsDoor(c)}
			ng.index[y*g.W+x] = n
			ng.nodes = append(ng.nodes, n)
		}
	}

	if len(ng.nodes) == 0 {
		return nil, ErrNoPath
	}

	for _, n := range ng.nodes {
		for _, d := range scanOrder {
			n.neighbors[d] = ng.NodeAt(n.Tile.Step(d, 1))
		}
	}

	if row := g.TunnelRow(); row >= 0 {
		left, right := ng.NodeAt(C(0, row)), ng.NodeAt(C(g.W-1, row))
		if left != nil && right != nil {
			left.neighbors[DirLeft], left.wrap[DirLeft] = right, true
			right.neighbors[DirRight], right.wrap[DirRight] = left, true
		}
	}

	return ng, nil
}

// Grid returns the grid the graph was built from.
func (ng *NavGraph) Grid() *Grid {
	return ng.grid
}

// TileSize returns the pixel size of one tile.
func (ng *NavGraph) TileSize() float64 {
	return ng.tileSize
}

// Len returns the number of nodes.
func (ng *NavGraph) Len() int {
	return len(ng.nodes)
}

// Center returns the pixel center of a tile.
func (ng *NavGraph) Center(c Coord) Vec {
	return Vec{
		X: (float64(c.X) + 0.5) * ng.tileSize,
		Y: (float64(c.Y) + 0.5) * ng.tileSize,
	}
}

// NodeAt returns the node for a tile, or nil for walls and out-of-bounds.
func (ng *NavGraph) NodeAt(c Coord) *Node {
	if !ng.grid.InBounds(c) {
		return nil
	}
	return ng.index[c.Y*ng.grid.W+c.X]
}

// Neighbor returns the walkable neighbor of n in direction d, or nil.
// Door nodes are only returned when allowDoor is set.
func (ng *NavGraph) Neighbor(n *Node, d Dir, allowDoor bool) *Node {
	if n == nil || d == DirNone {
		return nil
	}
	nb := n.neighbors[d]
	if nb == nil || (nb.Door && !allowDoor) {
		return nil
	}
	return nb
}

// WrapPartner returns the node on the opposite edge when moving from n in
// direction d crosses the tunnel.
func (ng *NavGraph) WrapPartner(n *Node, d Dir) (*Node, bool) {
	if n == nil || d == DirNone || !n.wrap[d] {
		return nil, false
	}
	return n.neighbors[d], true
}

// NearestNode resolves a pixel position to the closest node by Euclidean
// distance. Use it at spawn or after teleports, not per tick.
func (ng *NavGraph) NearestNode(p Vec) (*Node, error) {
	if len(ng.nodes) == 0 {
		return nil, ErrNoPath
	}

	var best *Node
	bestDist := math.Inf(1)
	for _, n := range ng.nodes {
		if n.Door {
			continue
		}
		if d := n.Pos.Dist(p); d < bestDist {
			best, bestDist = n, d
		}
	}
	if best == nil {
		return nil, ErrNoPath
	}
	return best, nil
}

// RandomNode returns a uniformly chosen non-door node.
func (ng *NavGraph) RandomNode(rng *rand.Rand) *Node {
	for range 8 {
		n := ng.nodes[rng.Intn(len(ng.nodes))]
		if !n.Door {
			return n
		}
	}
	n, _ := ng.NearestNode(ng.nodes[rng.Intn(len(ng.nodes))].Pos)
	return n
}
