package sim

// Identity is a ghost's fixed personality.
type Identity uint8

const (
	Blinky Identity = iota // direct chaser
	Pinky                  // ambusher
	Inky                   // pincer, reads Blinky
	Clyde                  // shy
)

// Identities lists every ghost in update order.
var Identities = [...]Identity{Blinky, Pinky, Inky, Clyde}

// String returns the ghost name.
func (id Identity) String() string {
	switch id {
	case Blinky:
		return "blinky"
	case Pinky:
		return "pinky"
	case Inky:
		return "inky"
	case Clyde:
		return "clyde"
	default:
		return "unknown"
	}
}

// MarshalText encodes the identity by name.
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// Strategy is a chase targeting rule.
type Strategy uint8

const (
	StrategyDirect Strategy = iota
	StrategyAmbush
	StrategyPincer
	StrategyShy
)

func (s Strategy) String() string {
	switch s {
	case StrategyDirect:
		return "direct"
	case StrategyAmbush:
		return "ambush"
	case StrategyPincer:
		return "pincer"
	case StrategyShy:
		return "shy"
	default:
		return "unknown"
	}
}

// Lookahead and shyness constants, in tiles.
const (
	AmbushLookahead = 4
	PincerLookahead = 2
	ShyRadius       = 8.0
)

type personality struct {
	strategy  Strategy
	lookahead int
	corner    func(w, h int) Coord
}

// personalities is the closed targeting table. Indexed by Identity.
var personalities = [...]personality{
	Blinky: {StrategyDirect, 0, func(w, _ int) Coord { return C(w-2, 0) }},
	Pinky:  {StrategyAmbush, AmbushLookahead, func(_, _ int) Coord { return C(2, 0) }},
	Inky:   {StrategyPincer, PincerLookahead, func(w, h int) Coord { return C(w-1, h-1) }},
	Clyde:  {StrategyShy, 0, func(_, h int) Coord { return C(0, h-1) }},
}

// StrategyOf returns the chase strategy for an identity.
func StrategyOf(id Identity) Strategy {
	return personalities[id].strategy
}

// ScatterCorner returns the fixed corner an identity heads to in scatter.
func ScatterCorner(id Identity, w, h int) Coord {
	return personalities[id].corner(w, h)
}

// TargetContext is the read-only input of a chase strategy.
type TargetContext struct {
	Self      Coord
	Player    Coord
	PlayerDir Dir
	// Anchor is Blinky's tile as of the previous tick. HasAnchor is false
	// when Blinky is not in play.
	Anchor    Coord
	HasAnchor bool
	W, H      int
}

// ChaseTarget computes the chase-mode target tile for an identity.
func ChaseTarget(id Identity, ctx TargetContext) Coord {
	p := personalities[id]
	switch p.strategy {
	case StrategyAmbush:
		return Ahead(ctx.Player, ctx.PlayerDir, p.lookahead)

	case StrategyPincer:
		pivot := Ahead(ctx.Player, ctx.PlayerDir, p.lookahead)
		anchor := ctx.Anchor
		if !ctx.HasAnchor {
			anchor = ScatterCorner(Blinky, ctx.W, ctx.H)
		}
		return C(2*pivot.X-anchor.X, 2*pivot.Y-anchor.Y)

	case StrategyShy:
		if ctx.Self.Dist(ctx.Player) > ShyRadius {
			return ctx.Player
		}
		return C(0, ctx.H-1)

	default:
		return ctx.Player
	}
}

// Ahead returns the tile n steps ahead of c in direction d. Facing up also
// shifts left by n, matching the arcade overflow bug.
func Ahead(c Coord, d Dir, n int) Coord {
	t := c.Step(d, n)
	if d == DirUp {
		t = t.Add(-n, 0)
	}
	return t
}
