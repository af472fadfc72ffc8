package sim

import "github.com/charmbracelet/log"

// Player defaults at 60 Hz with 20 px tiles.
const (
	DefaultPlayerSpeed     = 1.733
	DefaultBoostMultiplier = 2.0
	DefaultBoostTicks      = 300
	DefaultCollisionRadius = 12.0
)

// Player is the user-controlled agent. Direction requests are queued and
// applied at the next node where a neighbor exists that way.
type Player struct {
	Agent

	base       float64
	boostMul   float64
	boostTicks int
	boostLeft  int

	start    Coord
	facing   Dir
	watchdog Watchdog
	log      *log.Logger
}

func newPlayer(start Coord, facing Dir, base, boostMul float64, boostTicks, stuck int, logger *log.Logger) *Player {
	return &Player{
		base:       base,
		boostMul:   boostMul,
		boostTicks: boostTicks,
		start:      start,
		facing:     facing,
		watchdog:   NewWatchdog(stuck),
		log:        logger.With("agent", "player"),
	}
}

// Speed returns the effective speed in pixels per tick.
func (p *Player) Speed() float64 {
	if p.boostLeft > 0 {
		return p.base * p.boostMul
	}
	return p.base
}

// Boost starts or refreshes the speed boost.
func (p *Player) Boost() {
	p.boostLeft = p.boostTicks
}

// Boosted reports whether the speed boost is active.
func (p *Player) Boosted() bool {
	return p.boostLeft > 0
}

// BoostLeft returns the remaining boost ticks.
func (p *Player) BoostLeft() int {
	return p.boostLeft
}

// Facing returns the direction used by the ambush strategies: the current
// direction, or the last one while stationary.
func (p *Player) Facing() Dir {
	if p.Dir != DirNone {
		return p.Dir
	}
	return p.facing
}

func (p *Player) reset(graph *NavGraph) {
	p.Place(graph.NodeAt(p.start), DirNone)
	p.boostLeft = 0
	p.watchdog.Reset()
}

// update applies the request and advances one tick. Requests into walls
// stay queued and are otherwise ignored.
func (p *Player) update(graph *NavGraph, req Dir) {
	if req != DirNone {
		p.Request(req)
	}

	p.Step(graph, p.Speed(), false)
	if p.Dir != DirNone {
		p.facing = p.Dir
	}

	if p.boostLeft > 0 {
		p.boostLeft--
	}

	if p.watchdog.Observe(p.Tile(), p.Dir != DirNone) {
		p.log.Warn("stuck, forcing reversal", "tile", p.Tile(), "dir", p.Dir)
		p.Reverse()
	}
}
