package sim

import (
	"math/rand"

	"github.com/charmbracelet/log"
)

// Ghost timing defaults in ticks at 60 Hz.
const (
	DefaultFrightenedTicks      = 360
	DefaultFrightenedMinorTicks = 120
	DefaultFlashTicks           = 90
	DefaultFrightenedRetarget   = 30
)

// GhostSpawn describes where and how a ghost enters play.
type GhostSpawn struct {
	ID         Identity
	Tile       Coord
	InHouse    bool
	HouseDelay int // ticks in the house before release
	Facing     Dir
}

// Ghost is one opponent: an Agent driven by a mode state machine.
type Ghost struct {
	ID Identity
	Agent

	mode       Mode
	prevMode   Mode
	modeTicks  int
	inHouse    bool
	houseTicks int
	canReverse bool
	target     Coord

	frightTicks int
	buffAfter   bool

	speed    SpeedModel
	watchdog Watchdog
	spawn    GhostSpawn
	log      *log.Logger
}

// ghostEnv is the read-only world view a ghost sees during its update.
type ghostEnv struct {
	graph       *NavGraph
	rng         *rand.Rand
	player      Coord
	playerDir   Dir
	anchor      Coord
	hasAnchor   bool
	scheduled   Mode
	houseCenter Coord
	houseExit   Coord
	retarget    int
}

func newGhost(spawn GhostSpawn, cfg SpeedConfig, stuck int, logger *log.Logger) *Ghost {
	return &Ghost{
		ID:       spawn.ID,
		speed:    NewSpeedModel(cfg),
		watchdog: NewWatchdog(stuck),
		spawn:    spawn,
		log:      logger.With("ghost", spawn.ID),
	}
}

// Mode returns the current mode.
func (g *Ghost) Mode() Mode { return g.mode }

// PreviousMode returns the mode active before the last transition.
func (g *Ghost) PreviousMode() Mode { return g.prevMode }

// ModeTicks returns the ticks spent in the current mode.
func (g *Ghost) ModeTicks() int { return g.modeTicks }

// InHouse reports whether the ghost is waiting in the house.
func (g *Ghost) InHouse() bool { return g.inHouse }

// HouseTicks returns the ticks spent in the house since the last entry.
func (g *Ghost) HouseTicks() int { return g.houseTicks }

// HouseDelay returns the ticks this ghost waits before leaving the house.
func (g *Ghost) HouseDelay() int { return g.spawn.HouseDelay }

// CanReverse reports whether a one-shot reversal grant is pending.
func (g *Ghost) CanReverse() bool { return g.canReverse }

// Target returns the tile the ghost is steering towards.
func (g *Ghost) Target() Coord { return g.target }

// Speed returns the effective speed in pixels per tick.
func (g *Ghost) Speed() float64 { return g.speed.Speed() }

// Buffed reports whether the post-frightened speed buff is active.
func (g *Ghost) Buffed() bool { return g.speed.Buffed() }

// Progressive returns the progressive speed multiplier.
func (g *Ghost) Progressive() float64 { return g.speed.Progressive() }

// Flashing reports whether a frightened ghost is about to recover.
func (g *Ghost) Flashing(window int) bool {
	return g.mode == ModeFrightened && g.modeTicks > g.frightTicks-window
}

// FrightenedLeft returns the ticks left in frightened mode, or 0.
func (g *Ghost) FrightenedLeft() int {
	if g.mode != ModeFrightened {
		return 0
	}
	return max(0, g.frightTicks-g.modeTicks)
}

// SwitchMode moves the ghost to mode m. Outside the house, any transition
// other than into EATEN reverses the ghost and grants a one-shot reversal at
// the next intersection.
func (g *Ghost) SwitchMode(m Mode) {
	if m == g.mode {
		return
	}
	if m == ModeEaten && g.inHouse {
		return
	}

	g.log.Debug("mode change", "from", g.mode, "to", m)
	g.prevMode = g.mode
	g.mode = m
	g.modeTicks = 0
	g.speed.SetMode(m)

	if !g.inHouse && m != ModeEaten {
		if g.Dir != DirNone {
			g.Reverse()
		}
		g.canReverse = true
	}
}

// Frighten puts the ghost in frightened mode for ticks. A ghost that is
// already frightened has its timer restarted without another reversal.
// It refuses eaten and house-bound ghosts.
func (g *Ghost) Frighten(ticks int, buffAfter bool) bool {
	if g.mode == ModeEaten || g.inHouse {
		return false
	}
	g.frightTicks = ticks
	g.buffAfter = buffAfter
	if g.mode == ModeFrightened {
		g.modeTicks = 0
		return true
	}
	g.SwitchMode(ModeFrightened)
	return true
}

// Eat sends the ghost home. It refuses eaten and house-bound ghosts.
func (g *Ghost) Eat() bool {
	if g.mode == ModeEaten || g.inHouse {
		return false
	}
	g.SwitchMode(ModeEaten)
	g.canReverse = false
	return true
}

// reset puts the ghost back on its spawn tile. full also discards the
// progressive speed and restarts the start debuff.
func (g *Ghost) reset(graph *NavGraph, scheduled Mode, full bool) {
	if full {
		g.speed.ResetAll()
	} else {
		g.speed.ResetTransient()
	}

	g.Place(graph.NodeAt(g.spawn.Tile), g.spawn.Facing)
	g.inHouse = g.spawn.InHouse
	g.houseTicks = 0
	g.canReverse = false
	g.frightTicks = 0
	g.buffAfter = false
	g.watchdog.Reset()

	g.prevMode = ModeScatter
	g.mode = ModeScatter
	if !g.inHouse {
		g.mode = scheduled
	}
	g.modeTicks = 0
	g.speed.SetMode(g.mode)
	g.target = g.spawn.Tile
}

// update runs one tick. It returns true when the ghost left the house.
func (g *Ghost) update(env *ghostEnv) (released bool) {
	g.speed.Tick(g.inHouse)
	defer func() { g.modeTicks++ }()

	if g.inHouse {
		g.houseTicks++
		if g.houseTicks < g.spawn.HouseDelay {
			return false
		}
		g.leaveHouse(env)
		return true
	}

	if g.mode == ModeFrightened && g.modeTicks >= g.frightTicks {
		buff := g.buffAfter
		g.SwitchMode(ModeChase)
		if buff {
			g.speed.StartBuff()
		}
	}

	if g.mode == ModeEaten && g.atHouse(env.houseCenter) {
		g.enterHouse(env)
		return false
	}

	g.retarget(env)

	if !g.Moving() {
		d := ChooseDirection(env.graph, SteeringInput{
			At:         g.Node,
			Current:    g.Dir,
			Target:     g.target,
			Mode:       g.mode,
			CanReverse: g.canReverse,
			AllowDoor:  g.mode == ModeEaten,
		}, env.rng)
		g.Request(d)
		g.canReverse = false
	}

	g.Step(env.graph, g.speed.Speed(), g.mode == ModeEaten)

	if g.watchdog.Observe(g.Tile(), g.Dir != DirNone) {
		g.log.Warn("stuck, forcing reversal", "tile", g.Tile(), "dir", g.Dir, "mode", g.mode)
		g.Reverse()
		g.canReverse = true
	}
	return false
}

func (g *Ghost) retarget(env *ghostEnv) {
	w, h := env.graph.Grid().W, env.graph.Grid().H
	switch g.mode {
	case ModeScatter:
		g.target = ScatterCorner(g.ID, w, h)
	case ModeChase:
		g.target = ChaseTarget(g.ID, TargetContext{
			Self:      g.Tile(),
			Player:    env.player,
			PlayerDir: env.playerDir,
			Anchor:    env.anchor,
			HasAnchor: env.hasAnchor,
			W:         w,
			H:         h,
		})
	case ModeFrightened:
		if env.retarget <= 0 || g.modeTicks%env.retarget == 0 {
			g.target = env.graph.RandomNode(env.rng).Tile
		}
	case ModeEaten:
		g.target = env.houseCenter
	}
}

func (g *Ghost) atHouse(center Coord) bool {
	t := g.Tile()
	dx, dy := t.X-center.X, t.Y-center.Y
	return dx >= -1 && dx <= 1 && dy >= -2 && dy <= 2
}

func (g *Ghost) enterHouse(env *ghostEnv) {
	g.log.Debug("back in house")
	g.prevMode = g.mode
	g.mode = ModeScatter
	g.modeTicks = 0
	g.speed.SetMode(ModeScatter)
	g.inHouse = true
	g.houseTicks = 0
	g.canReverse = false
	g.Place(env.graph.NodeAt(env.houseCenter), DirNone)
	g.watchdog.Reset()
}

func (g *Ghost) leaveHouse(env *ghostEnv) {
	g.inHouse = false
	g.houseTicks = 0
	g.canReverse = false
	g.Place(env.graph.NodeAt(env.houseExit), DirLeft)
	g.watchdog.Reset()

	// Adopt the schedule without the reversal a mode switch would cause.
	g.prevMode = g.mode
	g.mode = env.scheduled
	g.modeTicks = 0
	g.speed.SetMode(g.mode)
	g.log.Info("released", "mode", g.mode)
}
