package sim

// DefaultStuckTicks is how long an agent may sit on one tile while trying to
// move before the watchdog fires (one second at 60 Hz).
const DefaultStuckTicks = 60

// Watchdog detects agents that keep a direction but fail to change tile.
// It is the recovery hatch for every agent, separate from steering rules.
type Watchdog struct {
	Timeout int

	last   Coord
	ticks  int
	primed bool
}

// NewWatchdog creates a watchdog with the given timeout in ticks.
func NewWatchdog(timeout int) Watchdog {
	if timeout <= 0 {
		timeout = DefaultStuckTicks
	}
	return Watchdog{Timeout: timeout}
}

// Observe records the agent's tile for this tick. active is false when the
// agent is not supposed to move (stationary, in the house). It returns true
// once the agent has been stuck for longer than Timeout, then rearms.
func (w *Watchdog) Observe(tile Coord, active bool) bool {
	if !w.primed || !active || tile != w.last {
		w.last = tile
		w.ticks = 0
		w.primed = true
		return false
	}
	w.ticks++
	if w.ticks > w.Timeout {
		w.ticks = 0
		return true
	}
	return false
}

// Reset forgets the last observation.
func (w *Watchdog) Reset() {
	w.primed = false
	w.ticks = 0
}
