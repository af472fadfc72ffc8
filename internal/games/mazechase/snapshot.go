package mazechase

import "github.com/vovakirdan/mazechase/internal/games/mazechase/sim"

// Snapshot captures the complete game state for determinism testing and
// spectators.
type Snapshot struct {
	Tick   uint64        `json:"tick"`
	Level  int           `json:"level"`
	Score  int           `json:"score"`
	Lives  int           `json:"lives"`
	Phase  Phase         `json:"phase"`
	Paused bool          `json:"paused"`
	World  *sim.Snapshot `json:"world,omitempty"`
}

// Snapshot returns the current game snapshot. withDots includes the
// remaining dot tiles.
func (g *Game) Snapshot(withDots bool) Snapshot {
	s := Snapshot{
		Tick:   g.tick,
		Level:  g.level,
		Score:  g.score,
		Lives:  g.lives,
		Phase:  g.phase,
		Paused: g.paused,
	}
	if g.world != nil {
		ws := g.world.Snapshot(withDots)
		s.World = &ws
	}
	return s
}
