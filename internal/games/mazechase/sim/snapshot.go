package sim

// AgentView is the render view of one agent.
type AgentView struct {
	Tile Coord `json:"tile"`
	Pos  Vec   `json:"pos"`
	Dir  Dir   `json:"dir"`
}

// GhostView adds the ghost state a renderer needs for sprite selection.
type GhostView struct {
	AgentView
	ID       Identity `json:"id"`
	Mode     Mode     `json:"mode"`
	InHouse  bool     `json:"in_house"`
	Flashing bool     `json:"flashing"`
	Buffed   bool     `json:"buffed"`
	Target   Coord    `json:"target"`
}

// PlayerView adds the boost state.
type PlayerView struct {
	AgentView
	Boosted bool `json:"boosted"`
}

// PickupView is a live pickup with its expiry hint.
type PickupView struct {
	Kind    PickupKind `json:"kind"`
	Tile    Coord      `json:"tile"`
	Flicker bool       `json:"flicker"`
}

// Snapshot is a read-only copy of the world after a tick.
type Snapshot struct {
	Tick     int          `json:"tick"`
	Wave     Mode         `json:"wave"`
	WaveStep int          `json:"wave_step"`
	Player   PlayerView   `json:"player"`
	Ghosts   []GhostView  `json:"ghosts"`
	Pickups  []PickupView `json:"pickups"`
	DotsLeft int          `json:"dots_left"`
	Dots     []Coord      `json:"dots,omitempty"`
}

// Snapshot captures the current state. withDots includes the remaining dot
// tiles, in row-major order.
func (w *World) Snapshot(withDots bool) Snapshot {
	s := Snapshot{
		Tick:     w.tick,
		Wave:     w.waves.Current(),
		WaveStep: w.waves.Index(),
		Player: PlayerView{
			AgentView: viewOf(&w.player.Agent),
			Boosted:   w.player.Boosted(),
		},
		Ghosts:   make([]GhostView, 0, len(w.ghosts)),
		DotsLeft: len(w.dots),
	}

	for _, g := range w.ghosts {
		s.Ghosts = append(s.Ghosts, GhostView{
			AgentView: viewOf(&g.Agent),
			ID:        g.ID,
			Mode:      g.Mode(),
			InHouse:   g.InHouse(),
			Flashing:  g.Flashing(w.opts.FlashTicks),
			Buffed:    g.Buffed(),
			Target:    g.Target(),
		})
	}

	for _, p := range w.pickups.Live() {
		s.Pickups = append(s.Pickups, PickupView{Kind: p.Kind, Tile: p.Tile, Flicker: p.Flicker()})
	}

	if withDots {
		for _, c := range w.opts.Grid.DotTiles() {
			if w.dots[c] {
				s.Dots = append(s.Dots, c)
			}
		}
	}
	return s
}

func viewOf(a *Agent) AgentView {
	return AgentView{Tile: a.Tile(), Pos: a.Pos, Dir: a.Dir}
}
