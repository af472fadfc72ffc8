package sim

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// DefaultTileSize is the pixel edge of one tile.
const DefaultTileSize = 20.0

// Options configures a World. Durations are in ticks at 60 Hz.
type Options struct {
	Grid     *Grid
	TileSize float64

	PlayerStart      Coord
	PlayerSpeed      float64
	BoostMultiplier  float64
	BoostTicks       int
	Ghosts           []GhostSpawn
	HouseCenter      Coord // target of eaten ghosts
	HouseExit        Coord // where released ghosts appear
	Waves            []Wave
	FrightenedTicks  int // major pickup
	FrightenedMinor  int // minor pickup
	FlashTicks       int
	FrightenedRepick int // ticks between random frightened targets
	Speed            SpeedConfig
	StuckTicks       int
	Pickups          []PickupRule
	CollisionRadius  float64

	Seed   int64
	Logger *log.Logger
}

// DefaultOptions returns options for g with the arcade tuning. The house is
// assumed to be centered: its middle at (W/2, H/2) and its exit three tiles
// above. Pickup candidates are left empty and resolved by NewWorld to the
// walkable tiles nearest the four corners.
func DefaultOptions(g *Grid) Options {
	cx, cy := 0, 0
	if g != nil {
		cx, cy = g.W/2, g.H/2
	}
	return Options{
		Grid:            g,
		TileSize:        DefaultTileSize,
		PlayerStart:     ClassicPlayerStart,
		PlayerSpeed:     DefaultPlayerSpeed,
		BoostMultiplier: DefaultBoostMultiplier,
		BoostTicks:      DefaultBoostTicks,
		Ghosts: []GhostSpawn{
			{ID: Blinky, Tile: C(cx, cy-3), HouseDelay: 60, Facing: DirLeft},
			{ID: Pinky, Tile: C(cx, cy), InHouse: true, HouseDelay: 120},
			{ID: Inky, Tile: C(cx-2, cy), InHouse: true, HouseDelay: 300},
			{ID: Clyde, Tile: C(cx+2, cy), InHouse: true, HouseDelay: 480},
		},
		HouseCenter:      C(cx, cy),
		HouseExit:        C(cx, cy-3),
		Waves:            ClassicWaves(),
		FrightenedTicks:  DefaultFrightenedTicks,
		FrightenedMinor:  DefaultFrightenedMinorTicks,
		FlashTicks:       DefaultFlashTicks,
		FrightenedRepick: DefaultFrightenedRetarget,
		Speed:            DefaultSpeedConfig(),
		StuckTicks:       DefaultStuckTicks,
		Pickups: []PickupRule{
			{Kind: PickupMajor, Cap: 2, InitialDelay: 300, MinDelay: 600, MaxDelay: 900, Despawn: 600, Warn: 300},
			{Kind: PickupMinor, Cap: 1, InitialDelay: 600, MinDelay: 900, MaxDelay: 1500, Despawn: 480, Warn: 300},
		},
		CollisionRadius: DefaultCollisionRadius,
		Seed:            1,
	}
}

// ClassicOptions returns DefaultOptions over ClassicLayout with its pickup
// spots.
func ClassicOptions() (Options, error) {
	g, err := ParseGrid(ClassicLayout(), ClassicTunnelRow)
	if err != nil {
		return Options{}, fmt.Errorf("sim: classic layout: %w", err)
	}
	opts := DefaultOptions(g)
	opts.Pickups[0].Candidates = ClassicMajorTiles()
	opts.Pickups[1].Candidates = ClassicMinorTiles()
	return opts, nil
}

// World is the whole simulation: one player, the ghosts, the pickups and
// the dots of one level. It is single-threaded; callers serialize access.
type World struct {
	opts    Options
	graph   *NavGraph
	rng     *rand.Rand
	log     *log.Logger
	waves   *WaveScheduler
	pickups *PickupScheduler

	player *Player
	ghosts []*Ghost
	blinky *Ghost

	dots     map[Coord]bool
	dotCount int
	tick     int
	scale    float64
}

// NewWorld validates the options and builds a level. Configuration
// problems are reported as ValidationError or ErrNoPath.
func NewWorld(opts Options) (*World, error) {
	if opts.Grid == nil {
		return nil, ValidationError{Code: CodeEmptyGrid, Message: "no grid"}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.CollisionRadius <= 0 {
		opts.CollisionRadius = DefaultCollisionRadius
	}

	graph, err := BuildGraph(opts.Grid, opts.TileSize)
	if err != nil {
		return nil, fmt.Errorf("sim: build graph: %w", err)
	}
	if err := validate(&opts, graph); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	pickups, err := NewPickupScheduler(opts.Pickups, rng)
	if err != nil {
		return nil, err
	}

	w := &World{
		opts:    opts,
		graph:   graph,
		rng:     rng,
		log:     opts.Logger,
		waves:   NewWaveScheduler(opts.Waves),
		pickups: pickups,
		scale:   1,
	}

	w.player = newPlayer(opts.PlayerStart, DirLeft, opts.PlayerSpeed, opts.BoostMultiplier,
		opts.BoostTicks, opts.StuckTicks, opts.Logger)
	for _, spawn := range opts.Ghosts {
		g := newGhost(spawn, opts.Speed, opts.StuckTicks, opts.Logger)
		if spawn.ID == Blinky {
			w.blinky = g
		}
		w.ghosts = append(w.ghosts, g)
	}

	w.Reset()
	return w, nil
}

func validate(opts *Options, graph *NavGraph) error {
	g := opts.Grid
	walkable := func(c Coord) bool { return g.Passable(c, false) }

	if !walkable(opts.PlayerStart) {
		return ValidationError{Code: CodeBadTile, Message: fmt.Sprintf("player start %v is not walkable", opts.PlayerStart)}
	}
	if !walkable(opts.HouseCenter) || !walkable(opts.HouseExit) {
		return ValidationError{
			Code:    CodeNoHouse,
			Message: fmt.Sprintf("house center %v and exit %v must be walkable", opts.HouseCenter, opts.HouseExit),
		}
	}

	seen := make(map[Identity]bool)
	for _, s := range opts.Ghosts {
		if int(s.ID) >= len(Identities) || seen[s.ID] {
			return ValidationError{Code: CodeBadTile, Message: fmt.Sprintf("ghost %v listed twice or unknown", s.ID)}
		}
		seen[s.ID] = true
		if !walkable(s.Tile) {
			return ValidationError{Code: CodeBadTile, Message: fmt.Sprintf("%s spawn %v is not walkable", s.ID, s.Tile)}
		}
	}

	for i := range opts.Pickups {
		r := &opts.Pickups[i]
		if len(r.Candidates) == 0 {
			r.Candidates = cornerTiles(graph)
		}
		for _, c := range r.Candidates {
			if !walkable(c) {
				return ValidationError{Code: CodeBadTile, Message: fmt.Sprintf("%s pickup tile %v is not walkable", r.Kind, c)}
			}
		}
	}
	return nil
}

// cornerTiles returns the walkable tiles nearest to the four grid corners.
func cornerTiles(graph *NavGraph) []Coord {
	g := graph.Grid()
	corners := []Coord{C(0, 0), C(g.W-1, 0), C(0, g.H-1), C(g.W-1, g.H-1)}
	out := make([]Coord, 0, len(corners))
	for _, c := range corners {
		n, err := graph.NearestNode(graph.Center(c))
		if err != nil {
			continue
		}
		out = append(out, n.Tile)
	}
	return out
}

// Reset restarts the level from scratch: dots, pickups, schedule and the
// progressive ghost speed.
func (w *World) Reset() {
	w.tick = 0
	w.dots = make(map[Coord]bool)
	for _, c := range w.opts.Grid.DotTiles() {
		if c != w.opts.PlayerStart {
			w.dots[c] = true
		}
	}
	w.dotCount = len(w.dots)
	w.pickups.Reset()
	w.resetAgents(true)
}

// ResetAfterDeath puts every agent back on its spawn tile and rewinds the
// schedule. Dots, pickups and the ghosts' progressive speed are kept.
func (w *World) ResetAfterDeath() {
	w.resetAgents(false)
}

func (w *World) resetAgents(full bool) {
	w.waves.Reset()
	w.player.reset(w.graph)
	for _, g := range w.ghosts {
		g.reset(w.graph, w.waves.Current(), full)
		g.speed.SetScale(w.scale)
	}
}

// SetSpeedScale applies a difficulty multiplier to ghost speed.
func (w *World) SetSpeedScale(f float64) {
	if f <= 0 {
		f = 1
	}
	w.scale = f
	for _, g := range w.ghosts {
		g.speed.SetScale(f)
	}
}

// Step advances the world by one tick with the player's requested
// direction and returns what happened. It never fails.
func (w *World) Step(req Dir) []Event {
	var events []Event
	w.tick++

	spawned, expired := w.pickups.Tick()
	for _, p := range spawned {
		events = append(events, Event{Kind: EventPickupSpawned, Pickup: p.Kind, Tile: p.Tile})
	}
	for _, p := range expired {
		events = append(events, Event{Kind: EventPickupExpired, Pickup: p.Kind, Tile: p.Tile})
	}

	w.player.update(w.graph, req)
	events = w.collect(events)

	paused := false
	for _, g := range w.ghosts {
		if m := g.Mode(); m == ModeFrightened || m == ModeEaten {
			paused = true
			break
		}
	}
	if mode, changed := w.waves.Tick(paused); changed {
		w.log.Debug("wave", "index", w.waves.Index(), "mode", mode)
		for _, g := range w.ghosts {
			if g.InHouse() || g.Mode() == ModeFrightened || g.Mode() == ModeEaten {
				continue
			}
			g.SwitchMode(mode)
		}
	}

	env := &ghostEnv{
		graph:       w.graph,
		rng:         w.rng,
		player:      w.player.Tile(),
		playerDir:   w.player.Facing(),
		scheduled:   w.waves.Current(),
		houseCenter: w.opts.HouseCenter,
		houseExit:   w.opts.HouseExit,
		retarget:    w.opts.FrightenedRepick,
	}
	// Blinky's tile from the end of the previous tick, so the pincer target
	// does not depend on update order.
	if w.blinky != nil {
		env.anchor, env.hasAnchor = w.blinky.Tile(), true
	}

	for _, g := range w.ghosts {
		if g.update(env) {
			events = append(events, Event{Kind: EventGhostReleased, Ghost: g.ID, Tile: g.Tile()})
		}
	}

	return append(events, Evaluate(w.player, w.ghosts, w.opts.CollisionRadius)...)
}

// collect eats the dot and pickup under the player.
func (w *World) collect(events []Event) []Event {
	tile := w.player.Tile()

	if w.dots[tile] {
		delete(w.dots, tile)
		events = append(events, Event{Kind: EventDotEaten, Tile: tile})
		if len(w.dots) == 0 {
			events = append(events, Event{Kind: EventLevelCleared, Tile: tile})
		}
	}

	p, ok := w.pickups.Collect(tile)
	if !ok {
		return events
	}
	events = append(events, Event{Kind: EventPickupCollected, Pickup: p.Kind, Tile: tile})

	ticks, buff := w.opts.FrightenedTicks, true
	if p.Kind == PickupMinor {
		ticks, buff = w.opts.FrightenedMinor, false
		w.player.Boost()
	}
	for _, g := range w.ghosts {
		g.Frighten(ticks, buff)
	}
	w.log.Debug("pickup collected", "kind", p.Kind, "tile", tile)
	return events
}

// SpawnPickup forces a pickup of kind onto the board, respecting its cap.
func (w *World) SpawnPickup(kind PickupKind) (Pickup, bool) {
	return w.pickups.TrySpawn(kind)
}

// Graph returns the navigation graph.
func (w *World) Graph() *NavGraph { return w.graph }

// Grid returns the wall map.
func (w *World) Grid() *Grid { return w.opts.Grid }

// Player returns the player agent.
func (w *World) Player() *Player { return w.player }

// Ghosts returns the ghosts in update order.
func (w *World) Ghosts() []*Ghost { return w.ghosts }

// Ghost returns the ghost with the given identity.
func (w *World) Ghost(id Identity) (*Ghost, bool) {
	for _, g := range w.ghosts {
		if g.ID == id {
			return g, true
		}
	}
	return nil, false
}

// Waves returns the shared scatter/chase scheduler.
func (w *World) Waves() *WaveScheduler { return w.waves }

// Pickups returns the live pickups.
func (w *World) Pickups() []Pickup { return w.pickups.Live() }

// HasDot reports whether c still holds a dot.
func (w *World) HasDot(c Coord) bool { return w.dots[c] }

// DotsLeft returns the number of uneaten dots.
func (w *World) DotsLeft() int { return len(w.dots) }

// DotsTotal returns the dots the level started with.
func (w *World) DotsTotal() int { return w.dotCount }

// Tick returns the ticks simulated since the last full reset.
func (w *World) Tick() int { return w.tick }

// FlashTicks returns the frightened warning window.
func (w *World) FlashTicks() int { return w.opts.FlashTicks }

// IsConfigError reports whether err came from invalid world options.
func IsConfigError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve) || errors.Is(err, ErrNoPath)
}
