// Package mazechase adapts the ghost simulation to the arcade platform:
// scoring, lives, levels, input and terminal rendering.
package mazechase

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/sim"
	"github.com/vovakirdan/mazechase/internal/registry"
	"github.com/vovakirdan/mazechase/internal/storage"
)

// GameID is the registry and score table key.
const GameID = "mazechase"

// Phase is the run state around the simulation.
type Phase string

const (
	PhaseReady    Phase = "ready"
	PhasePlaying  Phase = "playing"
	PhaseDying    Phase = "dying"
	PhaseCleared  Phase = "level_cleared"
	PhaseGameOver Phase = "game_over"
	PhaseWon      Phase = "won"
)

// clearedTicks is the pause after the last dot of a maze.
const clearedTicks = 90

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI or menu
var difficultyPreset config.DifficultyPreset

// logger receives simulation logs; silent unless SetLogger is called.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// DifficultyPresetName returns the active preset, or "" for the config as loaded.
func DifficultyPresetName() string {
	return string(difficultyPreset)
}

// SetLogger routes simulation logs to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Stats counts what happened during a run.
type Stats struct {
	Dots        int `json:"dots"`
	Majors      int `json:"majors"`
	Minors      int `json:"minors"`
	GhostsEaten int `json:"ghosts_eaten"`
	Deaths      int `json:"deaths"`
	Ticks       int `json:"ticks"`
}

// Game implements registry.Game on top of sim.World.
type Game struct {
	override   *config.MazeChaseConfig
	preset     config.DifficultyPreset
	ownPreset  bool
	cfg        config.MazeChaseConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig
	log        *log.Logger

	world      *sim.World
	err        error
	phase      Phase
	phaseTicks int
	paused     bool
	steer      sim.Dir
	events     []sim.Event

	tick  uint64
	score int
	lives int
	level int
	stats Stats
}

// New creates a game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with a fixed config, ignoring the config
// path and difficulty preset.
func NewWithConfig(cfg config.MazeChaseConfig) *Game {
	return &Game{override: &cfg}
}

// NewWithPreset creates a game that loads its config on Reset and applies
// preset instead of the package-wide one. An empty preset keeps the config
// as loaded.
func NewWithPreset(preset config.DifficultyPreset) *Game {
	return &Game{preset: preset, ownPreset: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return GameID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Maze Chase" }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = logger

	if g.override != nil {
		g.cfg = *g.override
	} else {
		cfg, err := config.LoadMazeChase(configPath)
		if err != nil {
			g.log.Warn("config rejected, using defaults", "path", configPath, "err", err)
			cfg = config.DefaultMazeChaseConfig()
		}
		if p := g.Preset(); p != "" {
			config.ApplyMazeChasePreset(&cfg, p)
		}
		g.cfg = cfg
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.tick = 0
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.level = 1
	g.stats = Stats{}
	g.paused = false
	g.err = nil

	g.startLevel()
}

// startLevel builds a fresh world for the current level.
func (g *Game) startLevel() {
	progress := config.Progress{Level: g.level, Score: g.score, Ticks: int(g.tick)}

	cfg := g.cfg
	cfg.Timings.FrightenedTicks = g.difficulty.FrightenedTicks(cfg.Timings.FrightenedTicks, progress)

	seed := g.runtime.Seed + int64(g.level-1)
	opts, err := WorldOptions(cfg, seed, g.log)
	if err == nil {
		g.world, err = sim.NewWorld(opts)
	}
	if err != nil {
		g.log.Error("level failed to start", "level", g.level, "err", err)
		g.err = err
		g.world = nil
		g.setPhase(PhaseGameOver, 0)
		return
	}

	g.world.SetSpeedScale(g.difficulty.Speed(progress))
	g.steer = sim.DirNone
	g.log.Info("level start", "level", g.level, "seed", seed, "dots", g.world.DotsTotal())
	g.setPhase(PhaseReady, g.cfg.Gameplay.ReadyTicks)
}

func (g *Game) setPhase(p Phase, ticks int) {
	g.phase = p
	g.phaseTicks = ticks
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if in.Has(core.ActionRestart) && g.Over() {
		g.runtime.Seed++
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}
	if g.Over() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if d := steerFrom(in); d != sim.DirNone {
		g.steer = d
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	switch g.phase {
	case PhaseReady:
		if g.phaseTicks--; g.phaseTicks <= 0 {
			g.setPhase(PhasePlaying, 0)
		}
	case PhaseDying:
		if g.phaseTicks--; g.phaseTicks <= 0 {
			g.afterDeath()
		}
	case PhaseCleared:
		if g.phaseTicks--; g.phaseTicks <= 0 {
			g.afterClear()
		}
	case PhasePlaying:
		g.stats.Ticks++
		g.events = append(g.events, g.world.Step(g.steer)...)
		g.steer = sim.DirNone
		g.apply(g.events)
	}

	return core.StepResult{State: g.State()}
}

// steerFrom maps the frame's movement action to a direction request.
func steerFrom(in core.InputFrame) sim.Dir {
	switch {
	case in.Has(core.ActionUp):
		return sim.DirUp
	case in.Has(core.ActionDown):
		return sim.DirDown
	case in.Has(core.ActionLeft):
		return sim.DirLeft
	case in.Has(core.ActionRight):
		return sim.DirRight
	}
	return sim.DirNone
}

// apply scores one tick of simulation events.
func (g *Game) apply(events []sim.Event) {
	for _, e := range events {
		switch e.Kind {
		case sim.EventDotEaten:
			g.score += g.cfg.Scoring.Dot
			g.stats.Dots++
		case sim.EventPickupCollected:
			if e.Pickup == sim.PickupMajor {
				g.score += g.cfg.Scoring.Major
				g.stats.Majors++
			} else {
				g.score += g.cfg.Scoring.Minor
				g.stats.Minors++
			}
		case sim.EventGhostCaught:
			g.score += g.cfg.Scoring.Ghost
			g.stats.GhostsEaten++
			g.log.Debug("ghost eaten", "ghost", e.Ghost, "tile", e.Tile)
		case sim.EventLevelCleared:
			g.log.Info("level cleared", "level", g.level, "score", g.score)
			g.setPhase(PhaseCleared, clearedTicks)
		case sim.EventPlayerCaught:
			if g.phase == PhaseCleared {
				continue
			}
			g.lives--
			g.stats.Deaths++
			g.log.Info("player caught", "ghost", e.Ghost, "lives", g.lives)
			g.setPhase(PhaseDying, g.cfg.Gameplay.DeathTicks)
		}
	}
}

func (g *Game) afterDeath() {
	if g.lives <= 0 {
		g.log.Info("game over", "score", g.score, "level", g.level)
		g.setPhase(PhaseGameOver, 0)
		return
	}
	g.world.ResetAfterDeath()
	g.steer = sim.DirNone
	g.setPhase(PhaseReady, g.cfg.Gameplay.ReadyTicks)
}

func (g *Game) afterClear() {
	if g.level >= g.cfg.Gameplay.Levels {
		g.log.Info("run won", "score", g.score)
		g.setPhase(PhaseWon, 0)
		return
	}
	g.level++
	g.startLevel()
}

// Over reports whether the run has ended.
func (g *Game) Over() bool {
	return g.phase == PhaseGameOver || g.phase == PhaseWon
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.level,
		Won:      g.phase == PhaseWon,
		GameOver: g.Over(),
		Paused:   g.paused,
	}
}

// Phase returns the current run phase.
func (g *Game) Phase() Phase { return g.phase }

// Stats returns the run counters.
func (g *Game) Stats() Stats { return g.stats }

// World returns the current level's simulation, or nil after a config error.
func (g *Game) World() *sim.World { return g.world }

// Events returns the simulation events of the last tick.
func (g *Game) Events() []sim.Event { return g.events }

// Err returns the error that stopped the level from starting, if any.
func (g *Game) Err() error { return g.err }

// Config returns the config in effect.
func (g *Game) Config() config.MazeChaseConfig { return g.cfg }

// Preset returns the difficulty preset applied on Reset.
func (g *Game) Preset() config.DifficultyPreset {
	if g.ownPreset || g.override != nil {
		return g.preset
	}
	return difficultyPreset
}

// Seed returns the seed of the current run.
func (g *Game) Seed() int64 { return g.runtime.Seed }

// Record summarizes the run for the score store.
func (g *Game) Record() storage.Run {
	return storage.Run{
		GameID:      GameID,
		Difficulty:  string(g.Preset()),
		Seed:        g.runtime.Seed,
		Score:       g.score,
		Level:       g.level,
		Won:         g.phase == PhaseWon,
		Dots:        g.stats.Dots,
		Majors:      g.stats.Majors,
		Minors:      g.stats.Minors,
		GhostsEaten: g.stats.GhostsEaten,
		Deaths:      g.stats.Deaths,
		Ticks:       g.stats.Ticks,
	}
}
