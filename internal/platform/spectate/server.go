// Package spectate runs a headless maze chase driven by the autopilot and
// streams its snapshots to browsers and scripts over HTTP and websockets.
package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/matryer/way"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase"
)

// Config holds the spectator server settings.
type Config struct {
	// Address is the host:port to listen on.
	Address string

	// TickRate is the simulation rate.
	TickRate int

	// FrameEvery publishes one live frame every N ticks.
	FrameEvery int

	// RestartAfter is how many ticks the final screen stays up before a
	// new run starts.
	RestartAfter int

	// Seed of the first run; each restart advances it.
	Seed int64

	// Game overrides the loaded config when non-nil.
	Game *config.MazeChaseConfig

	Logger *log.Logger
}

// DefaultConfig returns the settings used by the watch command.
func DefaultConfig() Config {
	return Config{
		Address:      ":8080",
		TickRate:     60,
		FrameEvery:   2,
		RestartAfter: 180,
		Seed:         1,
	}
}

// Server owns the headless game, the hub and the HTTP router.
type Server struct {
	cfg    Config
	hub    *Hub
	router *way.Router
	logger *log.Logger

	mu     sync.RWMutex
	game   *mazechase.Game
	pilot  *mazechase.Autopilot
	ticks  int
	idle   int // ticks spent on the final screen
	runs   int
	latest []byte
}

// New builds a server and resets its first run.
func New(cfg Config) (*Server, error) {
	def := DefaultConfig()
	if cfg.TickRate <= 0 {
		cfg.TickRate = def.TickRate
	}
	if cfg.FrameEvery <= 0 {
		cfg.FrameEvery = def.FrameEvery
	}
	if cfg.RestartAfter < 0 {
		cfg.RestartAfter = def.RestartAfter
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	s := &Server{
		cfg:    cfg,
		hub:    NewHub(cfg.Logger),
		logger: cfg.Logger,
		pilot:  mazechase.NewAutopilot(),
	}
	if cfg.Game != nil {
		s.game = mazechase.NewWithConfig(*cfg.Game)
	} else {
		s.game = mazechase.New()
	}
	s.game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: cfg.TickRate, Seed: cfg.Seed})
	if err := s.game.Err(); err != nil {
		return nil, fmt.Errorf("spectate: %w", err)
	}
	s.runs = 1
	if err := s.publish(); err != nil {
		return nil, err
	}

	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", "/snapshot", s.handleSnapshot)
	s.router.HandleFunc("GET", "/stats", s.handleStats)
	s.router.HandleFunc("GET", "/live", s.hub.serve)
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Hub returns the broadcast hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Step advances the game one tick, restarting finished runs, and publishes
// a frame when one is due.
func (s *Server) Step() error {
	s.mu.Lock()
	frame := s.pilot.Frame(s.game)
	if s.game.Over() {
		if s.idle++; s.idle > s.cfg.RestartAfter {
			st := s.game.State()
			s.logger.Info("run finished", "run", s.runs, "score", st.Score, "level", st.Level, "won", st.Won)
			frame.Set(core.ActionRestart)
			s.idle = 0
			s.runs++
		}
	}
	s.game.Step(frame)
	s.ticks++
	due := s.ticks%s.cfg.FrameEvery == 0
	s.mu.Unlock()

	if !due {
		return nil
	}
	return s.publish()
}

// publish encodes the current snapshot and hands it to the hub.
func (s *Server) publish() error {
	s.mu.RLock()
	snap := s.game.Snapshot(true)
	s.mu.RUnlock()

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("spectate: encode snapshot: %w", err)
	}

	s.mu.Lock()
	s.latest = data
	s.mu.Unlock()

	s.hub.Publish(data)
	return nil
}

// Run drives the game at the configured rate until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(s.cfg.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.Step(); err != nil {
				return err
			}
		}
	}
}

// ListenAndServe runs the hub, the game loop and the HTTP server until
// ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go s.hub.Run(ctx)

	loopErr := make(chan error, 1)
	go func() { loopErr <- s.Run(ctx) }()

	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		//nolint:errcheck // shutdown errors only matter to the listener below
		srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("spectator server listening", "address", s.cfg.Address, "tick_rate", s.cfg.TickRate)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("spectate: %w", err)
	}

	cancel()
	return <-loopErr
}

func (s *Server) handleSnapshot(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	data := s.latest
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck // client went away
	w.Write(data)
}

// Stats summarizes the current run.
type Stats struct {
	Run      int             `json:"run"`
	Seed     int64           `json:"seed"`
	Score    int             `json:"score"`
	Level    int             `json:"level"`
	Lives    int             `json:"lives"`
	Phase    mazechase.Phase `json:"phase"`
	Counters mazechase.Stats `json:"counters"`
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	st := s.game.State()
	out := Stats{
		Run:      s.runs,
		Seed:     s.game.Seed(),
		Score:    st.Score,
		Level:    st.Level,
		Lives:    st.Lives,
		Phase:    s.game.Phase(),
		Counters: s.game.Stats(),
	}
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		s.logger.Debug("stats write failed", "error", err)
	}
}
