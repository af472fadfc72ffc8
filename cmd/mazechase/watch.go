package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/platform/spectate"
)

var (
	flagWatchAddr    string
	flagFrameEvery   int
	flagRestartAfter int
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream an autopilot game to spectators",
	Long: `Run an autopilot game forever and serve it over HTTP.

Endpoints:
  GET /snapshot  - Latest frame as JSON
  GET /stats     - Run counters as JSON
  GET /live      - Websocket stream of frames

Examples:
  mazechase watch
  mazechase watch --addr :9000 --frame-every 4
  mazechase watch --difficulty hard --seed 42`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	def := spectate.DefaultConfig()
	watchCmd.Flags().StringVar(&flagWatchAddr, "addr", def.Address, "HTTP listen address")
	watchCmd.Flags().IntVar(&flagFrameEvery, "frame-every", def.FrameEvery, "Publish a frame every N ticks")
	watchCmd.Flags().IntVar(&flagRestartAfter, "restart-after", def.RestartAfter, "Ticks to hold the final screen before a new run")
	watchCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	watchCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runWatch(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(flagConfig, flagDifficulty); err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr, "mazechase-watch")
	if err != nil {
		return err
	}

	cfg := spectate.DefaultConfig()
	cfg.Address = flagWatchAddr
	cfg.TickRate = flagFPS
	cfg.FrameEvery = flagFrameEvery
	cfg.RestartAfter = flagRestartAfter
	cfg.Logger = logger
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}

	server, err := spectate.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Streaming on http://localhost%s/live\n", flagWatchAddr)
	fmt.Println("Press Ctrl+C to stop")
	return server.ListenAndServe(ctx)
}
