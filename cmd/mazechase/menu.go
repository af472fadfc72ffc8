package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/games/mazechase"
	"github.com/vovakirdan/mazechase/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, play, and come back for another run",
	Long: `Start Maze Chase in interactive menu mode.

Use arrow keys or j/k to pick a difficulty and Enter to play.
Press Esc while paused or after game over to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - High scores and recent runs
  Q            - Quit

Examples:
  mazechase menu
  mazechase menu --fps 30
  mazechase menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(flagConfig, flagDifficulty); err != nil {
		return err
	}

	logger, closeLog, err := playLogger()
	if err != nil {
		return err
	}
	defer closeLog()
	mazechase.SetLogger(logger)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	current := config.DifficultyPreset(mazechase.DifficultyPresetName())

	for {
		result, err := tui.RunMenu(store, cfg, current)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		current = result.Preset
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(mazechase.NewWithPreset(current), store, cfg, logger)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !back {
			return nil
		}
	}
}
