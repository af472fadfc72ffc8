// mazechase is a terminal maze chase: four ghosts with their own targeting
// rules hunt the player through a classic maze.
//
// Usage:
//
//	mazechase list              - List available games
//	mazechase play              - Play a run
//	mazechase menu              - Pick a difficulty interactively
//	mazechase serve             - Start SSH server for remote play
//	mazechase scores            - Show high scores and recent runs
//	mazechase sim               - Run headless autopilot games
//	mazechase watch             - Stream an autopilot game over websockets
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.mazechase/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/games/mazechase"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazechase",
	Short: "Maze Chase - dodge four ghosts in your terminal",
	Long: `Maze Chase is a terminal maze game. Eat every dot while four ghosts
hunt you, each with its own way of choosing where to go.

Available commands:
  list     - Show all available games
  play     - Play a run directly
  menu     - Pick a difficulty, play, repeat
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  sim      - Run headless autopilot games
  watch    - Stream an autopilot game to spectators

Examples:
  mazechase play --difficulty hard
  mazechase menu
  mazechase serve --ssh :2222
  mazechase sim --runs 20 --seed 1
  mazechase watch --addr :8080`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mazechase/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(watchCmd)
}

// newLogger builds a logger at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// applyGameFlags routes --config and --difficulty to the game package.
func applyGameFlags(configPath, difficulty string) error {
	if difficulty != "" {
		if _, err := config.ParsePreset(difficulty); err != nil {
			return err
		}
	}
	mazechase.SetConfigPath(configPath)
	mazechase.SetDifficultyPreset(difficulty)
	return nil
}
