package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase"
	"github.com/vovakirdan/mazechase/internal/storage"
)

// simGameID keeps autopilot runs off the player leaderboard.
const simGameID = mazechase.GameID + "-sim"

var (
	flagSimRuns  int
	flagSimTicks int
	flagSimJSON  bool
	flagSimSave  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless autopilot games",
	Long: `Play games with the built-in autopilot as fast as possible and
print a summary of every run. Useful for tuning configs and presets.

Run i uses seed --seed + i, so a fixed --seed repeats exactly.

Examples:
  mazechase sim
  mazechase sim --runs 50 --seed 1 --difficulty hard
  mazechase sim --config ./my-maze.yaml --json
  mazechase sim --runs 10 --save`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of games to play")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 216000, "Tick limit per game")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	simCmd.Flags().BoolVar(&flagSimJSON, "json", false, "Print one JSON record per run")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Save runs to the scores database")
}

// simResult is one finished autopilot game.
type simResult struct {
	Run      int             `json:"run"`
	Seed     int64           `json:"seed"`
	Score    int             `json:"score"`
	Level    int             `json:"level"`
	Won      bool            `json:"won"`
	Finished bool            `json:"finished"`
	Phase    mazechase.Phase `json:"phase"`
	Stats    mazechase.Stats `json:"stats"`
}

// playAutopilot runs one game to its end or to maxTicks.
func playAutopilot(game *mazechase.Game, runtime core.RuntimeConfig, maxTicks int) (simResult, error) {
	pilot := mazechase.NewAutopilot()
	game.Reset(runtime)
	if err := game.Err(); err != nil {
		return simResult{}, err
	}

	for t := 0; t < maxTicks && !game.Over(); t++ {
		game.Step(pilot.Frame(game))
	}

	st := game.State()
	return simResult{
		Seed:     runtime.Seed,
		Score:    st.Score,
		Level:    st.Level,
		Won:      st.Won,
		Finished: game.Over(),
		Phase:    game.Phase(),
		Stats:    game.Stats(),
	}, nil
}

func runSim(_ *cobra.Command, _ []string) error {
	if flagSimRuns <= 0 {
		return fmt.Errorf("--runs must be positive, got %d", flagSimRuns)
	}
	if err := applyGameFlags(flagConfig, flagDifficulty); err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr, "mazechase-sim")
	if err != nil {
		return err
	}
	mazechase.SetLogger(logger)

	var store *storage.Store
	if flagSimSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("opening scores database: %w", err)
		}
		defer store.Close()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	preset := config.DifficultyPreset(mazechase.DifficultyPresetName())
	enc := json.NewEncoder(os.Stdout)

	var total, wins int
	for i := range flagSimRuns {
		game := mazechase.NewWithPreset(preset)
		runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed + int64(i)}

		res, err := playAutopilot(game, runtime, flagSimTicks)
		if err != nil {
			return fmt.Errorf("run %d: %w", i+1, err)
		}
		res.Run = i + 1
		total += res.Score
		if res.Won {
			wins++
		}

		if store != nil && res.Finished {
			rec := game.Record()
			rec.GameID = simGameID
			rec.Player = "autopilot"
			if _, err := store.SaveRun(rec); err != nil {
				logger.Error("save run failed", "run", res.Run, "err", err)
			}
		}

		if flagSimJSON {
			if err := enc.Encode(res); err != nil {
				return err
			}
			continue
		}
		printSimResult(res)
	}

	if !flagSimJSON && flagSimRuns > 1 {
		fmt.Println()
		fmt.Printf("Runs: %d  Wins: %d  Average score: %.0f\n",
			flagSimRuns, wins, float64(total)/float64(flagSimRuns))
	}
	return nil
}

func printSimResult(r simResult) {
	status := string(r.Phase)
	if !r.Finished {
		status = "tick limit"
	}
	fmt.Printf("Run %-3d seed %-20d score %-7d level %-3d dots %-5d ghosts %-3d deaths %d  (%s)\n",
		r.Run, r.Seed, r.Score, r.Level, r.Stats.Dots, r.Stats.GhostsEaten, r.Stats.Deaths, status)
}
