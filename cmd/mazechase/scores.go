package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/games/mazechase"
	"github.com/vovakirdan/mazechase/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresRuns  bool
	flagScoresClear bool
	flagScoresSim   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and recent runs",
	Long: `Display the top scores, or the most recent runs with their details.

Examples:
  mazechase scores
  mazechase scores --runs --limit 20
  mazechase scores --sim --runs
  mazechase scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagScoresRuns, "runs", false, "Show recent runs instead of top scores")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores and runs")
	scoresCmd.Flags().BoolVar(&flagScoresSim, "sim", false, "Show runs saved by 'mazechase sim --save'")
}

func runScores(_ *cobra.Command, _ []string) error {
	gameID := mazechase.GameID
	if flagScoresSim {
		gameID = simGameID
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	if flagScoresRuns {
		return printRuns(store, gameID)
	}
	return printTopScores(store, gameID)
}

func printTopScores(store *storage.Store, gameID string) error {
	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Maze Chase")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'mazechase play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Average: %.0f  Wins: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.Wins)
	}
	return nil
}

func printRuns(store *storage.Store, gameID string) error {
	runs, err := store.RecentRuns(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-10s  %-8s  %-7s  %-5s  %-6s  %-6s  %s\n",
		"Date", "Player", "Mode", "Score", "Level", "Ghosts", "Deaths", "Result")
	for _, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		mode := r.Difficulty
		if mode == "" {
			mode = "config"
		}
		result := "lost"
		if r.Won {
			result = "won"
		}
		fmt.Printf("  %-16s  %-10s  %-8s  %-7d  %-5d  %-6d  %-6d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), player, mode,
			r.Score, r.Level, r.GhostsEaten, r.Deaths, result)
	}
	return nil
}
