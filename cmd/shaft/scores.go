package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shaft/internal/config"
	"github.com/vovakirdan/tui-shaft/internal/storage"
)

var (
	flagMode  string
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the deepest runs",
	Long: `Display the deepest runs for a difficulty preset.

Examples:
  shaft scores
  shaft scores --mode hard --limit 20
  shaft scores --mode easy --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagMode, "mode", "normal", "Difficulty preset to show")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded runs for the mode")
}

func runScores(cmd *cobra.Command, _ []string) error {
	mode, ok := config.ParsePreset(flagMode)
	if !ok {
		return fmt.Errorf("unknown mode %q", flagMode)
	}
	if flagDBPath == "" {
		return errors.New("scores are disabled (--db is empty)")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		n, err := store.ClearScores(gameID, string(mode))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Removed %d %s runs.\n", n, mode)
		return nil
	}

	scores, err := store.TopScores(gameID, string(mode), flagLimit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "Deepest Runs - %s\n\n", mode)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'shaft play --difficulty %s' to set the first record!\n", mode)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Depth", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		depth := fmt.Sprintf("%dm", entry.Score)
		fmt.Fprintf(out, "  %-4d  %-10s  %s\n", i+1, depth, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID, string(mode))
	if err == nil && stats.GamesCount > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %dm  Runs: %d  Average: %.0fm\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
