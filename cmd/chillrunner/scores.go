package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/chill-runner/internal/config"
	"github.com/vovakirdan/chill-runner/internal/platform/tui"
	"github.com/vovakirdan/chill-runner/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best runs and the stored high score.

Examples:
  chillrunner scores
  chillrunner scores --limit 25
  chillrunner scores --tui
  chillrunner scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse runs in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history (the high score is kept)")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(); err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Println("High Scores - Chillguy Runner")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'chillrunner play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-10s  %-8s  %-6s  %s\n", "Rank", "Score", "Player", "Device", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %-8s  %-6s  %s\n", "----", "-----", "------", "------", "----", "----")
	for i, r := range runs {
		secs := int(r.Duration.Round(time.Second) / time.Second)
		fmt.Printf("  %-4d  %-8d  %-10s  %-8s  %-6s  %s\n",
			i+1, r.Score, r.Player, r.Device,
			fmt.Sprintf("%d:%02d", secs/60, secs%60),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	key := config.DefaultConfig().HighScore.StorageKey
	if doc, err := loadDocument(); err == nil {
		key = doc.Resolve(config.DeviceDesktop, terminalRuntime(doc).Viewport()).HighScore.StorageKey
	}
	if best, err := store.HighScore(key); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}
