package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-duel/internal/platform/tui"
)

var flagRecent int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and recent matches",
	Long: `Display the top 5 high scores. With the sqlite backend the most recent
matches and overall statistics are shown as well.

Examples:
  brickduel scores
  brickduel scores --store sqlite --recent 20`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 10, "Number of recent matches to show (sqlite only)")
}

func runScores(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := openStores(cfg.Storage, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	fmt.Println(tui.RenderHighScores(st.scores.LoadHighScores()))

	if st.db == nil || flagRecent <= 0 {
		return nil
	}

	matches, err := st.db.RecentMatches(flagRecent)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(tui.RenderMatches(matches))

	stats, err := st.db.Stats()
	if err != nil {
		return err
	}
	if line := tui.RenderStats(*stats); line != "" {
		fmt.Println()
		fmt.Println(line)
	}
	return nil
}
