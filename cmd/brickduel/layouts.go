package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-duel/internal/games/brickduel"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List the brick layouts",
	Long: `Shows the brick layouts in the order a round cycles through them, with
the number of bricks each one places in the configured arena.`,
	Args: cobra.NoArgs,
	RunE: runLayouts,
}

func runLayouts(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	layouts := brickduel.Layouts()
	if len(layouts) == 0 {
		fmt.Println("No layouts available.")
		return nil
	}

	maxNameLen := len("Name")
	for _, l := range layouts {
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Printf("  %-3s  %-*s  %s\n", "#", maxNameLen, "Name", "Bricks")
	fmt.Printf("  %-3s  %-*s  %s\n", "-", maxNameLen, "----", "------")
	for _, l := range layouts {
		bricks := brickduel.GenerateLayout(l.Index, cfg.Arena, cfg.Bricks)
		fmt.Printf("  %-3d  %-*s  %d\n", l.Index, maxNameLen, l.Name, len(bricks))
	}

	fmt.Println()
	fmt.Printf("Rounds start on layout %d and move on when every brick is gone.\n", max(1, cfg.Gameplay.StartLayout))
	return nil
}
