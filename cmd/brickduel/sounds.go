package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-duel/internal/audio"
	"github.com/vovakirdan/brick-duel/internal/config"
)

var flagSoundsOut string

var soundsCmd = &cobra.Command{
	Use:   "sounds",
	Short: "Export the built-in sounds as WAV files",
	Long: `Writes the generated sound effects and music loops as WAV files, laid
out the way the game looks for them (sounds/*.wav and music/*.wav). Edit or
replace any file and the game plays it instead of the built-in tone.

Examples:
  brickduel sounds                       # Write into the configured asset_dir
  brickduel sounds --out ./assets`,
	Args: cobra.NoArgs,
	RunE: runSounds,
}

func init() {
	soundsCmd.Flags().StringVar(&flagSoundsOut, "out", "", "Output directory (default: audio.asset_dir)")
}

func runSounds(_ *cobra.Command, _ []string) error {
	dir := flagSoundsOut
	if dir == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		dir = cfg.Audio.AssetDir
	}
	dir, err := config.ExpandHome(dir)
	if err != nil {
		return err
	}

	paths, err := audio.ExportWAV(dir)
	for _, p := range paths {
		fmt.Println(p)
	}
	return err
}
