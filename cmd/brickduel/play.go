package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brick-duel/internal/audio"
	"github.com/vovakirdan/brick-duel/internal/platform/tui"
	"github.com/vovakirdan/brick-duel/internal/session"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on this terminal",
	Long: `Start Brick Duel on this terminal. Both players share the keyboard.

Controls:
  Player 1   A/D move   W launch or fire
  Player 2   ←/→ move   ↑ launch or fire
  Enter      Start / play again
  Esc        Pause in play, back in settings
  S          Settings (from the main menu)
  M          Main menu (from game over, or while paused)
  1 / 2      Toggle sound / music (in settings)
  Q/Ctrl+C   Quit

Examples:
  brickduel play
  brickduel play --difficulty easy
  brickduel play --config ./my-duel.toml --seed 42
  brickduel play --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound and music off")
}

func runPlay(_ *cobra.Command, _ []string) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errNoTTY
	}

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(fd); err == nil {
		width, height = w, h
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagMute {
		cfg.Audio.Sound = false
		cfg.Audio.Music = false
	}

	st, err := openStores(cfg.Storage, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	player := audio.New(cfg.Audio, logger.WithPrefix("audio"))
	if err := player.Start(); err != nil {
		logger.Warn("playing without sound", "err", err)
	}
	defer player.Close()

	sess := session.New(session.Options{
		Config:  cfg,
		Seed:    flagSeed,
		Audio:   player,
		Scores:  st.scores,
		Matches: st.matches,
		Logger:  logger,
	})

	return tui.Run(sess, tui.Options{
		TickRate: flagFPS,
		Width:    width,
		Height:   height,
	})
}
