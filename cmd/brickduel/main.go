// brickduel is a two-player split-screen brick breaker for the terminal.
//
// Usage:
//
//	brickduel play           - Play on this terminal
//	brickduel serve          - Host the game over SSH
//	brickduel scores         - Show high scores and recent matches
//	brickduel layouts        - List the brick layouts
//	brickduel sounds         - Export the built-in sounds as WAV files
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible rounds
//	--config <path>       - Load a YAML or TOML game config
//	--difficulty <name>   - easy, normal or hard
//	--store <backend>     - file or sqlite
//	--scores <path>       - High-score file for the file backend
//	--db <path>           - Database for the sqlite backend
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-duel/internal/config"
	"github.com/vovakirdan/brick-duel/internal/session"
	"github.com/vovakirdan/brick-duel/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagStore      string
	flagScores     string
	flagDBPath     string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickduel",
	Short: "Brick Duel - two-player brick breaker in your terminal",
	Long: `Brick Duel splits the arena in two. Each player keeps their own paddle
on their own half, breaks bricks for points and fights over power-ups.
The round ends when either player runs out of lives.

Available commands:
  play     - Play on this terminal
  serve    - Host the game over SSH
  scores   - View high scores and recent matches
  layouts  - List the brick layouts
  sounds   - Export the built-in sounds as WAV files

Examples:
  brickduel play
  brickduel play --difficulty hard --seed 7
  brickduel serve --ssh :2222
  brickduel scores --store sqlite`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to a YAML or TOML game config")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagStore, "store", "", "High-score backend: file or sqlite (default from config)")
	pf.StringVar(&flagScores, "scores", "", "High-score file for the file backend")
	pf.StringVar(&flagDBPath, "db", "", "Database path for the sqlite backend")
	pf.StringVar(&flagLogFile, "log-file", "~/.brickduel/brickduel.log", "Log file while the game owns the terminal")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(soundsCmd)
}

// loadConfig reads the game config and applies the global flags to it.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagStore != "" {
		cfg.Storage.Backend = flagStore
	}
	if flagScores != "" {
		cfg.Storage.ScoresFile = flagScores
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	return cfg, cfg.Validate()
}

// newLogger builds the process logger. With toFile set the output goes to
// --log-file so it does not draw over the game. The returned func closes
// the log file, if any.
func newLogger(toFile bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	done := func() {}
	if toFile {
		path, err := config.ExpandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		done = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "brickduel",
		Level:           level,
	})
	return logger, done, nil
}

// stores holds the persistence collaborators for the configured backend.
type stores struct {
	scores  session.ScoreKeeper
	matches session.MatchRecorder // nil for the file backend
	db      *storage.Store        // nil for the file backend
}

func (s stores) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// openStores opens the configured backend. A broken database falls back to
// the high-score file so the game stays playable.
func openStores(cfg config.Storage, logger *log.Logger) (stores, error) {
	if cfg.Backend == config.BackendSQLite {
		db, err := storage.Open(cfg.DBPath, storage.WithLogger(logger))
		if err == nil {
			return stores{scores: db, matches: db, db: db}, nil
		}
		logger.Warn("could not open scores database, using the score file", "path", cfg.DBPath, "err", err)
	}

	file, err := storage.NewFileStore(cfg.ScoresFile, storage.WithLogger(logger))
	if err != nil {
		return stores{}, err
	}
	return stores{scores: file}, nil
}

// errNoTTY is returned when play is run without a terminal.
var errNoTTY = errors.New("brickduel play needs an interactive terminal")
