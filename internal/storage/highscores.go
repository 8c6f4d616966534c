// Package storage persists Brick Duel high scores and match history.
// Two backends satisfy the same interface: a newline-delimited text file
// and a SQLite database using the pure-Go modernc.org/sqlite driver.
package storage

import (
	"slices"

	"github.com/charmbracelet/log"
)

// MaxHighScores is the length of the high-score table.
const MaxHighScores = 5

// DefaultHighScores returns the all-zero table used when nothing valid is
// stored yet.
func DefaultHighScores() []int {
	return make([]int, MaxHighScores)
}

// NormalizeHighScores returns a copy of scores sorted descending and cut
// to MaxHighScores.
func NormalizeHighScores(scores []int) []int {
	out := slices.Clone(scores)
	slices.SortFunc(out, func(a, b int) int { return b - a })
	if len(out) > MaxHighScores {
		out = out[:MaxHighScores]
	}
	return out
}

// InsertHighScore adds score to the table and returns the normalized result.
func InsertHighScore(scores []int, score int) []int {
	return NormalizeHighScores(append(slices.Clone(scores), score))
}

// Option configures a store.
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogger sets the logger used to report degraded reads.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: log.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
