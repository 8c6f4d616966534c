package tui

import (
	"slices"
	"testing"

	"github.com/vovakirdan/brick-duel/internal/storage"
)

// keeper is an in-memory ScoreKeeper that counts saves.
type keeper struct {
	scores []int
	saves  int
}

func (k *keeper) LoadHighScores() []int { return slices.Clone(k.scores) }

func (k *keeper) SaveHighScores(scores []int) error {
	k.scores = slices.Clone(scores)
	k.saves++
	return nil
}

func TestSharedScoresMergesSessions(t *testing.T) {
	k := &keeper{scores: []int{100, 80, 60, 40, 20}}
	shared := newSharedScores(k)

	a, b := shared.view(), shared.view()
	seenA := a.LoadHighScores()
	seenB := b.LoadHighScores()

	if err := a.SaveHighScores(storage.InsertHighScore(seenA, 90)); err != nil {
		t.Fatal(err)
	}
	if err := b.SaveHighScores(storage.InsertHighScore(seenB, 70)); err != nil {
		t.Fatal(err)
	}

	want := []int{100, 90, 80, 70, 60}
	if !slices.Equal(k.scores, want) {
		t.Errorf("stored = %v, expected %v", k.scores, want)
	}
	if k.saves != 2 {
		t.Errorf("saves = %d, expected 2", k.saves)
	}
}

func TestSharedScoresDuplicateScore(t *testing.T) {
	k := &keeper{scores: []int{50, 0, 0, 0, 0}}
	v := newSharedScores(k).view()

	seen := v.LoadHighScores()
	if err := v.SaveHighScores(storage.InsertHighScore(seen, 50)); err != nil {
		t.Fatal(err)
	}

	want := []int{50, 50, 0, 0, 0}
	if !slices.Equal(k.scores, want) {
		t.Errorf("stored = %v, expected %v", k.scores, want)
	}

	// A second round in the same session builds on what it saved.
	if err := v.SaveHighScores(storage.InsertHighScore(want, 10)); err != nil {
		t.Fatal(err)
	}
	if want := []int{50, 50, 10, 0, 0}; !slices.Equal(k.scores, want) {
		t.Errorf("stored = %v, expected %v", k.scores, want)
	}
}

func TestNewSSHServerNeedsScores(t *testing.T) {
	if _, err := NewSSHServer(DefaultSSHServerConfig(), SSHDeps{}); err == nil {
		t.Error("NewSSHServer() without a score keeper returned no error")
	}
}
