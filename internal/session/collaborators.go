package session

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . Audio,ScoreKeeper,MatchRecorder

import (
	"github.com/vovakirdan/brick-duel/internal/core"
	"github.com/vovakirdan/brick-duel/internal/storage"
)

// Audio plays sound effects and music. Every method must be a safe no-op
// when muted or when the sound is unavailable, and must not block.
type Audio interface {
	PlayCue(cue core.Cue)
	PlayMusic(track core.Track)
	StopMusic()
	SetSoundEnabled(on bool)
	SetMusicEnabled(on bool)
}

// ScoreKeeper persists the high-score table. LoadHighScores never fails:
// unreadable data yields five zeros.
type ScoreKeeper interface {
	LoadHighScores() []int
	SaveHighScores(scores []int) error
}

// MatchRecorder stores the outcome of finished rounds.
type MatchRecorder interface {
	RecordMatch(m storage.MatchRecord) error
}

// silentAudio is used when no audio collaborator is supplied.
type silentAudio struct{}

func (silentAudio) PlayCue(core.Cue)     {}
func (silentAudio) PlayMusic(core.Track) {}
func (silentAudio) StopMusic()           {}
func (silentAudio) SetSoundEnabled(bool) {}
func (silentAudio) SetMusicEnabled(bool) {}

// memoryScores keeps the table in memory when no store is supplied.
type memoryScores struct {
	scores []int
}

func (m *memoryScores) LoadHighScores() []int {
	if len(m.scores) == 0 {
		return storage.DefaultHighScores()
	}
	return m.scores
}

func (m *memoryScores) SaveHighScores(scores []int) error {
	m.scores = storage.NormalizeHighScores(scores)
	return nil
}
