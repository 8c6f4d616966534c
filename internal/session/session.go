// Package session drives Brick Duel between rounds: the menu, settings,
// play and game-over states, the current round, and the audio and
// persistence collaborators around it.
package session

import (
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-duel/internal/config"
	"github.com/vovakirdan/brick-duel/internal/core"
	"github.com/vovakirdan/brick-duel/internal/games/brickduel"
	"github.com/vovakirdan/brick-duel/internal/storage"
)

// State is the top-level screen the session is on. Pause is a flag inside
// StatePlaying, not a state of its own.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateSettings
	StateGameOver
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateSettings:
		return "settings"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Options configures a Session. Audio, Scores and Matches may be nil.
type Options struct {
	Config  config.Config
	Seed    int64 // 0 picks a time-based seed
	Audio   Audio
	Scores  ScoreKeeper
	Matches MatchRecorder
	Logger  *log.Logger
}

// Session owns the current round and moves between screens.
type Session struct {
	cfg     config.Config
	seed    int64
	rounds  int
	state   State
	quit    bool
	round   *brickduel.Round
	last    core.GameState
	scores  []int
	soundOn bool
	musicOn bool

	audio   Audio
	keeper  ScoreKeeper
	matches MatchRecorder
	logger  *log.Logger
}

// New creates a session on the main menu, loads the high scores and starts
// the menu music.
func New(opts Options) *Session {
	s := &Session{
		cfg:     opts.Config,
		seed:    opts.Seed,
		state:   StateMenu,
		soundOn: opts.Config.Audio.Sound,
		musicOn: opts.Config.Audio.Music,
		audio:   opts.Audio,
		keeper:  opts.Scores,
		matches: opts.Matches,
		logger:  opts.Logger,
	}
	if s.seed == 0 {
		s.seed = time.Now().UnixNano()
	}
	if s.audio == nil {
		s.audio = silentAudio{}
	}
	if s.keeper == nil {
		s.keeper = &memoryScores{}
	}
	if s.logger == nil {
		s.logger = log.Default()
	}

	s.scores = storage.NormalizeHighScores(s.keeper.LoadHighScores())
	s.audio.SetSoundEnabled(s.soundOn)
	s.audio.SetMusicEnabled(s.musicOn)
	s.audio.PlayMusic(core.TrackMenu)
	return s
}

// State returns the current screen.
func (s *Session) State() State { return s.state }

// Paused reports whether a round is in progress but paused.
func (s *Session) Paused() bool {
	return s.state == StatePlaying && s.round != nil && s.round.Paused
}

// Quitting reports whether Quit was requested.
func (s *Session) Quitting() bool { return s.quit }

// Config returns the game configuration.
func (s *Session) Config() config.Config { return s.cfg }

// Round returns the current round, or nil before the first Start.
func (s *Session) Round() *brickduel.Round { return s.round }

// Snapshot returns a copy of the current round for drawing.
func (s *Session) Snapshot() (brickduel.Snapshot, bool) {
	if s.round == nil {
		return brickduel.Snapshot{}, false
	}
	return s.round.Snapshot(), true
}

// LastResult returns the final state of the most recently finished round.
func (s *Session) LastResult() core.GameState { return s.last }

// HighScores returns a copy of the high-score table, best first.
func (s *Session) HighScores() []int { return slices.Clone(s.scores) }

// SoundEnabled reports whether sound effects are on.
func (s *Session) SoundEnabled() bool { return s.soundOn }

// MusicEnabled reports whether music is on.
func (s *Session) MusicEnabled() bool { return s.musicOn }

func (s *Session) ignore(cmd string) bool {
	s.logger.Debug("command ignored", "cmd", cmd, "state", s.state, "paused", s.Paused())
	return false
}

func (s *Session) menuSelect() {
	s.audio.PlayCue(core.CueMenuSelect)
}

// Start begins a fresh round from the main menu.
func (s *Session) Start() bool {
	if s.quit || s.state != StateMenu {
		return s.ignore("start")
	}
	s.menuSelect()
	s.newRound()
	return true
}

// PlayAgain begins a fresh round from the game-over screen.
func (s *Session) PlayAgain() bool {
	if s.quit || s.state != StateGameOver {
		return s.ignore("play again")
	}
	s.menuSelect()
	s.newRound()
	return true
}

func (s *Session) newRound() {
	seed := s.seed + int64(s.rounds)
	s.rounds++
	s.round = brickduel.NewRound(s.cfg, seed)
	s.state = StatePlaying
	s.audio.PlayMusic(core.TrackGameplay)
	s.logger.Info("round started", "round", s.round.ID, "seed", seed, "layout", s.round.Layout)
}

// OpenSettings moves from the main menu to the settings screen.
func (s *Session) OpenSettings() bool {
	if s.quit || s.state != StateMenu {
		return s.ignore("settings")
	}
	s.menuSelect()
	s.state = StateSettings
	return true
}

// Back leaves the settings screen for the main menu.
func (s *Session) Back() bool {
	if s.quit || s.state != StateSettings {
		return s.ignore("back")
	}
	s.menuSelect()
	s.state = StateMenu
	return true
}

// MainMenu returns to the main menu from the game-over screen, or abandons
// a paused round.
func (s *Session) MainMenu() bool {
	if s.quit {
		return s.ignore("main menu")
	}
	switch {
	case s.state == StateGameOver:
	case s.Paused():
		s.logger.Info("round abandoned", "round", s.round.ID)
		s.round = nil
		s.audio.PlayMusic(core.TrackMenu)
	default:
		return s.ignore("main menu")
	}
	s.menuSelect()
	s.state = StateMenu
	return true
}

// TogglePause pauses or resumes the round in play.
func (s *Session) TogglePause() bool {
	if s.quit || s.state != StatePlaying || s.round == nil {
		return s.ignore("pause")
	}
	s.round.TogglePause()
	return true
}

// ToggleSound switches sound effects on the settings screen.
func (s *Session) ToggleSound() bool {
	if s.quit || s.state != StateSettings {
		return s.ignore("toggle sound")
	}
	s.soundOn = !s.soundOn
	s.audio.SetSoundEnabled(s.soundOn)
	s.menuSelect()
	return true
}

// ToggleMusic switches music on the settings screen.
func (s *Session) ToggleMusic() bool {
	if s.quit || s.state != StateSettings {
		return s.ignore("toggle music")
	}
	s.musicOn = !s.musicOn
	s.audio.SetMusicEnabled(s.musicOn)
	s.menuSelect()
	return true
}

// Quit ends the session from any state.
func (s *Session) Quit() {
	if s.quit {
		return
	}
	s.menuSelect()
	s.audio.StopMusic()
	s.quit = true
}

// Action handles one press of player's action key.
func (s *Session) Action(player core.PlayerID) bool {
	if s.quit || s.state != StatePlaying || s.Paused() {
		return s.ignore("action")
	}
	if cue := s.round.HandleAction(player); cue != "" {
		s.audio.PlayCue(cue)
		return true
	}
	return false
}

// Tick advances the round in play by one step, moving each paddle by its
// player's held direction first.
func (s *Session) Tick(input core.MultiInputFrame) core.StepResult {
	if s.quit || s.state != StatePlaying || s.round == nil {
		return core.StepResult{State: s.last}
	}
	if s.round.Paused {
		return core.StepResult{State: s.round.State()}
	}

	for _, id := range core.Players {
		s.round.MovePaddle(id, input.Player(id).Direction())
	}

	res := s.round.Update()
	for _, c := range res.Cues {
		s.audio.PlayCue(c)
	}
	if res.Finished {
		s.finish(res.State)
	}
	return res
}

// finish persists the result of a round that just ended.
func (s *Session) finish(st core.GameState) {
	s.last = st
	s.state = StateGameOver
	s.audio.PlayMusic(core.TrackMenu)

	best := st.BestScore()
	s.scores = storage.InsertHighScore(s.scores, best)
	if err := s.keeper.SaveHighScores(s.scores); err != nil {
		s.logger.Error("saving high scores", "err", err)
	}

	if s.matches != nil {
		rec := storage.MatchRecord{
			RoundID: s.round.ID,
			Score1:  st.Scores[0],
			Score2:  st.Scores[1],
			Winner:  st.Winner,
			Layout:  st.Layout,
			Ticks:   s.round.Tick,
			Seed:    s.round.Seed(),
		}
		if err := s.matches.RecordMatch(rec); err != nil {
			s.logger.Error("recording match", "round", rec.RoundID, "err", err)
		}
	}

	s.logger.Info("round over",
		"round", s.round.ID,
		"winner", st.Winner,
		"p1", st.Scores[0],
		"p2", st.Scores[1],
		"layout", st.Layout,
	)
}
