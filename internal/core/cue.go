package core

// Cue names a short fire-and-forget sound effect raised by the simulation.
type Cue string

const (
	CuePaddleHit  Cue = "paddle_hit"
	CueBrickHit   Cue = "brick_hit"
	CuePowerUp    Cue = "powerup"
	CueLaser      Cue = "laser"
	CueGameOver   Cue = "game_over"
	CueMenuSelect Cue = "menu_select"
)

// AllCues lists every cue the audio layer may be asked to play.
var AllCues = []Cue{CuePaddleHit, CueBrickHit, CuePowerUp, CueLaser, CueGameOver, CueMenuSelect}

// Track names a looping background music track.
type Track string

const (
	TrackMenu     Track = "menu"
	TrackGameplay Track = "gameplay"
)

// AllTracks lists every music track.
var AllTracks = []Track{TrackMenu, TrackGameplay}
