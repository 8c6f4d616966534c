// Package audio plays Brick Duel's sound effects and looping music through
// gopxl/beep. Cues are decoded into memory up front so playing one never
// touches the disk; a missing or unreadable asset is either replaced by a
// generated tone or skipped.
package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/brick-duel/internal/config"
	"github.com/vovakirdan/brick-duel/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// ErrUnavailable is returned by Start when no output device can be opened.
var ErrUnavailable = errors.New("audio: output device unavailable")

// Asset file names under the asset directory.
var (
	cueFiles = map[core.Cue]string{
		core.CuePaddleHit:  "sounds/beep.wav",
		core.CueBrickHit:   "sounds/pop.wav",
		core.CuePowerUp:    "sounds/powerup.wav",
		core.CueLaser:      "sounds/laser.wav",
		core.CueGameOver:   "sounds/game_over.wav",
		core.CueMenuSelect: "sounds/select.wav",
	}
	trackFiles = map[core.Track]string{
		core.TrackMenu:     "music/menu_music.wav",
		core.TrackGameplay: "music/gameplay_music.wav",
	}
)

// speakerLock guards the mixer against the speaker's playback goroutine.
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// Player implements the session's audio collaborator. All methods are safe
// for concurrent use and never block on I/O.
type Player struct {
	mu     sync.Mutex
	logger *log.Logger
	format beep.Format
	volume float64

	mixer *beep.Mixer
	out   sync.Locker
	ready bool // Output running

	cues   map[core.Cue]*beep.Buffer
	tracks map[core.Track]*beep.Buffer

	soundOn bool
	musicOn bool
	current core.Track // Requested track, kept while music is muted
	music   *beep.Ctrl
}

// New loads every cue and track. Assets are read from cfg.AssetDir; missing
// ones are synthesized when cfg.Synthesize is set. No device is opened
// until Start.
func New(cfg config.Audio, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	p := &Player{
		logger:  logger,
		format:  beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2},
		volume:  cfg.Volume,
		mixer:   &beep.Mixer{},
		out:     speakerLock{},
		cues:    make(map[core.Cue]*beep.Buffer),
		tracks:  make(map[core.Track]*beep.Buffer),
		soundOn: cfg.Sound,
		musicOn: cfg.Music,
	}

	dir, err := config.ExpandHome(cfg.AssetDir)
	if err != nil {
		logger.Warn("audio asset directory unusable", "dir", cfg.AssetDir, "err", err)
		dir = ""
	}

	for _, c := range core.AllCues {
		if buf := p.load(dir, cueFiles[c], synthCue(c, sampleRate), cfg.Synthesize); buf != nil {
			p.cues[c] = buf
		}
	}
	for _, t := range core.AllTracks {
		if buf := p.load(dir, trackFiles[t], synthTrack(t, sampleRate), cfg.Synthesize); buf != nil {
			p.tracks[t] = buf
		}
	}
	return p
}

// load decodes dir/name into a buffer at the player's sample rate, falling
// back to fallback when allowed. Returns nil when there is nothing to play.
func (p *Player) load(dir, name string, fallback beep.Streamer, synthesize bool) *beep.Buffer {
	if dir != "" {
		path := filepath.Join(dir, name)
		buf, err := p.decode(path)
		switch {
		case err == nil && buf.Len() > 0:
			return buf
		case err != nil && !errors.Is(err, os.ErrNotExist):
			p.logger.Warn("audio asset unreadable", "path", path, "err", err)
		}
	}

	if !synthesize || fallback == nil {
		p.logger.Debug("audio asset missing, skipping", "name", name)
		return nil
	}
	buf := beep.NewBuffer(p.format)
	buf.Append(fallback)
	return buf
}

func (p *Player) decode(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	defer s.Close()

	var src beep.Streamer = s
	if format.SampleRate != p.format.SampleRate {
		src = beep.Resample(4, format.SampleRate, p.format.SampleRate, s)
	}
	buf := beep.NewBuffer(p.format)
	buf.Append(src)
	return buf, nil
}

// Start opens the output device and begins mixing. On failure the player
// stays silent and every method remains a no-op.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(p.format.SampleRate, p.format.SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	p.startMusicLocked()
	return nil
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	p.stopMusicLocked()
	speaker.Clear()
	speaker.Close()
	p.ready = false
}

// HasCue reports whether c has something to play.
func (p *Player) HasCue(c core.Cue) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cues[c] != nil
}

// HasTrack reports whether t has something to play.
func (p *Player) HasTrack(t core.Track) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tracks[t] != nil
}

// withVolume scales s by the configured linear gain.
func (p *Player) withVolume(s beep.Streamer) beep.Streamer {
	switch {
	case p.volume == 1:
		return s
	case p.volume <= 0:
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	default:
		return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(p.volume)}
	}
}

// PlayCue starts a sound effect without waiting for it.
func (p *Player) PlayCue(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	buf := p.cues[c]
	if !p.ready || !p.soundOn || buf == nil {
		return
	}
	p.out.Lock()
	p.mixer.Add(p.withVolume(buf.Streamer(0, buf.Len())))
	p.out.Unlock()
}

// PlayMusic loops track, replacing whatever music was playing. While music
// is muted the request is remembered for when it is turned back on.
func (p *Player) PlayMusic(t core.Track) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == t && p.music != nil {
		return
	}
	p.stopMusicLocked()
	p.current = t
	p.startMusicLocked()
}

// StopMusic stops and forgets the current track.
func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopMusicLocked()
	p.current = ""
}

// SetSoundEnabled turns sound effects on or off.
func (p *Player) SetSoundEnabled(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.soundOn = on
}

// SetMusicEnabled turns music on or off, resuming the requested track.
func (p *Player) SetMusicEnabled(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.musicOn = on
	if on {
		p.startMusicLocked()
	} else {
		p.stopMusicLocked()
	}
}

func (p *Player) startMusicLocked() {
	buf := p.tracks[p.current]
	if !p.ready || !p.musicOn || buf == nil || p.music != nil {
		return
	}
	p.music = &beep.Ctrl{Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len()))}
	p.out.Lock()
	p.mixer.Add(p.withVolume(p.music))
	p.out.Unlock()
}

func (p *Player) stopMusicLocked() {
	if p.music == nil {
		return
	}
	p.out.Lock()
	// A Ctrl without a streamer drains, so the mixer drops it.
	p.music.Streamer = nil
	p.out.Unlock()
	p.music = nil
}
