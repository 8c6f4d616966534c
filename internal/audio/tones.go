package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/brick-duel/internal/core"
)

type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveSaw
	waveNoise
)

// tone is a finite oscillator with a linear frequency sweep and a short
// attack/release envelope so it starts and stops without clicks.
type tone struct {
	rate     beep.SampleRate
	wave     waveform
	from, to float64 // Hz
	amp      float64
	total    int
	attack   int
	release  int
	pos      int
	phase    float64
	noise    uint32
}

func newTone(rate beep.SampleRate, w waveform, from, to float64, d time.Duration, amp float64) *tone {
	total := rate.N(d)
	edge := min(rate.N(5*time.Millisecond), total/4)
	return &tone{
		rate:    rate,
		wave:    w,
		from:    from,
		to:      to,
		amp:     amp,
		total:   total,
		attack:  edge,
		release: edge,
		noise:   0x2545f491,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}

		var val float64
		switch t.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case waveSquare:
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case waveSaw:
			val = 2 * (t.phase - 0.5)
		case waveNoise:
			t.noise ^= t.noise << 13
			t.noise ^= t.noise >> 17
			t.noise ^= t.noise << 5
			val = float64(t.noise)/math.MaxUint32*2 - 1
		}

		env := 1.0
		if t.attack > 0 && t.pos < t.attack {
			env = float64(t.pos) / float64(t.attack)
		}
		if left := t.total - t.pos; t.release > 0 && left < t.release {
			env = math.Min(env, float64(left)/float64(t.release))
		}

		val *= t.amp * env
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(t.pos) / float64(t.total)
		freq := t.from + (t.to-t.from)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// notes plays freqs one after another, each lasting d.
func notes(rate beep.SampleRate, w waveform, amp float64, d time.Duration, freqs ...float64) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		parts = append(parts, newTone(rate, w, f, f, d, amp))
	}
	return beep.Seq(parts...)
}

// synthCue returns a generated stand-in for a missing cue asset.
func synthCue(c core.Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case core.CuePaddleHit:
		return newTone(rate, waveSquare, 440, 440, 60*time.Millisecond, 0.25)
	case core.CueBrickHit:
		return beep.Mix(
			newTone(rate, waveSquare, 660, 520, 50*time.Millisecond, 0.2),
			newTone(rate, waveNoise, 0, 0, 30*time.Millisecond, 0.08),
		)
	case core.CuePowerUp:
		return newTone(rate, waveSine, 400, 1200, 250*time.Millisecond, 0.35)
	case core.CueLaser:
		return newTone(rate, waveSaw, 1400, 300, 150*time.Millisecond, 0.2)
	case core.CueGameOver:
		return notes(rate, waveSine, 0.35, 200*time.Millisecond, 392, 330, 262, 196)
	case core.CueMenuSelect:
		return newTone(rate, waveSine, 880, 880, 40*time.Millisecond, 0.25)
	default:
		return nil
	}
}

// synthTrack returns one loop of a generated stand-in for a missing track.
func synthTrack(t core.Track, rate beep.SampleRate) beep.Streamer {
	switch t {
	case core.TrackMenu:
		return notes(rate, waveSine, 0.15, 300*time.Millisecond, 262, 330, 392, 330, 220, 262, 330, 262)
	case core.TrackGameplay:
		return beep.Mix(
			notes(rate, waveSquare, 0.08, 150*time.Millisecond, 110, 110, 165, 147, 110, 110, 196, 165),
			beep.Seq(
				beep.Silence(rate.N(600*time.Millisecond)),
				newTone(rate, waveNoise, 0, 0, 40*time.Millisecond, 0.05),
				beep.Silence(rate.N(560*time.Millisecond)),
			),
		)
	default:
		return nil
	}
}
