package audio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/brick-duel/internal/core"
)

// ExportWAV writes the generated cues and tracks under dir using the same
// layout New reads from, so they can be edited or replaced. It returns the
// paths written.
func ExportWAV(dir string) ([]string, error) {
	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

	var written []string
	write := func(name string, s beep.Streamer) error {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("audio: create %s: %w", filepath.Dir(path), err)
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("audio: create %s: %w", path, err)
		}
		if err := wav.Encode(f, s, format); err != nil {
			f.Close()
			return fmt.Errorf("audio: encode %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("audio: close %s: %w", path, err)
		}
		written = append(written, path)
		return nil
	}

	for _, c := range core.AllCues {
		if err := write(cueFiles[c], synthCue(c, sampleRate)); err != nil {
			return written, err
		}
	}
	for _, t := range core.AllTracks {
		if err := write(trackFiles[t], synthTrack(t, sampleRate)); err != nil {
			return written, err
		}
	}
	return written, nil
}
