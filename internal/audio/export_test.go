package audio

import (
	"testing"

	"github.com/vovakirdan/brick-duel/internal/core"
)

func TestExportWAVRoundTrip(t *testing.T) {
	dir := t.TempDir()

	paths, err := ExportWAV(dir)
	if err != nil {
		t.Fatalf("ExportWAV() error = %v", err)
	}
	if want := len(core.AllCues) + len(core.AllTracks); len(paths) != want {
		t.Errorf("ExportWAV() wrote %d files, expected %d", len(paths), want)
	}

	cfg := synthConfig(dir)
	cfg.Synthesize = false
	p := New(cfg, quietLogger())
	for _, c := range core.AllCues {
		if !p.HasCue(c) {
			t.Errorf("HasCue(%s) = false after export", c)
		}
	}
	for _, tr := range core.AllTracks {
		if !p.HasTrack(tr) {
			t.Errorf("HasTrack(%s) = false after export", tr)
		}
	}
}
