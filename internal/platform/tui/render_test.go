package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/brick-duel/internal/core"
	"github.com/vovakirdan/brick-duel/internal/games/brickduel"
)

// testSnapshot is an 800x600 arena drawn into an 82x31 screen: the inner
// arena is 80x28 cells, so one cell is 10 pixels wide and 600/28 tall.
func testSnapshot() brickduel.Snapshot {
	return brickduel.Snapshot{
		Width:      800,
		Height:     600,
		Mid:        400,
		Layout:     2,
		LayoutName: "Pyramid",
		Players: [2]brickduel.PlayerView{
			{ID: core.Player1, Score: 120, Lives: 3, Paddle: core.NewRectF(150, 560, 100, 10)},
			{ID: core.Player2, Score: 40, Lives: 1, Paddle: core.NewRectF(550, 560, 100, 10), LaserActive: true},
		},
		Balls: []brickduel.BallView{{Pos: core.Vec2{X: 400, Y: 310}, Radius: 8}},
		Bricks: []brickduel.BrickView{
			{Rect: core.NewRectF(0, 0, 80, 20), Color: core.ColorRed, HitsLeft: 1},
			{Rect: core.NewRectF(720, 0, 80, 20), Color: core.ColorBlue, HitsLeft: 3},
		},
		PowerUps: []brickduel.PowerUpView{{Pos: core.Vec2{X: 200, Y: 310}, Radius: 10, Type: brickduel.PowerUpExpand}},
		Lasers:   []core.RectF{core.NewRectF(598, 400, 4, 15)},
	}
}

func TestDrawSnapshot(t *testing.T) {
	s := core.NewScreen(82, 31)
	DrawSnapshot(s, testSnapshot())

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"border corner", 0, 1, '┌'},
		{"midline", 41, 3, '┊'},
		{"brick", 1, 2, '█'},
		{"brick right edge", 8, 2, '█'},
		{"tough brick", 80, 2, '▓'},
		{"ball", 41, 16, '●'},
		{"p1 paddle", 16, 28, '▀'},
		{"p2 laser paddle", 56, 28, '╦'},
		{"powerup", 21, 16, brickduel.PowerUpExpand.Glyph()},
		{"laser", 60, 20, '╵'},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Get(tc.x, tc.y); got != tc.want {
				t.Errorf("cell (%d, %d) = %q, expected %q\n%s", tc.x, tc.y, got, tc.want, s.String())
			}
		})
	}

	if got := s.Get(9, 2); got == '█' {
		t.Error("brick spilled into the next cell")
	}
}

func TestDrawSnapshotHUD(t *testing.T) {
	s := core.NewScreen(82, 31)
	DrawSnapshot(s, testSnapshot())

	hud := s.Row(0)
	for _, want := range []string{"Player 1 ♥♥♥ 120", "Player 2 ♥ 40", "Layout 2 · Pyramid"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q does not contain %q", hud, want)
		}
	}
	if !strings.HasPrefix(strings.TrimLeft(hud, " "), "Player 1") {
		t.Errorf("HUD %q should start with player 1", hud)
	}
}

func TestDrawSnapshotPaused(t *testing.T) {
	snap := testSnapshot()
	snap.Paused = true

	s := core.NewScreen(82, 31)
	DrawSnapshot(s, snap)
	if !strings.Contains(s.String(), "PAUSED") {
		t.Error("paused snapshot does not show PAUSED")
	}
}

func TestDrawSnapshotTooSmall(t *testing.T) {
	s := core.NewScreen(20, 5)
	DrawSnapshot(s, testSnapshot())

	out := s.String()
	if !strings.Contains(out, "terminal too small") {
		t.Errorf("screen = %q, expected a size warning", out)
	}
	if strings.ContainsRune(out, '┌') {
		t.Error("arena drawn on a screen that is too small")
	}
}

func TestViewportRectMinimumSize(t *testing.T) {
	v := newViewport(core.NewRect(0, 0, 12, 12), 1000, 1000)
	r := v.rect(core.NewRectF(500, 500, 1, 1))
	if r.W != 1 || r.H != 1 {
		t.Errorf("rect = %+v, expected a single cell", r)
	}
}

func TestLives(t *testing.T) {
	if got := lives(0); got != "-" {
		t.Errorf("lives(0) = %q, expected \"-\"", got)
	}
	if got := lives(2); got != "♥♥" {
		t.Errorf("lives(2) = %q, expected two hearts", got)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawTextColor(2, 0, "cd", core.ColorBlue)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() has %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"ab", "cd", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() = %q, missing %q", out, want)
		}
	}
}
