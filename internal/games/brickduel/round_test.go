package brickduel

import (
	"math"
	"slices"
	"testing"

	"pgregory.net/rapid"

	"github.com/vovakirdan/brick-duel/internal/config"
	"github.com/vovakirdan/brick-duel/internal/core"
)

// newTestRound returns a round with power-up drops disabled.
func newTestRound(t testing.TB, mutate func(*config.Config)) *Round {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Bricks.DropChance = 0
	if mutate != nil {
		mutate(&cfg)
	}
	return NewRound(cfg, 12345)
}

func attachedTo(r *Round, id core.PlayerID) int {
	n := 0
	for _, b := range r.Balls {
		if b.Attached == id {
			n++
		}
	}
	return n
}

func TestRoundInitialState(t *testing.T) {
	r := newTestRound(t, nil)

	if r.ID == "" {
		t.Error("round has no ID")
	}
	if r.Layout != 1 || len(r.Bricks) != 50 {
		t.Errorf("layout %d with %d bricks, expected layout 1 with 50", r.Layout, len(r.Bricks))
	}
	if len(r.Balls) != 2 || attachedTo(r, core.Player1) != 1 || attachedTo(r, core.Player2) != 1 {
		t.Errorf("expected one attached ball per player, got %d balls", len(r.Balls))
	}

	expected := []core.RectF{
		core.NewRectF(150, 570, 100, 20),
		core.NewRectF(550, 570, 100, 20),
	}
	for i, p := range r.Players {
		if p.Lives != 3 || p.Score != 0 {
			t.Errorf("%v: lives=%d score=%d, expected 3 and 0", p.ID, p.Lives, p.Score)
		}
		if p.Paddle.Rect != expected[i] {
			t.Errorf("%v paddle = %v, expected %v", p.ID, p.Paddle.Rect, expected[i])
		}
	}

	b := r.Balls[0]
	if b.Pos != (core.Vec2{X: 200, Y: 560}) {
		t.Errorf("ball at %v, expected (200, 560)", b.Pos)
	}
	if math.Abs(b.Vel.X) != 2.5 || b.Vel.Y != -5 {
		t.Errorf("ball velocity = %v, expected (±2.5, -5)", b.Vel)
	}
}

func TestRoundResetStartsFresh(t *testing.T) {
	r := newTestRound(t, nil)
	id := r.ID
	r.Players[0].Score = 500
	r.Players[1].Lives = 1
	r.Bricks = nil
	r.Update()

	r.Reset(99)
	if r.ID == id {
		t.Error("Reset() kept the round ID")
	}
	if r.Players[0].Score != 0 || r.Players[1].Lives != 3 || r.Tick != 0 || r.Layout != 1 {
		t.Errorf("Reset() left state: %+v tick=%d", r.State(), r.Tick)
	}
}

func TestRoundMovePaddleStaysInHalf(t *testing.T) {
	r := newTestRound(t, nil)

	for range 100 {
		r.MovePaddle(core.Player1, 1)
		r.MovePaddle(core.Player2, -1)
	}
	if got := r.Players[0].Paddle.Rect.X; got != 290 {
		t.Errorf("Player 1 paddle X = %v, expected 290", got)
	}
	if got := r.Players[1].Paddle.Rect.X; got != 410 {
		t.Errorf("Player 2 paddle X = %v, expected 410", got)
	}

	r.Update()
	if b := r.Balls[0]; b.Pos.X != 340 {
		t.Errorf("attached ball X = %v, expected it to follow the paddle to 340", b.Pos.X)
	}
}

func TestRoundHandleAction(t *testing.T) {
	r := newTestRound(t, nil)

	if cue := r.HandleAction(core.Player1); cue != core.CuePaddleHit {
		t.Errorf("release cue = %q, expected %q", cue, core.CuePaddleHit)
	}
	if attachedTo(r, core.Player1) != 0 {
		t.Error("ball still attached after release")
	}
	if r.Balls[0].Vel.Y >= 0 {
		t.Errorf("released ball velocity = %v, expected upward", r.Balls[0].Vel)
	}

	if cue := r.HandleAction(core.Player1); cue != "" {
		t.Errorf("action with nothing to do = %q, expected none", cue)
	}

	r.Players[0].Paddle.GrantLaser(r.Tick, 0)
	if cue := r.HandleAction(core.Player1); cue != core.CueLaser {
		t.Fatalf("laser cue = %q, expected %q", cue, core.CueLaser)
	}
	if len(r.Lasers) != 1 {
		t.Fatalf("lasers = %d, expected 1", len(r.Lasers))
	}
	if l := r.Lasers[0]; l.Rect != core.NewRectF(198, 570, 4, 10) || l.Owner != core.Player1 {
		t.Errorf("laser = %+v, expected a 4x10 bolt at (198, 570) owned by Player 1", l)
	}
	if cue := r.HandleAction(core.Player1); cue != "" {
		t.Errorf("second shot during cooldown = %q, expected none", cue)
	}
}

func TestRoundBallBreaksBrickForItsHalf(t *testing.T) {
	r := newTestRound(t, nil)
	br := NewBrick(core.NewRectF(100, 50, 60, 20), core.ColorRed, 50, 0)
	r.Bricks = []*Brick{br}
	ball := &Ball{Pos: core.Vec2{X: 130, Y: 84}, Vel: core.Vec2{X: 0, Y: -5}, Radius: 10}
	r.Balls = append(r.Balls, ball)

	res := r.Update()

	if r.Players[0].Score != 50 || r.Players[1].Score != 0 {
		t.Errorf("scores = %v, expected [50 0]", res.State.Scores)
	}
	if ball.Vel.Y != 5 {
		t.Errorf("ball velocity = %v, expected reflected downward", ball.Vel)
	}
	if !slices.Contains(res.Cues, core.CueBrickHit) {
		t.Errorf("cues = %v, expected %q", res.Cues, core.CueBrickHit)
	}
	if r.Layout != 2 || len(r.Bricks) != 36 {
		t.Errorf("after clearing: layout %d with %d bricks, expected layout 2 with 36", r.Layout, len(r.Bricks))
	}
}

func TestRoundFortressBrickNeedsThreeHits(t *testing.T) {
	r := newTestRound(t, func(c *config.Config) { c.Gameplay.StartLayout = 5 })
	br := findBrick(r.Bricks, 410, 150)
	if br == nil {
		t.Fatal("no brick at row 5, col 6")
	}

	for shot := 1; shot <= 3; shot++ {
		r.Lasers = append(r.Lasers, NewLaser(440, 160, 4, 10, 10, core.Player2))
		r.Update()

		if len(r.Lasers) != 0 {
			t.Fatalf("shot %d: laser survived a hit", shot)
		}
		if shot < 3 {
			if br.HitsLeft() != 3-shot || r.Players[1].Score != 0 {
				t.Errorf("shot %d: hits left=%d score=%d", shot, br.HitsLeft(), r.Players[1].Score)
			}
		}
	}

	if r.Players[1].Score != 30 {
		t.Errorf("Player 2 score = %d, expected 30", r.Players[1].Score)
	}
	if findBrick(r.Bricks, 410, 150) != nil || len(r.Bricks) != 119 {
		t.Errorf("brick not removed, %d bricks left", len(r.Bricks))
	}
}

func countCue(cues []core.Cue, c core.Cue) int {
	n := 0
	for _, got := range cues {
		if got == c {
			n++
		}
	}
	return n
}

// toughBrick returns a three-hit brick on Player 2's half spanning
// x 410..470, y 150..170.
func toughBrick() *Brick {
	br := NewBrick(core.NewRectF(410, 150, 60, 20), core.ColorRed, 30, 0)
	br.HitsToBreak = 3
	return br
}

func TestRoundBrickHitsPerTick(t *testing.T) {
	upward := func(x float64) *Ball {
		return &Ball{Pos: core.Vec2{X: x, Y: 184}, Vel: core.Vec2{X: 0, Y: -5}, Radius: 10}
	}

	tests := []struct {
		name     string
		balls    []*Ball
		lasers   []*Laser
		expected int
	}{
		{
			name:     "two balls count once",
			balls:    []*Ball{upward(430), upward(450)},
			expected: 1,
		},
		{
			name: "two lasers count twice",
			lasers: []*Laser{
				NewLaser(440, 160, 4, 10, 10, core.Player2),
				NewLaser(450, 160, 4, 10, 10, core.Player2),
			},
			expected: 2,
		},
		{
			name:     "ball and laser count twice",
			balls:    []*Ball{upward(430)},
			lasers:   []*Laser{NewLaser(450, 160, 4, 10, 10, core.Player2)},
			expected: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRound(t, nil)
			br := toughBrick()
			r.Bricks = []*Brick{br}
			r.Balls = append(r.Balls, tc.balls...)
			r.Lasers = tc.lasers

			res := r.Update()

			if br.Hits != tc.expected {
				t.Errorf("brick hits = %d, expected %d", br.Hits, tc.expected)
			}
			if len(r.Lasers) != 0 {
				t.Errorf("lasers = %d, expected all consumed", len(r.Lasers))
			}
			for _, b := range tc.balls {
				if b.Vel.Y != 5 {
					t.Errorf("ball at x=%v velocity = %v, expected reflected downward", b.Pos.X, b.Vel)
				}
			}
			if got, want := countCue(res.Cues, core.CueBrickHit), len(tc.balls)+len(tc.lasers); got != want {
				t.Errorf("brick_hit cues = %d, expected %d", got, want)
			}
		})
	}
}

func TestRoundClearingLastLayoutWraps(t *testing.T) {
	r := newTestRound(t, func(c *config.Config) { c.Gameplay.StartLayout = 5 })
	if r.Layout != 5 {
		t.Fatalf("start layout = %d, expected 5", r.Layout)
	}
	r.Bricks = []*Brick{NewBrick(core.NewRectF(100, 50, 60, 20), core.ColorRed, 10, 0)}
	r.Balls = append(r.Balls, &Ball{Pos: core.Vec2{X: 130, Y: 84}, Vel: core.Vec2{X: 0, Y: -5}, Radius: 10})

	r.Update()

	if r.Layout != 1 || len(r.Bricks) != 50 {
		t.Errorf("after clearing: layout %d with %d bricks, expected layout 1 with 50", r.Layout, len(r.Bricks))
	}
	if r.Players[0].Score != 10 {
		t.Errorf("Player 1 score = %d, expected 10", r.Players[0].Score)
	}
}

func TestRoundLostBallCostsLife(t *testing.T) {
	r := newTestRound(t, nil)
	r.Balls = r.Balls[1:] // Player 1 has nothing in play

	r.Update()

	if r.Players[0].Lives != 2 {
		t.Errorf("Player 1 lives = %d, expected 2", r.Players[0].Lives)
	}
	if r.Players[1].Lives != 3 {
		t.Errorf("Player 2 lives = %d, expected 3", r.Players[1].Lives)
	}
	if attachedTo(r, core.Player1) != 1 {
		t.Error("Player 1 was not served a new ball")
	}
}

func TestRoundBallDropsOutOfBottom(t *testing.T) {
	r := newTestRound(t, nil)
	r.Balls = append(r.Balls, &Ball{Pos: core.Vec2{X: 300, Y: 592}, Vel: core.Vec2{X: 0, Y: 5}, Radius: 10})

	r.Update()

	if len(r.Balls) != 2 {
		t.Errorf("balls = %d, expected the dropped ball removed", len(r.Balls))
	}
	if r.Players[0].Lives != 3 {
		t.Errorf("Player 1 lives = %d, expected 3 while a ball is still held", r.Players[0].Lives)
	}
}

func TestRoundGameOver(t *testing.T) {
	tests := []struct {
		name   string
		lives  [2]int
		scores [2]int
		drop   []int // player slots whose balls are removed
		winner core.PlayerID
	}{
		{"both out, higher score wins", [2]int{1, 1}, [2]int{120, 90}, []int{0, 1}, core.Player1},
		{"both out, player 2 ahead", [2]int{1, 1}, [2]int{40, 90}, []int{0, 1}, core.Player2},
		{"both out, tie is a draw", [2]int{1, 1}, [2]int{70, 70}, []int{0, 1}, core.NoPlayer},
		{"player 1 out", [2]int{1, 3}, [2]int{500, 0}, []int{0}, core.Player2},
		{"player 2 out", [2]int{2, 1}, [2]int{0, 500}, []int{1}, core.Player1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRound(t, nil)
			for i, p := range r.Players {
				p.Lives = tc.lives[i]
				p.Score = tc.scores[i]
			}
			r.Balls = slices.DeleteFunc(r.Balls, func(b *Ball) bool {
				return slices.Contains(tc.drop, b.Attached.Index())
			})

			res := r.Update()
			if !res.Finished || !res.State.GameOver {
				t.Fatalf("Finished=%v GameOver=%v, expected both", res.Finished, res.State.GameOver)
			}
			if res.State.Winner != tc.winner {
				t.Errorf("winner = %v, expected %v", res.State.Winner, tc.winner)
			}
			if !slices.Contains(res.Cues, core.CueGameOver) {
				t.Errorf("cues = %v, expected %q", res.Cues, core.CueGameOver)
			}
			for _, p := range r.Players {
				if p.Lives < 0 {
					t.Errorf("%v lives = %d", p.ID, p.Lives)
				}
			}

			tick := r.Tick
			again := r.Update()
			if again.Finished || r.Tick != tick {
				t.Error("Update() after game over changed the round")
			}
		})
	}
}

func TestRoundPauseFreezes(t *testing.T) {
	r := newTestRound(t, nil)
	r.HandleAction(core.Player1)
	r.TogglePause()

	pos := r.Balls[0].Pos
	x := r.Players[1].Paddle.Rect.X
	for range 10 {
		r.MovePaddle(core.Player2, 1)
		r.Update()
	}
	if r.Tick != 0 || r.Balls[0].Pos != pos || r.Players[1].Paddle.Rect.X != x {
		t.Error("paused round changed")
	}
	if cue := r.HandleAction(core.Player2); cue != "" {
		t.Errorf("action while paused = %q, expected none", cue)
	}

	r.TogglePause()
	r.Update()
	if r.Tick != 1 {
		t.Errorf("tick = %d after resume, expected 1", r.Tick)
	}
}

func TestPowerUpEffects(t *testing.T) {
	t.Run("shrink hits the opponent", func(t *testing.T) {
		r := newTestRound(t, nil)
		PowerUpShrink.Apply(r, core.Player1)

		p2 := r.Players[1].Paddle.Rect
		if p2.W != 70 || p2.CenterX() != 600 {
			t.Errorf("Player 2 paddle = %v, expected width 70 centered on 600", p2)
		}
		if r.Players[0].Paddle.Rect.W != 100 {
			t.Error("collector's paddle changed")
		}
	})

	t.Run("expand stays in its half", func(t *testing.T) {
		r := newTestRound(t, nil)
		for range 100 {
			r.MovePaddle(core.Player1, 1)
		}
		PowerUpExpand.Apply(r, core.Player1)

		p1 := r.Players[0].Paddle.Rect
		if p1.W != 130 || p1.Right() != 390 {
			t.Errorf("Player 1 paddle = %v, expected width 130 flush with 390", p1)
		}
	})

	t.Run("multiball", func(t *testing.T) {
		r := newTestRound(t, nil)
		PowerUpMultiBall.Apply(r, core.Player1)

		if len(r.Balls) != 4 {
			t.Fatalf("balls = %d, expected 4", len(r.Balls))
		}
		for _, b := range r.Balls[2:] {
			if b.Attached.Valid() || b.Pos != (core.Vec2{X: 200, Y: 560}) {
				t.Errorf("new ball = %+v, expected free at (200, 560)", b)
			}
		}
	})

	t.Run("sticky and laser", func(t *testing.T) {
		r := newTestRound(t, nil)
		PowerUpSticky.Apply(r, core.Player2)
		PowerUpLaser.Apply(r, core.Player2)

		p := r.Players[1].Paddle
		if !p.Sticky || !p.LaserActive {
			t.Errorf("sticky=%v laser=%v, expected both", p.Sticky, p.LaserActive)
		}
		if r.Players[0].Paddle.Sticky || r.Players[0].Paddle.LaserActive {
			t.Error("opponent received the effect")
		}
	})
}

func TestRoundTimedEffects(t *testing.T) {
	r := newTestRound(t, func(c *config.Config) { c.PowerUps.StickyTicks = 5 })
	PowerUpSticky.Apply(r, core.Player1)

	for range 4 {
		r.Update()
	}
	if !r.Players[0].Paddle.Sticky {
		t.Error("sticky expired early")
	}
	r.Update()
	if r.Players[0].Paddle.Sticky {
		t.Error("sticky outlived its duration")
	}
}

func TestRoundPowerUpPickup(t *testing.T) {
	r := newTestRound(t, nil)
	r.PowerUps = append(r.PowerUps,
		NewPowerUp(core.Vec2{X: 200, Y: 560}, PowerUpSticky, 10, 2),
		NewPowerUp(core.Vec2{X: 400, Y: 599}, PowerUpLaser, 10, 2),
	)

	res := r.Update()

	if len(r.PowerUps) != 0 {
		t.Errorf("power-ups = %d, expected both gone", len(r.PowerUps))
	}
	if !r.Players[0].Paddle.Sticky {
		t.Error("Player 1 did not get sticky")
	}
	if r.Players[0].Paddle.LaserActive || r.Players[1].Paddle.LaserActive {
		t.Error("missed power-up was applied")
	}
	if !slices.Contains(res.Cues, core.CuePowerUp) {
		t.Errorf("cues = %v, expected %q", res.Cues, core.CuePowerUp)
	}
}

func TestRoundDeterminism(t *testing.T) {
	run := func() Snapshot {
		r := NewRound(config.DefaultConfig(), 42)
		for i := range 1500 {
			switch {
			case i%120 == 0:
				r.HandleAction(core.Player1)
				r.HandleAction(core.Player2)
			case i%7 < 3:
				r.MovePaddle(core.Player1, 1)
				r.MovePaddle(core.Player2, -1)
			default:
				r.MovePaddle(core.Player1, -1)
				r.MovePaddle(core.Player2, 1)
			}
			r.Update()
		}
		return r.Snapshot()
	}

	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("determinism failed: hashes differ. Run1=%d, Run2=%d", a.Hash(), b.Hash())
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	r := newTestRound(t, nil)
	snap := r.Snapshot()

	r.MovePaddle(core.Player1, 1)
	r.Bricks[0].Hit()
	r.Update()

	if snap.Players[0].Paddle.X != 150 {
		t.Error("snapshot paddle moved with the round")
	}
	if len(snap.Bricks) != 50 || snap.Bricks[0].HitsLeft != 1 {
		t.Error("snapshot bricks changed with the round")
	}
	if snap.LayoutName != "Grid" || snap.Mid != 400 {
		t.Errorf("snapshot layout=%q mid=%v", snap.LayoutName, snap.Mid)
	}
}

func TestRoundInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := config.DefaultConfig()
		cfg.Bricks.DropChance = rapid.Float64Range(0, 1).Draw(t, "drop")
		r := NewRound(cfg, rapid.Int64().Draw(t, "seed"))
		ops := rapid.SliceOfN(rapid.IntRange(0, 6), 50, 400).Draw(t, "ops")
		launch := math.Hypot(cfg.Ball.Speed/2, cfg.Ball.Speed)

		var scores [2]int
		for _, op := range ops {
			switch op {
			case 1:
				r.MovePaddle(core.Player1, -1)
			case 2:
				r.MovePaddle(core.Player1, 1)
			case 3:
				r.HandleAction(core.Player1)
			case 4:
				r.MovePaddle(core.Player2, -1)
			case 5:
				r.MovePaddle(core.Player2, 1)
			case 6:
				r.HandleAction(core.Player2)
			}
			r.Update()

			if len(r.Bricks) == 0 {
				t.Fatalf("tick %d ended with no bricks", r.Tick)
			}
			for i, p := range r.Players {
				if p.Lives < 0 || p.Lives > cfg.Gameplay.Lives {
					t.Fatalf("%v lives = %d", p.ID, p.Lives)
				}
				if p.Score < scores[i] {
					t.Fatalf("%v score fell from %d to %d", p.ID, scores[i], p.Score)
				}
				scores[i] = p.Score

				lo, hi := r.PaddleBounds(p.ID)
				if p.Paddle.Rect.Left() < lo-1e-9 || p.Paddle.Rect.Right() > hi+1e-9 {
					t.Fatalf("%v paddle %v outside [%v, %v]", p.ID, p.Paddle.Rect, lo, hi)
				}
			}
			for _, b := range r.Balls {
				if math.Abs(b.Speed()-launch) > 1e-6 {
					t.Fatalf("ball speed %v, expected %v", b.Speed(), launch)
				}
			}
		}
	})
}
