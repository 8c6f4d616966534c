package brickduel

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/vovakirdan/brick-duel/internal/core"
)

func TestPaddleMoveClamps(t *testing.T) {
	p := NewPaddle(150, 570, 100, 20, 8)

	for range 100 {
		p.Move(-1, 0, 390)
	}
	if p.Rect.X != 0 {
		t.Errorf("X after moving left = %v, expected 0", p.Rect.X)
	}

	for range 100 {
		p.Move(1, 0, 390)
	}
	if p.Rect.X != 290 {
		t.Errorf("X after moving right = %v, expected 290", p.Rect.X)
	}
}

func TestPaddleResize(t *testing.T) {
	tests := []struct {
		name   string
		factor float64
		width  float64
		x      float64
	}{
		{"shrink", 0.7, 70, 165},
		{"expand", 1.3, 130, 135},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPaddle(150, 570, 100, 20, 8)
			p.Resize(tc.factor)
			if p.Rect.W != tc.width || p.Rect.X != tc.x {
				t.Errorf("after Resize(%v) rect = %v, expected width %v at x %v", tc.factor, p.Rect, tc.width, tc.x)
			}
			if p.Rect.CenterX() != 200 {
				t.Errorf("center = %v, expected 200", p.Rect.CenterX())
			}
		})
	}
}

func TestPaddleShootLaser(t *testing.T) {
	p := NewPaddle(150, 570, 100, 20, 8)

	if p.ShootLaser(30) {
		t.Error("ShootLaser() = true without laser effect")
	}

	p.GrantLaser(0, 0)
	if !p.ShootLaser(30) {
		t.Fatal("ShootLaser() = false with laser ready")
	}
	if p.ShootLaser(30) {
		t.Error("ShootLaser() = true during cooldown")
	}

	for tick := 1; tick <= 30; tick++ {
		p.Update(tick)
	}
	if !p.ShootLaser(30) {
		t.Error("ShootLaser() = false after cooldown elapsed")
	}
}

func TestPaddleEffectExpiry(t *testing.T) {
	p := NewPaddle(150, 570, 100, 20, 8)

	p.GrantSticky(10, 5)
	p.Update(14)
	if !p.Sticky {
		t.Error("sticky expired early")
	}
	p.Update(15)
	if p.Sticky {
		t.Error("sticky still active after its duration")
	}

	p.GrantLaser(10, 0)
	p.Update(100000)
	if !p.LaserActive {
		t.Error("laser without duration expired")
	}
}

func TestBallWalls(t *testing.T) {
	tests := []struct {
		name string
		ball Ball
		out  bool
		pos  core.Vec2
		vel  core.Vec2
	}{
		{
			name: "left wall",
			ball: Ball{Pos: core.Vec2{X: 4, Y: 300}, Vel: core.Vec2{X: -3, Y: -4}, Radius: 10},
			pos:  core.Vec2{X: 10, Y: 300},
			vel:  core.Vec2{X: 3, Y: -4},
		},
		{
			name: "right wall",
			ball: Ball{Pos: core.Vec2{X: 795, Y: 300}, Vel: core.Vec2{X: 3, Y: 4}, Radius: 10},
			pos:  core.Vec2{X: 790, Y: 300},
			vel:  core.Vec2{X: -3, Y: 4},
		},
		{
			name: "top wall",
			ball: Ball{Pos: core.Vec2{X: 300, Y: 2}, Vel: core.Vec2{X: 3, Y: -4}, Radius: 10},
			pos:  core.Vec2{X: 300, Y: 10},
			vel:  core.Vec2{X: 3, Y: 4},
		},
		{
			name: "bottom",
			ball: Ball{Pos: core.Vec2{X: 300, Y: 595}, Vel: core.Vec2{X: 3, Y: 4}, Radius: 10},
			out:  true,
			pos:  core.Vec2{X: 300, Y: 595},
			vel:  core.Vec2{X: 3, Y: 4},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.ball
			if got := b.CheckWalls(800, 600); got != tc.out {
				t.Errorf("CheckWalls() = %v, expected %v", got, tc.out)
			}
			if b.Pos != tc.pos || b.Vel != tc.vel {
				t.Errorf("ball = %v %v, expected %v %v", b.Pos, b.Vel, tc.pos, tc.vel)
			}
		})
	}
}

func TestBallPaddleBounce(t *testing.T) {
	maxAngle := math.Pi / 3
	p := NewPaddle(150, 570, 100, 20, 8)

	center := &Ball{Pos: core.Vec2{X: 200, Y: 562}, Vel: core.Vec2{X: 0, Y: 5}, Radius: 10}
	if !center.CheckPaddle(core.Player1, p, maxAngle) {
		t.Fatal("CheckPaddle() = false for a ball on the paddle")
	}
	if math.Abs(center.Vel.X) > 1e-9 || math.Abs(center.Vel.Y+5) > 1e-9 {
		t.Errorf("center hit velocity = %v, expected (0, -5)", center.Vel)
	}
	if center.Pos.Y != 560 {
		t.Errorf("ball Y = %v, expected 560", center.Pos.Y)
	}

	left := &Ball{Pos: core.Vec2{X: 150, Y: 565}, Vel: core.Vec2{X: 3, Y: 4}, Radius: 10}
	left.CheckPaddle(core.Player1, p, maxAngle)
	if left.Vel.X >= 0 || left.Vel.Y >= 0 {
		t.Errorf("left edge hit velocity = %v, expected up and left", left.Vel)
	}

	miss := &Ball{Pos: core.Vec2{X: 400, Y: 300}, Vel: core.Vec2{X: 0, Y: 5}, Radius: 10}
	if miss.CheckPaddle(core.Player1, p, maxAngle) {
		t.Error("CheckPaddle() = true for a distant ball")
	}
}

func TestBallStickyCatch(t *testing.T) {
	p := NewPaddle(150, 570, 100, 20, 8)
	p.GrantSticky(0, 0)

	b := &Ball{Pos: core.Vec2{X: 180, Y: 562}, Vel: core.Vec2{X: 0, Y: 5}, Radius: 10}
	if !b.CheckPaddle(core.Player1, p, math.Pi/3) {
		t.Fatal("CheckPaddle() = false")
	}
	if b.Attached != core.Player1 || b.AttachOffset != 30 {
		t.Errorf("ball attached=%v offset=%v, expected Player 1 at 30", b.Attached, b.AttachOffset)
	}
	if b.CheckPaddle(core.Player1, p, math.Pi/3) {
		t.Error("attached ball bounced off its own paddle")
	}

	p.Rect.X = 200
	b.Update(p)
	if b.Pos.X != 230 || b.Pos.Y != 560 {
		t.Errorf("attached ball at %v, expected (230, 560)", b.Pos)
	}

	b.Release()
	if b.Attached.Valid() || b.Vel.Y >= 0 {
		t.Errorf("released ball attached=%v vel=%v, expected free and rising", b.Attached, b.Vel)
	}
}

func TestBallPaddleSpeedPreserved(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := NewPaddle(150, 570, rapid.Float64Range(20, 200).Draw(t, "width"), 20, 8)
		x := rapid.Float64Range(p.Rect.Left(), p.Rect.Right()).Draw(t, "x")
		vx := rapid.Float64Range(-6, 6).Draw(t, "vx")
		vy := rapid.Float64Range(0.5, 6).Draw(t, "vy")

		b := &Ball{Pos: core.Vec2{X: x, Y: 565}, Vel: core.Vec2{X: vx, Y: vy}, Radius: 10}
		before := b.Speed()
		if !b.CheckPaddle(core.Player1, p, math.Pi/3) {
			t.Fatalf("ball at x=%v missed paddle %v", x, p.Rect)
		}
		if math.Abs(b.Speed()-before) > 1e-9 {
			t.Fatalf("speed changed from %v to %v", before, b.Speed())
		}
		if b.Vel.Y >= 0 {
			t.Fatalf("velocity %v not upward", b.Vel)
		}
	})
}

func TestBallBrickReflection(t *testing.T) {
	br := NewBrick(core.NewRectF(100, 50, 60, 20), core.ColorRed, 50, 0)

	tests := []struct {
		name string
		ball Ball
		vel  core.Vec2
	}{
		{"from below", Ball{Pos: core.Vec2{X: 130, Y: 78}, Vel: core.Vec2{X: 2, Y: -5}, Radius: 10}, core.Vec2{X: 2, Y: 5}},
		{"from above", Ball{Pos: core.Vec2{X: 130, Y: 42}, Vel: core.Vec2{X: 2, Y: 5}, Radius: 10}, core.Vec2{X: 2, Y: -5}},
		{"from the left", Ball{Pos: core.Vec2{X: 92, Y: 60}, Vel: core.Vec2{X: 5, Y: 1}, Radius: 10}, core.Vec2{X: -5, Y: 1}},
		{"from the right", Ball{Pos: core.Vec2{X: 168, Y: 60}, Vel: core.Vec2{X: -5, Y: 1}, Radius: 10}, core.Vec2{X: 5, Y: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.ball
			if !b.CheckBrick(br) {
				t.Fatal("CheckBrick() = false")
			}
			if b.Vel != tc.vel {
				t.Errorf("velocity = %v, expected %v", b.Vel, tc.vel)
			}
		})
	}

	far := Ball{Pos: core.Vec2{X: 130, Y: 80}, Vel: core.Vec2{X: 0, Y: -5}, Radius: 10}
	if far.CheckBrick(br) {
		t.Error("CheckBrick() = true at exactly one radius")
	}
}

func TestBrickHits(t *testing.T) {
	b := NewBrick(core.NewRectF(0, 0, 60, 20), core.ColorRed, 30, 0)
	b.HitsToBreak = 3

	if b.Hit() || b.Hit() {
		t.Error("brick destroyed before its third hit")
	}
	if b.HitsLeft() != 1 {
		t.Errorf("HitsLeft() = %d, expected 1", b.HitsLeft())
	}
	if !b.Hit() || !b.Destroyed() {
		t.Error("brick survived its third hit")
	}
}

func TestBrickDropChance(t *testing.T) {
	rng := NewSimpleRNG(7)
	never := NewBrick(core.NewRectF(0, 0, 60, 20), core.ColorRed, 10, 0)
	always := NewBrick(core.NewRectF(0, 0, 60, 20), core.ColorRed, 10, 1)

	for range 1000 {
		if never.ShouldDropPowerUp(rng) {
			t.Fatal("drop with chance 0")
		}
		if !always.ShouldDropPowerUp(rng) {
			t.Fatal("no drop with chance 1")
		}
	}
}

func TestSimpleRNGRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rng := NewSimpleRNG(rapid.Int64().Draw(t, "seed"))
		n := rapid.IntRange(1, 10).Draw(t, "n")
		for range 100 {
			if f := rng.Float64(); f < 0 || f >= 1 {
				t.Fatalf("Float64() = %v outside [0, 1)", f)
			}
			if i := rng.Intn(n); i < 0 || i >= n {
				t.Fatalf("Intn(%d) = %d", n, i)
			}
		}
	})
}
