package brickduel

import (
	"math"

	"github.com/vovakirdan/brick-duel/internal/core"
)

// PlayerView is a copy of one player's visible state.
type PlayerView struct {
	ID          core.PlayerID
	Score       int
	Lives       int
	Paddle      core.RectF
	Sticky      bool
	LaserActive bool
}

// BallView is a copy of one ball.
type BallView struct {
	Pos      core.Vec2
	Radius   float64
	Attached bool
}

// BrickView is a copy of one brick.
type BrickView struct {
	Rect     core.RectF
	Color    core.Color
	HitsLeft int
}

// PowerUpView is a copy of one falling pickup.
type PowerUpView struct {
	Pos    core.Vec2
	Radius float64
	Type   PowerUpType
}

// Snapshot is a value copy of everything the renderer draws. It shares no
// memory with the round, so the round may keep mutating while it is drawn.
type Snapshot struct {
	Width, Height float64
	Mid           float64
	Tick          int
	Layout        int
	LayoutName    string
	Paused        bool
	GameOver      bool
	Winner        core.PlayerID

	Players  [2]PlayerView
	Balls    []BallView
	Bricks   []BrickView
	PowerUps []PowerUpView
	Lasers   []core.RectF
}

// Snapshot returns the current round state as a Snapshot.
func (r *Round) Snapshot() Snapshot {
	s := Snapshot{
		Width:      r.cfg.Arena.Width,
		Height:     r.cfg.Arena.Height,
		Mid:        r.cfg.Arena.Mid(),
		Tick:       r.Tick,
		Layout:     r.Layout,
		LayoutName: LayoutName(r.Layout),
		Paused:     r.Paused,
		GameOver:   r.GameOver,
		Winner:     r.Winner,
		Balls:      make([]BallView, 0, len(r.Balls)),
		Bricks:     make([]BrickView, 0, len(r.Bricks)),
		PowerUps:   make([]PowerUpView, 0, len(r.PowerUps)),
		Lasers:     make([]core.RectF, 0, len(r.Lasers)),
	}

	for i, p := range r.Players {
		s.Players[i] = PlayerView{
			ID:          p.ID,
			Score:       p.Score,
			Lives:       p.Lives,
			Paddle:      p.Paddle.Rect,
			Sticky:      p.Paddle.Sticky,
			LaserActive: p.Paddle.LaserActive,
		}
	}
	for _, b := range r.Balls {
		s.Balls = append(s.Balls, BallView{Pos: b.Pos, Radius: b.Radius, Attached: b.Attached.Valid()})
	}
	for _, br := range r.Bricks {
		s.Bricks = append(s.Bricks, BrickView{Rect: br.Rect, Color: br.Color, HitsLeft: br.HitsLeft()})
	}
	for _, pu := range r.PowerUps {
		s.PowerUps = append(s.PowerUps, PowerUpView{Pos: pu.Pos, Radius: pu.Radius, Type: pu.Type})
	}
	for _, l := range r.Lasers {
		s.Lasers = append(s.Lasers, l.Rect)
	}
	return s
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := uint64(s.Tick) //#nosec G115 -- hash computation
	mix := func(v float64) {
		h = h*31 + math.Float64bits(v)
	}
	mixInt := func(v int) {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	mixInt(s.Layout)
	for _, p := range s.Players {
		mixInt(p.Score)
		mixInt(p.Lives)
		mix(p.Paddle.X)
		mix(p.Paddle.W)
	}
	mixInt(len(s.Balls))
	for _, b := range s.Balls {
		mix(b.Pos.X)
		mix(b.Pos.Y)
	}
	mixInt(len(s.Bricks))
	for _, b := range s.Bricks {
		mixInt(b.HitsLeft)
	}
	mixInt(len(s.PowerUps))
	for _, p := range s.PowerUps {
		mixInt(int(p.Type))
		mix(p.Pos.Y)
	}
	mixInt(len(s.Lasers))
	return h
}
