// Package brickduel implements the two-player split-screen brick-breaker
// simulation: entities, power-ups, brick layouts and the per-tick round
// update. It is pure game logic with no rendering, audio or storage.
package brickduel

import (
	"math"
	"slices"

	"github.com/google/uuid"

	"github.com/vovakirdan/brick-duel/internal/config"
	"github.com/vovakirdan/brick-duel/internal/core"
)

// Round is the complete state of one match between two players.
type Round struct {
	ID       string // Unique per reset, used for match history
	Players  [2]*Player
	Balls    []*Ball
	Bricks   []*Brick
	PowerUps []*PowerUp
	Lasers   []*Laser
	Layout   int
	Paused   bool
	GameOver bool
	Winner   core.PlayerID
	Tick     int

	cfg  config.Config
	rng  *SimpleRNG
	seed int64
	cues []core.Cue

	// Bricks already counted this tick; a second contact only bounces.
	hit map[*Brick]bool
}

// NewRound creates a round ready to play.
func NewRound(cfg config.Config, seed int64) *Round {
	r := &Round{cfg: cfg, hit: make(map[*Brick]bool)}
	r.Reset(seed)
	return r
}

// Config returns the configuration the round was built with.
func (r *Round) Config() config.Config {
	return r.cfg
}

// Seed returns the seed of the current round.
func (r *Round) Seed() int64 {
	return r.seed
}

// Reset starts a fresh round: full lives, zero scores, starting layout and
// one ball attached to each paddle.
func (r *Round) Reset(seed int64) {
	cfg := r.cfg
	r.ID = uuid.NewString()
	r.seed = seed
	r.rng = NewSimpleRNG(seed)
	r.Tick = 0
	r.Paused = false
	r.GameOver = false
	r.Winner = core.NoPlayer
	r.cues = nil
	clear(r.hit)

	w, h := cfg.Arena.Width, cfg.Arena.Height
	pw := cfg.Paddle.Width
	top := h - cfg.Paddle.BottomOffset
	for i, id := range core.Players {
		x := math.Floor(w/4) - pw/2
		if id == core.Player2 {
			x = math.Floor(3*w/4) - pw/2
		}
		r.Players[i] = &Player{
			ID:     id,
			Lives:  cfg.Gameplay.Lives,
			Paddle: NewPaddle(x, top, pw, cfg.Paddle.Height, cfg.Paddle.Speed),
		}
		r.clampPaddle(id)
	}

	r.Balls = r.Balls[:0]
	for _, id := range core.Players {
		r.Balls = append(r.Balls, r.newAttachedBall(id))
	}
	r.PowerUps = nil
	r.Lasers = nil

	r.Layout = WrapLayout(max(1, cfg.Gameplay.StartLayout))
	r.Bricks = GenerateLayout(r.Layout, cfg.Arena, cfg.Bricks)
}

// Player returns the player with id, or nil for an invalid id.
func (r *Round) Player(id core.PlayerID) *Player {
	if !id.Valid() {
		return nil
	}
	return r.Players[id.Index()]
}

// SideOf returns the player whose half contains x.
func (r *Round) SideOf(x float64) core.PlayerID {
	if x < r.cfg.Arena.Mid() {
		return core.Player1
	}
	return core.Player2
}

// PaddleBounds returns the horizontal range id's paddle may occupy.
func (r *Round) PaddleBounds(id core.PlayerID) (lo, hi float64) {
	mid := r.cfg.Arena.Mid()
	if id == core.Player1 {
		return 0, mid - r.cfg.Arena.Inset
	}
	return mid + r.cfg.Arena.Inset, r.cfg.Arena.Width
}

func (r *Round) clampPaddle(id core.PlayerID) {
	lo, hi := r.PaddleBounds(id)
	r.Player(id).Paddle.Clamp(lo, hi)
}

// MovePaddle moves id's paddle one step in dir (-1 left, +1 right).
func (r *Round) MovePaddle(id core.PlayerID, dir int) {
	p := r.Player(id)
	if p == nil || dir == 0 || r.Paused || r.GameOver {
		return
	}
	lo, hi := r.PaddleBounds(id)
	p.Paddle.Move(dir, lo, hi)
}

// HandleAction performs id's action key: release an attached ball, or fire
// a laser if the paddle has one ready. Returns the cue to play, or "" when
// nothing happened.
func (r *Round) HandleAction(id core.PlayerID) core.Cue {
	p := r.Player(id)
	if p == nil || r.Paused || r.GameOver {
		return ""
	}

	for _, b := range r.Balls {
		if b.Attached == id {
			b.Release()
			return core.CuePaddleHit
		}
	}

	if p.Paddle.ShootLaser(r.cfg.Laser.Cooldown) {
		lc := r.cfg.Laser
		r.Lasers = append(r.Lasers, NewLaser(p.Paddle.Rect.CenterX(), p.Paddle.Rect.Top(), lc.Width, lc.Height, lc.Speed, id))
		return core.CueLaser
	}
	return ""
}

// TogglePause flips the paused flag. Has no effect after game over.
func (r *Round) TogglePause() {
	if r.GameOver {
		return
	}
	r.Paused = !r.Paused
}

// State returns the per-tick summary of the round.
func (r *Round) State() core.GameState {
	s := core.GameState{
		Layout:   r.Layout,
		GameOver: r.GameOver,
		Paused:   r.Paused,
		Winner:   r.Winner,
	}
	for i, p := range r.Players {
		s.Scores[i] = p.Score
		s.Lives[i] = p.Lives
	}
	return s
}

// Update advances the round by one tick. It does nothing while paused or
// after game over.
func (r *Round) Update() core.StepResult {
	if r.Paused || r.GameOver {
		return core.StepResult{State: r.State()}
	}

	r.Tick++
	r.cues = nil
	clear(r.hit)

	for _, p := range r.Players {
		p.Paddle.Update(r.Tick)
	}
	r.updateBalls()
	r.checkLives()
	r.updatePowerUps()
	r.updateLasers()
	finished := r.checkGameOver()
	if len(r.Bricks) == 0 {
		r.advanceLayout()
	}

	return core.StepResult{State: r.State(), Cues: r.cues, Finished: finished}
}

func (r *Round) cue(c core.Cue) {
	r.cues = append(r.cues, c)
}

func (r *Round) updateBalls() {
	w, h := r.cfg.Arena.Width, r.cfg.Arena.Height
	maxAngle := r.cfg.Ball.MaxBounceAngle * math.Pi / 180
	lost := make(map[*Ball]bool)

	for _, b := range r.Balls {
		var holder *Paddle
		if p := r.Player(b.Attached); p != nil {
			holder = p.Paddle
		}
		b.Update(holder)

		if b.CheckWalls(w, h) {
			lost[b] = true
			continue
		}

		for _, p := range r.Players {
			if b.CheckPaddle(p.ID, p.Paddle, maxAngle) {
				r.cue(core.CuePaddleHit)
				break
			}
		}

		for _, br := range r.Bricks {
			if br.Destroyed() || !b.CheckBrick(br) {
				continue
			}
			r.cue(core.CueBrickHit)
			// Balls count a brick at most once per tick; they still reflect.
			if !r.hit[br] {
				r.hit[br] = true
				r.hitBrick(br, r.SideOf(b.Pos.X))
			}
			break
		}
	}

	r.Balls = slices.DeleteFunc(r.Balls, func(b *Ball) bool { return lost[b] })
	r.Bricks = slices.DeleteFunc(r.Bricks, (*Brick).Destroyed)
}

// hitBrick counts one hit on br for scorer.
func (r *Round) hitBrick(br *Brick, scorer core.PlayerID) {
	if !br.Hit() {
		return
	}

	r.Player(scorer).Score += br.Points
	if br.ShouldDropPowerUp(r.rng) {
		t := AllPowerUps[r.rng.Intn(len(AllPowerUps))]
		at := core.Vec2{X: br.Rect.CenterX(), Y: br.Rect.CenterY()}
		r.PowerUps = append(r.PowerUps, NewPowerUp(at, t, r.cfg.PowerUps.Radius, r.cfg.PowerUps.FallSpeed))
	}
}

// checkLives takes a life from each player with no ball on their half and
// serves them a fresh ball while they have lives left.
func (r *Round) checkLives() {
	var has [2]bool
	for _, b := range r.Balls {
		has[r.SideOf(b.Pos.X).Index()] = true
	}

	for _, p := range r.Players {
		if has[p.ID.Index()] || !p.Alive() {
			continue
		}
		p.Lives--
		if p.Alive() {
			r.Balls = append(r.Balls, r.newAttachedBall(p.ID))
		}
	}
}

func (r *Round) updatePowerUps() {
	h := r.cfg.Arena.Height
	for _, pu := range r.PowerUps {
		pu.Update()
		if pu.Pos.Y > h {
			pu.Active = false
			continue
		}
		for _, p := range r.Players {
			if pu.Bounds().Touches(p.Paddle.Rect) {
				r.cue(core.CuePowerUp)
				pu.Type.Apply(r, p.ID)
				pu.Active = false
				break
			}
		}
	}
	r.PowerUps = slices.DeleteFunc(r.PowerUps, func(pu *PowerUp) bool { return !pu.Active })
}

func (r *Round) updateLasers() {
	for _, l := range r.Lasers {
		l.Update()
		if l.OffScreen() {
			l.Active = false
			continue
		}
		for _, br := range r.Bricks {
			if br.Destroyed() || !l.Rect.Intersects(br.Rect) {
				continue
			}
			r.hitBrick(br, l.Owner)
			l.Active = false
			r.cue(core.CueBrickHit)
			break
		}
	}
	r.Lasers = slices.DeleteFunc(r.Lasers, func(l *Laser) bool { return !l.Active })
	r.Bricks = slices.DeleteFunc(r.Bricks, (*Brick).Destroyed)
}

// checkGameOver ends the round once either player is out of lives and
// reports whether this tick ended it.
func (r *Round) checkGameOver() bool {
	p1, p2 := r.Players[0], r.Players[1]
	if p1.Alive() && p2.Alive() {
		return false
	}

	r.GameOver = true
	r.cue(core.CueGameOver)
	switch {
	case !p1.Alive() && !p2.Alive():
		switch {
		case p1.Score > p2.Score:
			r.Winner = core.Player1
		case p2.Score > p1.Score:
			r.Winner = core.Player2
		default:
			r.Winner = core.NoPlayer
		}
	case !p1.Alive():
		r.Winner = core.Player2
	default:
		r.Winner = core.Player1
	}
	return true
}

func (r *Round) advanceLayout() {
	r.Layout = WrapLayout(r.Layout + 1)
	r.Bricks = GenerateLayout(r.Layout, r.cfg.Arena, r.cfg.Bricks)
}

// launchVelocity is the initial velocity of a served ball.
func (r *Round) launchVelocity() core.Vec2 {
	s := r.cfg.Ball.Speed
	return core.Vec2{X: r.rng.Sign() * s / 2, Y: -s}
}

// newAttachedBall serves a ball resting on the middle of id's paddle.
func (r *Round) newAttachedBall(id core.PlayerID) *Ball {
	p := r.Player(id)
	b := &Ball{Radius: r.cfg.Ball.Radius, Vel: r.launchVelocity()}
	b.AttachTo(id, p.Paddle, p.Paddle.Rect.W/2)
	return b
}

// newFreeBall launches a ball from pos.
func (r *Round) newFreeBall(pos core.Vec2) *Ball {
	return &Ball{Pos: pos, Radius: r.cfg.Ball.Radius, Vel: r.launchVelocity()}
}
