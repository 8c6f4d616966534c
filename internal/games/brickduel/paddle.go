package brickduel

import (
	"math"

	"github.com/vovakirdan/brick-duel/internal/core"
)

// Paddle is a player's bat. Rect is in arena pixels.
type Paddle struct {
	Rect          core.RectF
	Speed         float64
	Sticky        bool // Balls that touch it attach instead of bouncing
	LaserActive   bool // Action key fires lasers when no ball is attached
	LaserCooldown int  // Ticks until the next shot is allowed

	// Expiry ticks for timed effects; 0 means the effect lasts the round.
	stickyUntil int
	laserUntil  int
}

// NewPaddle creates a paddle with its top-left corner at (x, y).
func NewPaddle(x, y, w, h, speed float64) *Paddle {
	return &Paddle{Rect: core.NewRectF(x, y, w, h), Speed: speed}
}

// Move shifts the paddle by dir*Speed and keeps it inside [lo, hi].
func (p *Paddle) Move(dir int, lo, hi float64) {
	p.Rect.X += float64(dir) * p.Speed
	p.Clamp(lo, hi)
}

// Clamp keeps the whole paddle inside [lo, hi], narrowing it if it no
// longer fits.
func (p *Paddle) Clamp(lo, hi float64) {
	if p.Rect.W > hi-lo {
		p.Rect.W = hi - lo
	}
	p.Rect.X = core.ClampF(p.Rect.X, lo, hi-p.Rect.W)
}

// Resize scales the width by factor, rounding to whole pixels, and keeps
// the paddle's center where it was.
func (p *Paddle) Resize(factor float64) {
	center := p.Rect.CenterX()
	p.Rect.W = math.Max(1, math.Round(p.Rect.W*factor))
	p.Rect.X = center - p.Rect.W/2
}

// GrantSticky enables the sticky effect. A positive duration expires it
// that many ticks after now.
func (p *Paddle) GrantSticky(now, duration int) {
	p.Sticky = true
	p.stickyUntil = expiry(now, duration)
}

// GrantLaser enables the laser effect. A positive duration expires it
// that many ticks after now.
func (p *Paddle) GrantLaser(now, duration int) {
	p.LaserActive = true
	p.laserUntil = expiry(now, duration)
}

func expiry(now, duration int) int {
	if duration <= 0 {
		return 0
	}
	return now + duration
}

// Update runs the per-tick bookkeeping: cooldown and effect expiry.
func (p *Paddle) Update(tick int) {
	if p.LaserCooldown > 0 {
		p.LaserCooldown--
	}
	if p.stickyUntil > 0 && tick >= p.stickyUntil {
		p.Sticky = false
		p.stickyUntil = 0
	}
	if p.laserUntil > 0 && tick >= p.laserUntil {
		p.LaserActive = false
		p.laserUntil = 0
	}
}

// ShootLaser reports whether a laser may fire now and, if so, starts the
// cooldown.
func (p *Paddle) ShootLaser(cooldown int) bool {
	if !p.LaserActive || p.LaserCooldown > 0 {
		return false
	}
	p.LaserCooldown = cooldown
	return true
}
