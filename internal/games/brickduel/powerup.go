package brickduel

import "github.com/vovakirdan/brick-duel/internal/core"

// PowerUpType is the closed set of pickups a brick can drop.
type PowerUpType int

const (
	PowerUpMultiBall PowerUpType = iota // Extra balls from the collector's paddle
	PowerUpSticky                       // Collector's paddle catches balls
	PowerUpLaser                        // Collector's paddle fires lasers
	PowerUpShrink                       // Opponent's paddle narrows
	PowerUpExpand                       // Collector's paddle widens
)

// AllPowerUps lists every pickup type in drop-roll order.
var AllPowerUps = []PowerUpType{PowerUpMultiBall, PowerUpSticky, PowerUpLaser, PowerUpShrink, PowerUpExpand}

// String returns the name of the pickup type.
func (t PowerUpType) String() string {
	switch t {
	case PowerUpMultiBall:
		return "Multiball"
	case PowerUpSticky:
		return "Sticky"
	case PowerUpLaser:
		return "Laser"
	case PowerUpShrink:
		return "Shrink"
	case PowerUpExpand:
		return "Expand"
	default:
		return "?"
	}
}

// Glyph returns the display character for a pickup type.
func (t PowerUpType) Glyph() rune {
	switch t {
	case PowerUpMultiBall:
		return 'M'
	case PowerUpSticky:
		return 'S'
	case PowerUpLaser:
		return 'L'
	case PowerUpShrink:
		return '-'
	case PowerUpExpand:
		return '+'
	default:
		return '?'
	}
}

// Color returns the render color of a pickup type.
func (t PowerUpType) Color() core.Color {
	switch t {
	case PowerUpMultiBall:
		return core.ColorYellow
	case PowerUpSticky:
		return core.ColorGreen
	case PowerUpLaser:
		return core.ColorRed
	case PowerUpShrink:
		return core.ColorBlue
	default:
		return core.ColorWhite
	}
}

// Apply performs the pickup's effect for collector.
func (t PowerUpType) Apply(r *Round, collector core.PlayerID) {
	p := r.Player(collector)
	if p == nil {
		return
	}
	cfg := r.cfg.PowerUps

	switch t {
	case PowerUpMultiBall:
		at := core.Vec2{X: p.Paddle.Rect.CenterX(), Y: p.Paddle.Rect.Top() - 10}
		for range cfg.MultiballCount {
			r.Balls = append(r.Balls, r.newFreeBall(at))
		}
	case PowerUpSticky:
		p.Paddle.GrantSticky(r.Tick, cfg.StickyTicks)
	case PowerUpLaser:
		p.Paddle.GrantLaser(r.Tick, cfg.LaserTicks)
	case PowerUpShrink:
		opp := collector.Opponent()
		r.Player(opp).Paddle.Resize(cfg.ShrinkFactor)
		r.clampPaddle(opp)
	case PowerUpExpand:
		p.Paddle.Resize(cfg.ExpandFactor)
		r.clampPaddle(collector)
	}
}

// PowerUp is a falling pickup.
type PowerUp struct {
	Pos    core.Vec2 // Center
	Type   PowerUpType
	Radius float64
	Speed  float64 // Fall speed, pixels per tick
	Active bool
}

// NewPowerUp creates an active pickup centered at pos.
func NewPowerUp(pos core.Vec2, t PowerUpType, radius, speed float64) *PowerUp {
	return &PowerUp{Pos: pos, Type: t, Radius: radius, Speed: speed, Active: true}
}

// Update moves the pickup down.
func (p *PowerUp) Update() {
	p.Pos.Y += p.Speed
}

// Bounds returns the pickup's bounding box.
func (p *PowerUp) Bounds() core.RectF {
	return core.NewRectF(p.Pos.X-p.Radius, p.Pos.Y-p.Radius, p.Radius*2, p.Radius*2)
}
