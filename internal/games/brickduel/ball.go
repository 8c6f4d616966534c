package brickduel

import (
	"math"

	"github.com/vovakirdan/brick-duel/internal/core"
)

// Ball is a moving ball. Attached names the player whose paddle holds it;
// NoPlayer means the ball is free.
type Ball struct {
	Pos          core.Vec2 // Center
	Vel          core.Vec2 // Pixels per tick
	Radius       float64
	Attached     core.PlayerID
	AttachOffset float64 // Distance from the paddle's left edge while attached
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() core.RectF {
	return core.NewRectF(b.Pos.X-b.Radius, b.Pos.Y-b.Radius, b.Radius*2, b.Radius*2)
}

// Speed returns the magnitude of the velocity.
func (b *Ball) Speed() float64 {
	return b.Vel.Len()
}

// AttachTo pins the ball to owner's paddle at offset from its left edge.
func (b *Ball) AttachTo(owner core.PlayerID, p *Paddle, offset float64) {
	b.Attached = owner
	b.AttachOffset = offset
	b.Follow(p)
}

// Follow moves an attached ball onto the top of p.
func (b *Ball) Follow(p *Paddle) {
	b.Pos = core.Vec2{X: p.Rect.X + b.AttachOffset, Y: p.Rect.Top() - b.Radius}
}

// Update advances a free ball by its velocity. An attached ball rides on
// holder, which must be the paddle of b.Attached.
func (b *Ball) Update(holder *Paddle) {
	if b.Attached.Valid() && holder != nil {
		b.Follow(holder)
		return
	}
	b.Pos = b.Pos.Add(b.Vel)
}

// Release detaches the ball and makes sure it heads up.
func (b *Ball) Release() {
	b.Attached = core.NoPlayer
	b.Vel.Y = -math.Abs(b.Vel.Y)
}

// CheckWalls bounces the ball off the left, right and top walls and reports
// whether it has dropped past the bottom.
func (b *Ball) CheckWalls(width, height float64) bool {
	switch {
	case b.Pos.X-b.Radius < 0:
		b.Pos.X = b.Radius
		b.Vel.X = math.Abs(b.Vel.X)
	case b.Pos.X+b.Radius > width:
		b.Pos.X = width - b.Radius
		b.Vel.X = -math.Abs(b.Vel.X)
	}
	if b.Pos.Y-b.Radius < 0 {
		b.Pos.Y = b.Radius
		b.Vel.Y = math.Abs(b.Vel.Y)
	}
	return b.Pos.Y+b.Radius > height
}

// CheckPaddle bounces the ball off owner's paddle. The angle depends on where
// it struck: the center sends it straight up, the edges deflect it by up to
// maxAngle radians. A sticky paddle catches the ball instead. Returns whether
// the paddle was hit.
func (b *Ball) CheckPaddle(owner core.PlayerID, p *Paddle, maxAngle float64) bool {
	if b.Attached == owner {
		return false
	}
	if !b.Bounds().Touches(p.Rect) {
		return false
	}

	rel := (p.Rect.CenterX() - b.Pos.X) / (p.Rect.W / 2)
	b.Vel = core.BounceVelocity(b.Speed(), rel, maxAngle)
	b.Pos.Y = p.Rect.Top() - b.Radius

	if p.Sticky {
		b.Attached = owner
		b.AttachOffset = b.Pos.X - p.Rect.X
	}
	return true
}

// CheckBrick reflects the ball off br if they overlap. The face is chosen by
// the dominant axis from the brick's closest point to the ball center.
func (b *Ball) CheckBrick(br *Brick) bool {
	if !core.CircleIntersectsRect(b.Pos, b.Radius, br.Rect) {
		return false
	}
	off := core.ContactOffset(b.Pos, br.Rect)
	if math.Abs(off.X) > math.Abs(off.Y) {
		b.Vel.X = -b.Vel.X
	} else {
		b.Vel.Y = -b.Vel.Y
	}
	return true
}
