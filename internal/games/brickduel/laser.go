package brickduel

import "github.com/vovakirdan/brick-duel/internal/core"

// Laser is a bolt fired upward from a paddle.
type Laser struct {
	Rect   core.RectF
	Speed  float64
	Owner  core.PlayerID
	Active bool
}

// NewLaser creates a bolt centered on x with its top at y.
func NewLaser(x, y, w, h, speed float64, owner core.PlayerID) *Laser {
	return &Laser{
		Rect:   core.NewRectF(x-w/2, y, w, h),
		Speed:  speed,
		Owner:  owner,
		Active: true,
	}
}

// Update moves the bolt up.
func (l *Laser) Update() {
	l.Rect.Y -= l.Speed
}

// OffScreen reports whether the bolt has left through the top.
func (l *Laser) OffScreen() bool {
	return l.Rect.Bottom() < 0
}
