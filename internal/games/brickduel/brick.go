package brickduel

import "github.com/vovakirdan/brick-duel/internal/core"

// Brick is a destructible block.
type Brick struct {
	Rect        core.RectF
	Color       core.Color
	Points      int
	HitsToBreak int
	Hits        int
	DropChance  float64 // Probability of dropping a power-up when destroyed
}

// NewBrick creates a one-hit brick.
func NewBrick(rect core.RectF, color core.Color, points int, dropChance float64) *Brick {
	return &Brick{
		Rect:        rect,
		Color:       color,
		Points:      points,
		HitsToBreak: 1,
		DropChance:  dropChance,
	}
}

// Hit registers one hit and reports whether the brick is now destroyed.
func (b *Brick) Hit() bool {
	b.Hits++
	return b.Destroyed()
}

// Destroyed reports whether the brick has taken enough hits.
func (b *Brick) Destroyed() bool {
	return b.Hits >= b.HitsToBreak
}

// HitsLeft returns the number of hits still needed.
func (b *Brick) HitsLeft() int {
	return max(0, b.HitsToBreak-b.Hits)
}

// ShouldDropPowerUp rolls the brick's drop chance.
func (b *Brick) ShouldDropPowerUp(rng *SimpleRNG) bool {
	return rng.Float64() < b.DropChance
}
