package brickduel

import "github.com/vovakirdan/brick-duel/internal/core"

// Player is one side of the duel.
type Player struct {
	ID     core.PlayerID
	Score  int
	Lives  int
	Paddle *Paddle
}

// Alive reports whether the player still has lives left.
func (p *Player) Alive() bool {
	return p.Lives > 0
}
