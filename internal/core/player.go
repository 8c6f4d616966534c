package core

// PlayerID identifies one side of the split-screen arena.
// Player1 owns the left half, Player2 the right half.
type PlayerID int

const (
	NoPlayer PlayerID = iota // No owner; also used for a drawn game
	Player1
	Player2
)

// Players lists both sides in index order.
var Players = [2]PlayerID{Player1, Player2}

// Valid reports whether id names an actual player.
func (id PlayerID) Valid() bool {
	return id == Player1 || id == Player2
}

// Index returns the zero-based slot for id (Player1 -> 0, Player2 -> 1).
// Callers must check Valid first.
func (id PlayerID) Index() int {
	return int(id) - 1
}

// Opponent returns the other player, or NoPlayer for an invalid id.
func (id PlayerID) Opponent() PlayerID {
	switch id {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}

// String returns a human-readable name for the player.
func (id PlayerID) String() string {
	switch id {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "None"
	}
}
