package game

// Occupant is the owner of a cell. A cell is owned by exactly one of Empty, AI or Player.
type Occupant int

const (
	Empty Occupant = iota
	AI
	Player
)

// NoMove marks a board on which nothing has been placed yet.
const NoMove = -1

func (o Occupant) Opponent() Occupant {
	switch o {
	case AI:
		return Player
	case Player:
		return AI
	default:
		return Empty
	}
}

func (o Occupant) String() string {
	switch o {
	case AI:
		return "ai"
	case Player:
		return "player"
	default:
		return "empty"
	}
}

// ParseOccupant maps a configured first mover to an occupant. Anything but "ai" is the player.
func ParseOccupant(s string) Occupant {
	if s == "ai" || s == "AI" {
		return AI
	}
	return Player
}

// Evaluate scores the board from the perspective of the anchor's owner.
type Evaluate func(b *Board) int
