package game

type Status int

const (
	Ongoing Status = iota
	Tie
	AIWin
	PlayerWin
)

func (s Status) String() string {
	switch s {
	case Tie:
		return "NO ONE WINS, TIE!"
	case AIWin:
		return "AI WINS!"
	case PlayerWin:
		return "PLAYER WINS!"
	default:
		return "ONGOING"
	}
}

func (s Status) IsOver() bool {
	return s != Ongoing
}

// StatusOf derives the game status from the board and the move generator. A win on the last
// move takes precedence over a full board.
func StatusOf(b *Board, d Detector, gen MoveGenerator) Status {
	if d.IsWin(b) {
		if b.cells[b.lastMove].State == AI {
			return AIWin
		}
		return PlayerWin
	}
	if len(gen.Moves(b)) == 0 {
		return Tie
	}
	return Ongoing
}
