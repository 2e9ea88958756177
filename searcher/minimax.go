package searcher

import "nrow/game"

// Minimax scores like AlphaBeta but visits every move. It is the reference the pruned search
// is checked against.
func (s Search) Minimax(b *game.Board, depth int, maximizing bool) int {
	s.Metrics.AddNode()

	moves := s.Generator.Moves(b)
	if score, ok := s.terminal(b, moves, depth, maximizing); ok {
		return score
	}

	side := mover(maximizing)
	best := PosInf
	if maximizing {
		best = NegInf
	}
	for _, move := range moves {
		value := try(b, move, side, func() int {
			return s.Minimax(b, depth-1, !maximizing)
		})
		if maximizing {
			best = max(best, value)
		} else {
			best = min(best, value)
		}
	}
	return best
}

func Minimax(b *game.Board, generator game.MoveGenerator, depth int, maximizing bool) int {
	return NewSearch(generator).Minimax(b, depth, maximizing)
}
