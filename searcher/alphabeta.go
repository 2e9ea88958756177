package searcher

import "nrow/game"

// AlphaBeta returns the minimax value of b for the side implied by maximizing, pruning sibling
// moves once beta <= alpha. The board is restored before returning.
func (s Search) AlphaBeta(b *game.Board, depth int, maximizing bool, alpha, beta int) int {
	s.Metrics.AddNode()

	moves := s.Generator.Moves(b)
	if score, ok := s.terminal(b, moves, depth, maximizing); ok {
		return score
	}

	side := mover(maximizing)
	if maximizing {
		best := NegInf
		for _, move := range moves {
			value := try(b, move, side, func() int {
				return s.AlphaBeta(b, depth-1, false, alpha, beta)
			})
			best = max(best, value)
			alpha = max(alpha, best)
			if beta <= alpha {
				s.Metrics.AddCutoff()
				break
			}
		}
		return best
	}

	best := PosInf
	for _, move := range moves {
		value := try(b, move, side, func() int {
			return s.AlphaBeta(b, depth-1, true, alpha, beta)
		})
		best = min(best, value)
		beta = min(beta, best)
		if beta <= alpha {
			s.Metrics.AddCutoff()
			break
		}
	}
	return best
}

// AlphaBeta searches with the default detector and no metrics.
func AlphaBeta(b *game.Board, generator game.MoveGenerator, depth int, maximizing bool) int {
	return NewSearch(generator).AlphaBeta(b, depth, maximizing, NegInf, PosInf)
}
