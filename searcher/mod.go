package searcher

import (
	"fmt"
	"math"

	"nrow/experiments/metrics"
	"nrow/game"
)

// Finite bounds for the alpha-beta window. Real scores stay within [-K, K].
const (
	NegInf = math.MinInt32
	PosInf = math.MaxInt32
)

const TieScore = 0

// Unbounded is a depth the search never reaches on b, so every line is played out to a win or a
// full board.
func Unbounded(b *game.Board) int {
	return b.Size()
}

// Search scores positions for the AI (maximizing) against the player (minimizing).
// It carries no state between calls other than the metrics collector.
type Search struct {
	Generator game.MoveGenerator
	Detector  game.Detector
	Metrics   metrics.Collector
	// Evaluate scores a position at the depth limit. The detector's heuristic is used when nil.
	Evaluate game.Evaluate
	// WinFirst looks for a win before scoring a position with no moves left as a tie.
	// By default a win on the last vacant cell counts as a tie.
	WinFirst bool
}

func NewSearch(generator game.MoveGenerator) Search {
	return Search{
		Generator: generator,
		Detector:  game.DefaultDetector,
		Metrics:   metrics.NewDummyCollector(),
	}
}

// terminal scores a position that ends the search early. ok is false when the search has to
// go on.
func (s Search) terminal(b *game.Board, moves []int, depth int, maximizing bool) (score int, ok bool) {
	opposingWon := s.Detector.IsWin(b)
	if len(moves) == 0 && (!s.WinFirst || !opposingWon) {
		s.Metrics.AddTerminal()
		return TieScore, true
	}
	if opposingWon {
		s.Metrics.AddTerminal()
		if maximizing {
			return -b.RunLength(), true
		}
		return b.RunLength(), true
	}
	if depth <= 0 {
		s.Metrics.AddLeaf()
		score := s.evaluate(b)
		if maximizing {
			return -score, true
		}
		return score, true
	}
	return 0, false
}

func (s Search) evaluate(b *game.Board) int {
	if s.Evaluate != nil {
		return s.Evaluate(b)
	}
	return s.Detector.Heuristic(b)
}

// try places move for mover, scores the resulting position and restores the board,
// including the last move.
func try(b *game.Board, move int, mover game.Occupant, score func() int) int {
	last := b.LastMove()
	if err := b.Place(move, mover); err != nil {
		panic(fmt.Sprintf("generator produced an unplayable move: %v", err))
	}
	value := score()
	b.SetLastMove(last)
	b.Undo(move)
	return value
}

func mover(maximizing bool) game.Occupant {
	if maximizing {
		return game.AI
	}
	return game.Player
}
