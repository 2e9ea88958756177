package agent

import (
	"nrow/experiments/metrics"
	"nrow/game"
	"nrow/searcher"

	"golang.org/x/exp/rand"
)

type Agent interface {
	// FindMove returns the index to play for the side to move and performance metrics (if collected)
	FindMove(g *game.Game) (int, metrics.SearchMetric)
}

type minimaxAgent struct {
	selector *searcher.Selector
}

// NewMinimaxAgent returns an agent that plays the selector's choice for either side.
func NewMinimaxAgent(selector *searcher.Selector) Agent {
	return minimaxAgent{selector: selector}
}

func (a minimaxAgent) FindMove(g *game.Game) (int, metrics.SearchMetric) {
	// The selector always maximizes for the AI, so the player's view is searched on a swapped board
	if g.ToMove() == game.Player {
		g.Board.Swap()
		defer g.Board.Swap()
	}
	return a.selector.ChooseMoveWithMetrics(g.Board)
}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays uniformly among the legal moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(g *game.Game) (int, metrics.SearchMetric) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, metrics.SearchMetric{}
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}
}

type scriptedAgent struct {
	moves []int
	next  int
}

// NewScriptedAgent replays fixed choices, standing in for a human at the input layer.
// It returns game.NoMove once the script is exhausted.
func NewScriptedAgent(moves ...int) Agent {
	return &scriptedAgent{moves: moves}
}

func (a *scriptedAgent) FindMove(g *game.Game) (int, metrics.SearchMetric) {
	if a.next >= len(a.moves) {
		return game.NoMove, metrics.SearchMetric{}
	}
	move := a.moves[a.next]
	a.next++
	return move, metrics.SearchMetric{}
}
