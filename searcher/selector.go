package searcher

import (
	"nrow/experiments/metrics"
	"nrow/game"
)

type Option func(s *Selector)

// Selector picks the AI's move by scoring every candidate with a full-window search.
type Selector struct {
	depth     int
	pruning   bool
	winFirst  bool
	generator game.MoveGenerator
	detector  game.Detector
	evaluate  game.Evaluate
	metrics   metrics.Collector
}

func WithDepth(depth int) Option {
	return func(s *Selector) {
		if depth >= 0 {
			s.depth = depth
		}
	}
}

func WithPolicy(policy game.Policy) Option {
	return func(s *Selector) {
		s.generator = policy.Generator()
	}
}

func WithGenerator(generator game.MoveGenerator) Option {
	return func(s *Selector) {
		if generator != nil {
			s.generator = generator
		}
	}
}

func WithDetector(detector game.Detector) Option {
	return func(s *Selector) {
		s.detector = detector
	}
}

// WithEvaluate replaces the heuristic used at the depth limit.
func WithEvaluate(evaluate game.Evaluate) Option {
	return func(s *Selector) {
		s.evaluate = evaluate
	}
}

func WithPruning(enabled bool) Option {
	return func(s *Selector) {
		s.pruning = enabled
	}
}

// WithWinFirst scores a filled board won by its last move as a win instead of a tie.
func WithWinFirst() Option {
	return func(s *Selector) {
		s.winFirst = true
	}
}

func WithMetrics() Option {
	return func(s *Selector) {
		s.metrics = metrics.NewCollector()
	}
}

func NewSelector(options ...Option) *Selector {
	s := &Selector{ // Default values
		depth:     game.DefaultSettings().MaxDepth,
		pruning:   true,
		generator: game.Free{},
		detector:  game.DefaultDetector,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// NewSelectorFor builds a selector from game settings.
func NewSelectorFor(settings game.Settings, options ...Option) *Selector {
	settings = settings.Sanitize()
	base := []Option{WithDepth(settings.MaxDepth), WithPolicy(settings.Policy)}
	return NewSelector(append(base, options...)...)
}

func (s *Selector) Depth() int {
	return s.depth
}

// ChooseMove returns the best move for the AI, or game.NoMove when there is none.
// Equal scores keep the earliest candidate, which is the lowest index.
func (s *Selector) ChooseMove(b *game.Board) int {
	move, _ := s.ChooseMoveWithMetrics(b)
	return move
}

func (s *Selector) ChooseMoveWithMetrics(b *game.Board) (int, metrics.SearchMetric) {
	search := Search{
		Generator: s.generator,
		Detector:  s.detector,
		Metrics:   s.metrics,
		Evaluate:  s.evaluate,
		WinFirst:  s.winFirst,
	}

	s.metrics.Start(s.depth, s.pruning)
	bestScore := NegInf
	bestMove := game.NoMove
	for _, move := range s.generator.Moves(b) {
		score := try(b, move, game.AI, func() int {
			if s.pruning {
				return search.AlphaBeta(b, s.depth, false, NegInf, PosInf)
			}
			return search.Minimax(b, s.depth, false)
		})
		if score > bestScore {
			bestScore = score
			bestMove = move
		}
	}
	s.metrics.SetScore(bestScore)
	return bestMove, s.metrics.Complete()
}

// ChooseMove selects with alpha-beta at the given depth.
func ChooseMove(b *game.Board, generator game.MoveGenerator, maxDepth int) int {
	return NewSelector(WithGenerator(generator), WithDepth(maxDepth)).ChooseMove(b)
}
