package engine

import (
	"nrow/experiments/metrics"
	"nrow/game"
)

const MaxMoves = 10000

type Engine interface {
	// Run plays the game until it is won, tied or an agent fails to produce a legal move
	Run() (status game.Status, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
