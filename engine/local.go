package engine

import (
	"fmt"
	"time"

	"nrow/agent"
	"nrow/experiments/metrics"
	"nrow/game"

	"github.com/rs/zerolog/log"
)

type Local struct {
	Game   *game.Game
	Agents map[game.Occupant]agent.Agent
}

func LocalEngine(settings game.Settings, ai, player agent.Agent) *Local {
	if ai == nil || player == nil {
		panic("both sides need an agent")
	}

	return &Local{
		Game: game.NewGame(settings),
		Agents: map[game.Occupant]agent.Agent{
			game.AI:     ai,
			game.Player: player,
		},
	}
}

// Run executes the entire game loop until the game is over.
func (e *Local) Run() (game.Status, metrics.GameMetric, []metrics.MoveMetric, error) {
	g := e.Game
	gameMetric := metrics.GameMetric{
		ID:             g.ID.String(),
		StartingPlayer: g.ToMove().String(),
		StartTime:      time.Now(),
	}

	log.Info().Msgf("game %s: %dx%d, %d in a row, %s policy, %s is starting",
		g.ID, g.Settings.Rows, g.Settings.Columns, g.Settings.RunLength, g.Settings.Policy, g.ToMove())

	var moveMetrics []metrics.MoveMetric
	status := g.Status()
	for !status.IsOver() && g.Moves() < MaxMoves {
		side := g.ToMove()
		move, searchMetric := e.Agents[side].FindMove(g)

		if err := g.Play(move); err != nil {
			return status, gameMetric, moveMetrics, fmt.Errorf("agent for %s failed: %w", side, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         g.Moves(),
			Player:       side.String(),
			Move:         move,
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("step %d: %s played %d (nodes=%d, cutoffs=%d)",
			g.Moves(), side, move, searchMetric.Nodes, searchMetric.Cutoffs)

		status = g.Status()
	}

	gameMetric.Winner = status.String()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = g.Moves()

	report := g.Report()
	log.Info().Msgf("game %s over after %d moves: %s (longest run %d through %d)",
		g.ID, g.Moves(), status, report.Longest(), report.Anchor)
	log.Debug().Msgf("final board:\n%s", g.Board)

	return status, gameMetric, moveMetrics, nil
}
