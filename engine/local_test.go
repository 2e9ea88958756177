package engine

import (
	"testing"

	"nrow/agent"
	"nrow/game"
	"nrow/searcher"

	"github.com/stretchr/testify/require"
)

func TestLocalEngine(t *testing.T) {
	t.Run("perfect play on 3x3 ends in a tie", func(t *testing.T) {
		for _, first := range []game.Occupant{game.AI, game.Player} {
			settings := game.DefaultSettings()
			settings.FirstMover = first
			ai := agent.NewMinimaxAgent(searcher.NewSelectorFor(settings))
			player := agent.NewMinimaxAgent(searcher.NewSelectorFor(settings))

			e := LocalEngine(settings, ai, player)
			status, gameMetric, moveMetrics, err := e.Run()

			require.NoError(t, err)
			require.Equal(t, game.Tie, status, "%s moving first\n%s", first, e.Game.Board)
			require.Equal(t, 9, gameMetric.TotalMoves)
			require.Equal(t, first.String(), gameMetric.StartingPlayer)
			require.Len(t, moveMetrics, 9)
		}
	})

	t.Run("perfect play scoring last cell wins also ends in a tie", func(t *testing.T) {
		for _, first := range []game.Occupant{game.AI, game.Player} {
			settings := game.DefaultSettings()
			settings.FirstMover = first
			ai := agent.NewMinimaxAgent(searcher.NewSelectorFor(settings, searcher.WithWinFirst()))
			player := agent.NewMinimaxAgent(searcher.NewSelectorFor(settings, searcher.WithWinFirst()))

			e := LocalEngine(settings, ai, player)
			status, gameMetric, moveMetrics, err := e.Run()

			require.NoError(t, err)
			require.Equal(t, game.Tie, status, "%s moving first\n%s", first, e.Game.Board)
			require.Equal(t, 9, gameMetric.TotalMoves)
			require.Equal(t, first.String(), gameMetric.StartingPlayer)
			require.Len(t, moveMetrics, 9)
		}
	})

	t.Run("recording a scripted win", func(t *testing.T) {
		e := LocalEngine(game.DefaultSettings(), agent.NewScriptedAgent(3, 4), agent.NewScriptedAgent(0, 1, 2))

		status, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.PlayerWin, status)
		require.Equal(t, game.PlayerWin.String(), gameMetric.Winner)
		require.Equal(t, 5, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 5)
		require.Equal(t, "player", moveMetrics[0].Player)
		require.Equal(t, 0, moveMetrics[0].Move)
		require.Equal(t, "ai", moveMetrics[1].Player)
		require.Equal(t, 5, moveMetrics[4].Step)
	})

	t.Run("failing on an illegal move", func(t *testing.T) {
		e := LocalEngine(game.DefaultSettings(), agent.NewScriptedAgent(0), agent.NewScriptedAgent(4, 4))

		_, _, moveMetrics, err := e.Run()

		require.ErrorIs(t, err, game.ErrIllegalMove)
		require.Len(t, moveMetrics, 2)
	})

	t.Run("failing when an agent runs out of moves", func(t *testing.T) {
		e := LocalEngine(game.DefaultSettings(), agent.NewScriptedAgent(), agent.NewScriptedAgent(4))

		_, _, _, err := e.Run()

		require.ErrorIs(t, err, game.ErrIllegalMove)
	})

	t.Run("requiring both agents", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(game.DefaultSettings(), nil, agent.NewScriptedAgent())
		})
	})
}
