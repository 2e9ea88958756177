package game

import (
	"testing"

	"nrow/meta"

	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	require.Equal(t, meta.DEFAULT_ROWS, s.Rows)
	require.Equal(t, meta.DEFAULT_COLUMNS, s.Columns)
	require.Equal(t, meta.DEFAULT_RUN_LENGTH, s.RunLength)
	require.Equal(t, meta.DEFAULT_MAX_DEPTH, s.MaxDepth)
	require.Equal(t, s, s.Sanitize(), "Defaults should already be in range")
}

func TestSettingsSanitize(t *testing.T) {
	t.Run("keeping valid settings", func(t *testing.T) {
		s := Settings{Rows: 6, Columns: 7, RunLength: 4, MaxDepth: 5, FirstMover: AI, Policy: PolicyGravity}

		require.Equal(t, s, s.Sanitize())
	})

	t.Run("raising small dimensions to the minimum", func(t *testing.T) {
		s := Settings{Rows: 2, Columns: 0, RunLength: 1}.Sanitize()

		require.Equal(t, MinDimension, s.Rows)
		require.Equal(t, MinDimension, s.Columns)
		require.Equal(t, MinDimension, s.RunLength)
	})

	t.Run("taking absolute values", func(t *testing.T) {
		s := Settings{Rows: -4, Columns: -6, RunLength: -4, MaxDepth: -2}.Sanitize()

		require.Equal(t, 4, s.Rows)
		require.Equal(t, 6, s.Columns)
		require.Equal(t, 4, s.RunLength)
		require.Equal(t, 2, s.MaxDepth)
	})

	t.Run("clamping the run length to the larger dimension", func(t *testing.T) {
		s := Settings{Rows: 3, Columns: 5, RunLength: 8}.Sanitize()
		require.Equal(t, 5, s.RunLength)

		s = Settings{Rows: 3, Columns: 5, RunLength: 4}.Sanitize()
		require.Equal(t, 4, s.RunLength, "A run length that fits one dimension is kept")
	})

	t.Run("normalising the first mover and policy", func(t *testing.T) {
		s := Settings{FirstMover: Empty, Policy: Policy(7)}.Sanitize()

		require.Equal(t, Player, s.FirstMover)
		require.Equal(t, PolicyFree, s.Policy)
	})
}

func TestParseOccupant(t *testing.T) {
	require.Equal(t, AI, ParseOccupant("ai"))
	require.Equal(t, AI, ParseOccupant("AI"))
	require.Equal(t, Player, ParseOccupant("player"))
	require.Equal(t, Player, ParseOccupant("anyone"))
	require.Equal(t, Player, AI.Opponent())
	require.Equal(t, AI, Player.Opponent())
	require.Equal(t, Empty, Empty.Opponent())
}
