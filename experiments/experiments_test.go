package experiments

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"nrow/experiments/metrics"
	"nrow/game"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRun(t *testing.T) {
	t.Run("writing every report", func(t *testing.T) {
		settings := game.DefaultSettings()
		settings.MaxDepth = 2
		opts := Options{Settings: settings, Games: 2, OutputDir: t.TempDir(), Parallel: 2}

		result, err := RunPruningExperiment(context.Background(), opts)

		require.NoError(t, err)
		require.Len(t, result.Outcome, 2)
		for _, outcome := range result.Outcome {
			total := 0
			for status, count := range outcome {
				require.True(t, status.IsOver())
				total += count
			}
			require.Equal(t, 2, total)
		}

		configs := readCSV(t, filepath.Join(result.Dir, "agent_configs.csv"))
		require.Equal(t, []string{"id", "kind", "depth", "pruning", "seed"}, configs[0])
		require.Len(t, configs, 4)

		games := readCSV(t, filepath.Join(result.Dir, "game_records.csv"))
		require.Equal(t, "id", games[0][0])
		require.Len(t, games, 5)

		moves := readCSV(t, filepath.Join(result.Dir, "move_records.csv"))
		require.Equal(t, "game", moves[0][0])
		require.Greater(t, len(moves), 4*5, "Every game should take at least five moves")
	})

	t.Run("alternating the first mover", func(t *testing.T) {
		settings := game.DefaultSettings()
		settings.MaxDepth = 1
		config := metrics.AgentConfig{ID: 1, Kind: metrics.MinimaxAgent, Depth: 1, Pruning: true}
		baseline := metrics.AgentConfig{ID: 2, Kind: metrics.RandomAgent, Seed: 3}

		even, err := runGame(settings, [2]metrics.AgentConfig{config, baseline}, 0, 0)
		require.NoError(t, err)
		odd, err := runGame(settings, [2]metrics.AgentConfig{config, baseline}, 0, 1)
		require.NoError(t, err)

		require.Equal(t, "player", even.record.StartingPlayer)
		require.Equal(t, "ai", odd.record.StartingPlayer)
		require.Equal(t, 1, even.record.Matchup)
		require.Equal(t, 2, even.record.Player)
	})

	t.Run("rejecting an empty run", func(t *testing.T) {
		_, err := RunDepthExperiment(context.Background(), Options{Settings: game.DefaultSettings(), OutputDir: t.TempDir()})

		require.Error(t, err)
	})

	t.Run("stopping on a cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := RunDepthExperiment(ctx, Options{Settings: game.DefaultSettings(), Games: 1, OutputDir: t.TempDir()})

		require.ErrorIs(t, err, context.Canceled)
	})
}
