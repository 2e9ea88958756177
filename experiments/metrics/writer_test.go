package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "depth", "run")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "depth", "run"), w.Dir())

	t.Run("writing agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Kind: MinimaxAgent, Depth: 3, Pruning: true},
			{ID: 2, Kind: RandomAgent, Seed: 42},
		})
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(w.Dir(), "agent_configs.csv"))
		require.NoError(t, err)
		require.Equal(t, "id,kind,depth,pruning,seed\n1,minimax,3,true,0\n2,random,0,false,42\n", string(data))
	})

	t.Run("writing game and move records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		require.NoError(t, w.WriteGameRecords([]GameRecord{{
			Matchup: 1,
			AI:      1,
			Player:  2,
			GameMetric: GameMetric{
				ID:             "g1",
				StartingPlayer: "ai",
				Winner:         "AI WINS!",
				StartTime:      start,
				EndTime:        start.Add(time.Second),
				Duration:       time.Second,
				TotalMoves:     5,
			},
		}}))
		require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
			Game:       "g1",
			MoveMetric: MoveMetric{Step: 1, Player: "ai", Move: 4, SearchMetric: SearchMetric{Depth: 3, Nodes: 10}},
		}}))

		games, err := os.ReadFile(filepath.Join(w.Dir(), "game_records.csv"))
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(games)), "\n")
		require.Len(t, lines, 2)
		require.Equal(t, "g1,1,1,2,ai,AI WINS!,2024-01-02T03:04:05Z,2024-01-02T03:04:06Z,1s,5", lines[1])

		moves, err := os.ReadFile(filepath.Join(w.Dir(), "move_records.csv"))
		require.NoError(t, err)
		lines = strings.Split(strings.TrimSpace(string(moves)), "\n")
		require.Equal(t, "g1,1,ai,4,3,false,0s,10,0,0,0,0", lines[1])
	})

	t.Run("failing when the directory is gone", func(t *testing.T) {
		gone, err := NewWriter(t.TempDir(), "depth", "gone")
		require.NoError(t, err)
		require.NoError(t, os.RemoveAll(gone.Dir()))

		err = gone.WriteAgentConfigs([]AgentConfig{{ID: 1, Kind: RandomAgent}})

		require.Error(t, err)
		require.Contains(t, err.Error(), "agent_configs.csv")
	})
}
