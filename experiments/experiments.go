package experiments

import (
	"context"
	"fmt"

	"nrow/agent"
	"nrow/engine"
	"nrow/experiments/metrics"
	"nrow/game"
	"nrow/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	Settings  game.Settings
	Games     int    // Per match up
	OutputDir string // Root directory for CSV reports
	Parallel  int    // Games played at once; every game owns its board
}

// Result summarises an experiment run.
type Result struct {
	Dir     string
	Outcome map[int]map[game.Status]int // Matchup index -> status -> count
}

// RunDepthExperiment pairs deeper searchers with a depth 0 baseline.
func RunDepthExperiment(ctx context.Context, opts Options) (Result, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.MinimaxAgent, Depth: 0, Pruning: true}
	depthConfigs := []metrics.AgentConfig{
		{ID: 1, Kind: metrics.MinimaxAgent, Depth: 1, Pruning: true},
		{ID: 2, Kind: metrics.MinimaxAgent, Depth: 2, Pruning: true},
		{ID: 3, Kind: metrics.MinimaxAgent, Depth: 3, Pruning: true},
		{ID: 4, Kind: metrics.MinimaxAgent, Depth: 4, Pruning: true},
	}

	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, baseline})
	}

	return Run(ctx, opts, "depth", append(depthConfigs, baseline), matchUps)
}

// RunPruningExperiment plays pruned and unpruned searchers of equal depth against a random
// baseline so their node counts can be compared move by move.
func RunPruningExperiment(ctx context.Context, opts Options) (Result, error) {
	depth := opts.Settings.Sanitize().MaxDepth
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.RandomAgent, Seed: 1}
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: metrics.MinimaxAgent, Depth: depth, Pruning: true},
		{ID: 2, Kind: metrics.MinimaxAgent, Depth: depth, Pruning: false},
	}

	matchUps := [][2]metrics.AgentConfig{
		{configs[0], baseline},
		{configs[1], baseline},
	}

	return Run(ctx, opts, "pruning", append(configs, baseline), matchUps)
}

type gameResult struct {
	status     game.Status
	record     metrics.GameRecord
	moveRecord []metrics.MoveRecord
}

// Run plays opts.Games games per matchup, the first config playing the AI side, and writes the
// agent configs, game records and move records as CSV.
func Run(ctx context.Context, opts Options, name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) (Result, error) {
	if opts.Games <= 0 {
		return Result{}, fmt.Errorf("experiment %s needs at least one game per matchup", name)
	}
	runID := uuid.New().String()
	results := make([][]gameResult, len(matchUps))
	for mi := range results {
		results[mi] = make([]gameResult, opts.Games)
	}

	log.Info().Msgf("starting %s experiment %s...", name, runID)

	g, ctx := errgroup.WithContext(ctx)
	if opts.Parallel > 0 {
		g.SetLimit(opts.Parallel)
	}
	for mi, matchup := range matchUps {
		for i := 0; i < opts.Games; i++ {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := runGame(opts.Settings, matchup, mi, i)
				if err != nil {
					return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
				}
				results[mi][i] = result
				log.Info().Msgf("completed matchup %d of %d game %d of %d: %s", mi+1, len(matchUps), i+1, opts.Games, result.status)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	log.Info().Msgf("completed %s experiment", name)

	result := Result{Outcome: map[int]map[game.Status]int{}}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	for mi, games := range results {
		result.Outcome[mi] = map[game.Status]int{}
		for _, r := range games {
			result.Outcome[mi][r.status]++
			gameRecords = append(gameRecords, r.record)
			moveRecords = append(moveRecords, r.moveRecord...)
		}
	}

	writer, err := metrics.NewWriter(opts.OutputDir, name, runID)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	result.Dir = writer.Dir()

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return result, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return result, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return result, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return result, nil
}

// runGame plays one game. Odd games hand the first move to the other side.
func runGame(settings game.Settings, matchup [2]metrics.AgentConfig, mi, i int) (gameResult, error) {
	if i%2 == 1 {
		settings.FirstMover = settings.Sanitize().FirstMover.Opponent()
	}
	ai := createAgent(matchup[0], settings, i)
	player := createAgent(matchup[1], settings, i)

	e := engine.LocalEngine(settings, ai, player)
	status, gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return gameResult{}, err
	}

	moveRecords := make([]metrics.MoveRecord, 0, len(moveMetrics))
	for _, mm := range moveMetrics {
		moveRecords = append(moveRecords, metrics.MoveRecord{Game: gameMetric.ID, MoveMetric: mm})
	}
	return gameResult{
		status: status,
		record: metrics.GameRecord{
			Matchup:    mi + 1,
			AI:         matchup[0].ID,
			Player:     matchup[1].ID,
			GameMetric: gameMetric,
		},
		moveRecord: moveRecords,
	}, nil
}

func createAgent(config metrics.AgentConfig, settings game.Settings, gameIndex int) agent.Agent {
	if config.Kind == metrics.RandomAgent {
		return agent.NewRandomAgent(config.Seed + uint64(gameIndex))
	}

	selector := searcher.NewSelectorFor(settings,
		searcher.WithDepth(config.Depth),
		searcher.WithPruning(config.Pruning),
		searcher.WithMetrics(),
	)
	return agent.NewMinimaxAgent(selector)
}
