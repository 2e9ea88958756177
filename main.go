package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"nrow/agent"
	"nrow/config"
	"nrow/engine"
	"nrow/experiments"
	"nrow/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	mode := flag.String("mode", "selfplay", "one of selfplay, depth, pruning")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *mode {
	case "selfplay":
		runSelfPlay(cfg)
	case "depth", "pruning":
		runExperiment(ctx, cfg, *mode)
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

// runSelfPlay plays one game between two searchers with the configured depth
func runSelfPlay(cfg config.Config) {
	settings := cfg.Settings()
	ai := agent.NewMinimaxAgent(searcher.NewSelectorFor(settings, searcher.WithMetrics()))
	player := agent.NewMinimaxAgent(searcher.NewSelectorFor(settings, searcher.WithMetrics()))

	e := engine.LocalEngine(settings, ai, player)
	status, gameMetric, _, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("self-play failed")
	}
	log.Info().Msgf("%s after %d moves in %s\n%s", status, gameMetric.TotalMoves, gameMetric.Duration, e.Game.Board)
}

func runExperiment(ctx context.Context, cfg config.Config, name string) {
	opts := experiments.Options{
		Settings:  cfg.Settings(),
		Games:     cfg.Games,
		OutputDir: cfg.OutputDir,
		Parallel:  cfg.Parallel,
	}

	var result experiments.Result
	var err error
	if name == "depth" {
		result, err = experiments.RunDepthExperiment(ctx, opts)
	} else {
		result, err = experiments.RunPruningExperiment(ctx, opts)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", name)
	}

	for mi, outcome := range result.Outcome {
		log.Info().Msgf("matchup %d: %v", mi+1, outcome)
	}
	log.Info().Msgf("results written to %s", result.Dir)
}
