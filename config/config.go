package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"nrow/game"
	"nrow/meta"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Rows       int    `yaml:"rows"`
	Columns    int    `yaml:"columns"`
	RunLength  int    `yaml:"run_length"`
	MaxDepth   int    `yaml:"max_depth"`
	FirstMover string `yaml:"first_mover"` // "ai" or "player"
	Policy     string `yaml:"policy"`      // "free" or "gravity"
	Games      int    `yaml:"games"`
	Parallel   int    `yaml:"parallel"`
	OutputDir  string `yaml:"output_dir"`
	LogLevel   string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Rows:       meta.DEFAULT_ROWS,
		Columns:    meta.DEFAULT_COLUMNS,
		RunLength:  meta.DEFAULT_RUN_LENGTH,
		MaxDepth:   meta.DEFAULT_MAX_DEPTH,
		FirstMover: game.Player.String(),
		Policy:     game.PolicyFree.String(),
		Games:      meta.DEFAULT_GAMES,
		Parallel:   meta.DEFAULT_PARALLEL,
		OutputDir:  meta.DEFAULT_OUTPUT_DIR,
		LogLevel:   meta.DEFAULT_LOG_LEVEL,
	}
}

// Load layers the defaults, an optional YAML file and the environment, in that order.
// Env files are read with godotenv (".env" when none are given); a missing env file is not an
// error, and variables already set in the process win over the files.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg.Rows = GetEnvAsInt("NROW_ROWS", cfg.Rows)
	cfg.Columns = GetEnvAsInt("NROW_COLUMNS", cfg.Columns)
	cfg.RunLength = GetEnvAsInt("NROW_RUN_LENGTH", cfg.RunLength)
	cfg.MaxDepth = GetEnvAsInt("NROW_MAX_DEPTH", cfg.MaxDepth)
	cfg.FirstMover = GetEnv("NROW_FIRST_MOVER", cfg.FirstMover)
	cfg.Policy = GetEnv("NROW_POLICY", cfg.Policy)
	cfg.Games = GetEnvAsInt("NROW_GAMES", cfg.Games)
	cfg.Parallel = GetEnvAsInt("NROW_PARALLEL", cfg.Parallel)
	cfg.OutputDir = GetEnv("NROW_OUTPUT_DIR", cfg.OutputDir)
	cfg.LogLevel = GetEnv("NROW_LOG_LEVEL", cfg.LogLevel)

	return cfg, nil
}

// Settings converts the configuration into clamped game settings.
func (c Config) Settings() game.Settings {
	raw := game.Settings{
		Rows:       c.Rows,
		Columns:    c.Columns,
		RunLength:  c.RunLength,
		MaxDepth:   c.MaxDepth,
		FirstMover: game.ParseOccupant(strings.ToLower(strings.TrimSpace(c.FirstMover))),
		Policy:     game.ParsePolicy(c.Policy),
	}
	settings := raw.Sanitize()
	if settings != raw {
		log.Debug().Msgf("clamped settings %+v to %+v", raw, settings)
	}
	return settings
}

// Level parses the configured log level, falling back to info.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Msgf("invalid integer value for %s: %s, using %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
