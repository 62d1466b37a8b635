package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/entity"
)

const DefaultPath = "./config.yml"

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	PageRank  PageRank  `yaml:"pagerank"`
	TicTacToe TicTacToe `yaml:"tictactoe"`
}

type PageRank struct {
	Damping       float64 `yaml:"damping" env:"PAGERANK_DAMPING" env-default:"0.85"`
	Samples       int     `yaml:"samples" env:"PAGERANK_SAMPLES" env-default:"10000"`
	Threshold     float64 `yaml:"threshold" env:"PAGERANK_THRESHOLD" env-default:"0.001"`
	MaxIterations int     `yaml:"max-iterations" env:"PAGERANK_MAX_ITERATIONS" env-default:"10000"`
	// Seed of the random walk, 0 seeds from the clock.
	Seed      uint64 `yaml:"seed" env:"PAGERANK_SEED" env-default:"0"`
	ChartPath string `yaml:"chart-path" env:"PAGERANK_CHART_PATH" env-default:""`
}

type TicTacToe struct {
	HumanMark string `yaml:"human-mark" env:"TICTACTOE_HUMAN_MARK" env-default:"X"`
	NoColor   bool   `yaml:"no-color" env:"TICTACTOE_NO_COLOR"`
}

// Path - returns the config file path from CONFIG_PATH or the default one.
func Path() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}

	return DefaultPath
}

// Load - reads the config file at path when it exists, the environment
// otherwise, and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	switch strings.ToLower(that.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", apperror.ErrInvalidConfig, that.LogLevel)
	}

	if that.PageRank.Damping < 0 || that.PageRank.Damping > 1 {
		return fmt.Errorf("%w: damping %v is outside [0, 1]", apperror.ErrInvalidConfig, that.PageRank.Damping)
	}

	if that.PageRank.Samples <= 0 {
		return fmt.Errorf("%w: samples must be positive", apperror.ErrInvalidConfig)
	}

	if that.PageRank.Threshold <= 0 {
		return fmt.Errorf("%w: threshold must be positive", apperror.ErrInvalidConfig)
	}

	if that.PageRank.MaxIterations <= 0 {
		return fmt.Errorf("%w: max iterations must be positive", apperror.ErrInvalidConfig)
	}

	if _, err := entity.ParseMark(that.TicTacToe.HumanMark); err != nil {
		return fmt.Errorf("%w: human mark: %w", apperror.ErrInvalidConfig, err)
	}

	return nil
}
