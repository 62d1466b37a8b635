package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	app "github.com/rocketscienceinc/tictactoe-pagerank/internal"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/config"
)

// main - is the entry point of the pagerank command. It initializes the configuration, logger, and ranks the corpus.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	err := app.RunPageRank(logger, conf, os.Args[1:], os.Stdout)
	if errors.Is(err, apperror.ErrUsage) {
		fmt.Fprintln(os.Stderr, "Usage: pagerank corpus")
		os.Exit(1)
	}

	if err != nil {
		panic(fmt.Errorf("pagerank failed: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	return config.MustLoad(config.Path())
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
