package main

import (
	"fmt"
	"log/slog"
	"os"

	app "github.com/rocketscienceinc/tictactoe-pagerank/internal"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/config"
)

// main - plays Tic-Tac-Toe in the terminal against the minimax bot.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := config.MustLoad(config.Path())

	var level slog.Level
	if err := level.UnmarshalText([]byte(conf.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := app.RunGame(logger, conf, os.Stdin, os.Stdout); err != nil {
		panic(fmt.Errorf("game failed: %w", err))
	}
}
