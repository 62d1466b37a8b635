package application

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/config"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/crawler"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/entity"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/pagerank"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/report"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/service"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/usecase"
)

var ErrInputClosed = errors.New("input closed before the game ended")

// RunPageRank - ranks the corpus directory given as the only argument and
// prints the sampled and iterated ranks to out.
func RunPageRank(logger *slog.Logger, conf *config.Config, args []string, out io.Writer) error {
	log := logger.With("component", "app")

	if len(args) != 1 {
		return apperror.ErrUsage
	}

	options := []pagerank.Option{
		pagerank.WithLogger(logger),
		pagerank.WithDamping(conf.PageRank.Damping),
		pagerank.WithSamples(conf.PageRank.Samples),
		pagerank.WithThreshold(conf.PageRank.Threshold),
		pagerank.WithMaxIterations(conf.PageRank.MaxIterations),
	}
	if conf.PageRank.Seed != 0 {
		options = append(options, pagerank.WithSeed(conf.PageRank.Seed))
	}

	estimator, err := pagerank.New(options...)
	if err != nil {
		return fmt.Errorf("could not create estimator: %w", err)
	}

	rankUseCase := usecase.NewRankUseCase(logger, crawler.New(logger), estimator)

	log.Info("Ranking corpus", "directory", args[0])

	result, err := rankUseCase.Rank(os.DirFS(args[0]))
	if err != nil {
		return fmt.Errorf("could not rank corpus %s: %w", args[0], err)
	}

	if err = report.PrintRanks(out, report.SamplingTitle(result.Samples), result.Sampled); err != nil {
		return err
	}

	if err = report.PrintRanks(out, report.IterationTitle, result.Iterated); err != nil {
		return err
	}

	if conf.PageRank.ChartPath == "" {
		return nil
	}

	return writeChart(log, conf.PageRank.ChartPath, result)
}

func writeChart(log *slog.Logger, path string, result *usecase.Report) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create chart file: %w", err)
	}

	defer func() {
		if err = file.Close(); err != nil {
			log.Error("could not close chart file", "error", err)
		}
	}()

	if err = report.RenderChart(file, result.Sampled, result.Iterated); err != nil {
		return err
	}

	log.Info("Chart written", "path", path)

	return nil
}

// RunGame - plays one game of the human reading moves from in against the
// minimax bot, writing the board and prompts to out.
func RunGame(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	human, err := entity.ParseMark(conf.TicTacToe.HumanMark)
	if err != nil {
		return fmt.Errorf("could not parse human mark: %w", err)
	}

	gameUseCase := usecase.NewGameUseCase(logger, service.NewBotService(logger))
	renderer := report.NewBoardRenderer(!conf.TicTacToe.NoColor)

	game, err := gameUseCase.NewGame(human)
	if err != nil {
		return fmt.Errorf("could not start game: %w", err)
	}

	fmt.Fprintf(out, "You play %s.\n", human)

	scanner := bufio.NewScanner(in)
	for !game.IsFinished() {
		fmt.Fprint(out, "\n"+renderer.Render(game.Board))
		fmt.Fprint(out, "Your move (row col): ")

		if !scanner.Scan() {
			if err = scanner.Err(); err != nil {
				return fmt.Errorf("could not read move: %w", err)
			}

			return ErrInputClosed
		}

		move, err := ParseMove(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "Invalid move: %v\n", err)
			continue
		}

		if err = gameUseCase.MakeTurn(game, human, move); err != nil {
			fmt.Fprintf(out, "Invalid move: %v\n", err)
			continue
		}
	}

	fmt.Fprint(out, "\n"+renderer.Render(game.Board))
	fmt.Fprintln(out, gameOverMessage(game, human))

	return nil
}

// ParseMove - parses "row col" with both indexes in [0, 2].
func ParseMove(line string) (entity.Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return entity.Move{}, fmt.Errorf("%w: expected \"row col\", got %q", apperror.ErrInvalidCell, line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: row %q", apperror.ErrInvalidCell, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: col %q", apperror.ErrInvalidCell, fields[1])
	}

	move := entity.Move{Row: row, Col: col}
	if !move.IsValid() {
		return entity.Move{}, fmt.Errorf("%w: %s", apperror.ErrInvalidCell, move)
	}

	return move, nil
}

func gameOverMessage(game *tictactoe.Game, human entity.Mark) string {
	switch game.Winner {
	case tictactoe.MarkTie:
		return "Game Over: Tie."
	case human:
		return fmt.Sprintf("Game Over: %s wins. You win!", game.Winner)
	default:
		return fmt.Sprintf("Game Over: %s wins. The bot wins.", game.Winner)
	}
}
