package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/entity"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/tictactoe"
)

type GameUseCase interface {
	NewGame(human entity.Mark) (*tictactoe.Game, error)
	MakeTurn(game *tictactoe.Game, human entity.Mark, move entity.Move) error
}

type botService interface {
	MakeTurn(game *tictactoe.Game) (entity.Move, error)
}

type gameUseCase struct {
	logger *slog.Logger

	botService botService
}

func NewGameUseCase(logger *slog.Logger, botService botService) GameUseCase {
	return &gameUseCase{
		logger:     logger.With("component", "game_usecase"),
		botService: botService,
	}
}

// NewGame - starts a game against the bot. The bot opens when the human
// plays O.
func (that *gameUseCase) NewGame(human entity.Mark) (*tictactoe.Game, error) {
	if !human.IsPlayer() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, human)
	}

	game := tictactoe.NewGame(tictactoe.GenerateGameID())

	that.logger.Info("game started", "game_id", game.ID, "human", human)

	if human == entity.MarkO {
		if _, err := that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to open: %w", err)
		}
	}

	return game, nil
}

// MakeTurn - applies the human's move and lets the bot answer while the game
// is not over.
func (that *gameUseCase) MakeTurn(game *tictactoe.Game, human entity.Mark, move entity.Move) error {
	log := that.logger.With("method", "MakeTurn", "game_id", game.ID)

	if err := game.MakeTurn(human, move); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner)
		return nil
	}

	if _, err := that.botService.MakeTurn(game); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner)
	}

	return nil
}
