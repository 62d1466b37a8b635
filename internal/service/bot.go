package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/entity"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	MakeTurn(game *tictactoe.Game) (entity.Move, error)
}

type botService struct {
	logger *slog.Logger
}

// NewBotService - returns a bot that plays the optimal move for whichever
// side is to move.
func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

func (that *botService) MakeTurn(game *tictactoe.Game) (entity.Move, error) {
	log := that.logger.With("method", "MakeTurn", "game_id", game.ID)

	if game.IsFinished() {
		return entity.Move{}, ErrNoAvailableMoves
	}

	move, ok := tictactoe.Minimax(game.Board)
	if !ok {
		return entity.Move{}, ErrNoAvailableMoves
	}

	player := game.Turn
	if err := game.MakeTurn(player, move); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("bot made turn", "player", player, "move", move.String())

	return move, nil
}
