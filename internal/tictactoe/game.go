package tictactoe

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/entity"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	// MarkTie is stored as the winner of a drawn game.
	MarkTie entity.Mark = "-"
)

// Game is a single session played over the rules of this package.
type Game struct {
	ID     string       `json:"id"`
	Board  entity.Board `json:"board"`
	Turn   entity.Mark  `json:"player_turn"`
	Winner entity.Mark  `json:"winner"`
	Status string       `json:"status"`
}

// GenerateGameID - generates a random numeric game identifier.
func GenerateGameID() string {
	n, err := rand.Int(rand.Reader, big.NewInt(99999999))
	if err != nil {
		return "0"
	}

	return n.String()
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  entity.NewBoard(),
		Turn:   entity.MarkX,
		Status: StatusOngoing,
	}
}

// MakeTurn - marks the cell for player if it is that player's turn.
func (that *Game) MakeTurn(player entity.Mark, move entity.Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != player {
		return apperror.ErrNotYourTurn
	}

	next, err := Result(that.Board, move)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.Board = next
	that.updateGameStatus()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == MarkTie
}

// updateGameStatus - checks the game status after a move.
func (that *Game) updateGameStatus() {
	if !Terminal(that.Board) {
		that.Turn = Player(that.Board)
		return
	}

	that.Status = StatusFinished
	that.Turn = entity.MarkEmpty

	if winner := Winner(that.Board); winner != entity.MarkEmpty {
		that.Winner = winner
	} else {
		that.Winner = MarkTie
	}
}
