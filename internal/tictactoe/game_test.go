package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: create a new game
	actualGame := NewGame("123")

	// Then: the game state should correspond to the expected initial state
	expectedGame := &Game{
		ID:     "123",
		Board:  entity.NewBoard(),
		Turn:   x,
		Winner: e,
		Status: StatusOngoing,
	}

	require.Equal(t, expectedGame, actualGame)
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: create a new game
		game := NewGame("123")

		// When: player X makes a turn
		err := game.MakeTurn(x, entity.Move{Row: 0, Col: 0})
		require.NoError(t, err)

		// Then: the game state should reflect the turn and queue change
		expectedGame := &Game{
			ID:     "123",
			Board:  entity.Board{{x, e, e}, {e, e, e}, {e, e, e}},
			Turn:   o,
			Winner: e,
			Status: StatusOngoing,
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a game where X holds cell (0, 0)
		game := NewGame("123")
		err := game.MakeTurn(x, entity.Move{Row: 0, Col: 0})
		require.NoError(t, err)

		// When: player O tries to make a move to the same square
		err = game.MakeTurn(o, entity.Move{Row: 0, Col: 0})

		// Then: an error ErrCellOccupied must be returned
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		// Then: the game state remains unchanged
		assert.Equal(t, entity.Board{{x, e, e}, {e, e, e}, {e, e, e}}, game.Board)
		assert.Equal(t, o, game.Turn)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123")

		// When: player O tries to make a move when it is player X's turn
		err := game.MakeTurn(o, entity.Move{Row: 0, Col: 1})

		// Then: an error ErrNotYourTurn must be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, entity.NewBoard(), game.Board)
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		game := NewGame("123")

		err := game.MakeTurn(x, entity.Move{Row: 5, Col: 0})

		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: X is one move from the top row
		game := &Game{
			Board:  entity.Board{{x, x, e}, {o, o, e}, {e, e, e}},
			Turn:   x,
			Status: StatusOngoing,
		}

		// When: X completes the row
		err := game.MakeTurn(x, entity.Move{Row: 0, Col: 2})

		// Then: the game is finished with X as the winner
		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.False(t, game.IsDraw())
		assert.Equal(t, x, game.Winner)
		assert.Equal(t, e, game.Turn)
	})

	t.Run("Last move on a full board is a draw", func(t *testing.T) {
		// Given: a board with one empty cell and no line available
		game := &Game{
			Board:  entity.Board{{x, o, x}, {x, o, o}, {o, x, e}},
			Turn:   x,
			Status: StatusOngoing,
		}

		// When: X fills the last cell
		err := game.MakeTurn(x, entity.Move{Row: 2, Col: 2})

		// Then: the game is finished as a draw
		require.NoError(t, err)
		assert.True(t, game.IsDraw())
		assert.Equal(t, MarkTie, game.Winner)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a game where player X has already won
		game := &Game{
			Board:  entity.Board{{x, x, x}, {e, o, e}, {e, o, e}},
			Status: StatusFinished,
			Winner: x,
		}

		// When: player O tries to make a move after the game is over
		err := game.MakeTurn(o, entity.Move{Row: 1, Col: 0})

		// Then: an error ErrGameFinished should be returned.
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGenerateGameID(t *testing.T) {
	id := GenerateGameID()

	require.NotEmpty(t, id)
	assert.Regexp(t, `^[0-9]+$`, id)
}
