package tictactoe

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/entity"
)

// Minimax - returns the optimal move for the player to move, or false when
// the board is terminal. Among equally valued moves the first one in
// row-major order wins.
func Minimax(board entity.Board) (entity.Move, bool) {
	if Terminal(board) {
		return entity.Move{}, false
	}

	var (
		best  entity.Move
		found bool
	)

	if Player(board) == entity.MarkX {
		value := math.MinInt
		for _, move := range Actions(board) {
			if v := MinValue(mustResult(board, move)); !found || v > value {
				value, best, found = v, move, true
			}
		}

		return best, found
	}

	value := math.MaxInt
	for _, move := range Actions(board) {
		if v := MaxValue(mustResult(board, move)); !found || v < value {
			value, best, found = v, move, true
		}
	}

	return best, found
}

// MaxValue - returns the value of the board for X to move, assuming both
// sides play optimally from here.
func MaxValue(board entity.Board) int {
	if Terminal(board) {
		return Utility(board)
	}

	value := math.MinInt
	for _, move := range Actions(board) {
		value = max(value, MinValue(mustResult(board, move)))
	}

	return value
}

// MinValue - returns the value of the board for O to move.
func MinValue(board entity.Board) int {
	if Terminal(board) {
		return Utility(board)
	}

	value := math.MaxInt
	for _, move := range Actions(board) {
		value = min(value, MaxValue(mustResult(board, move)))
	}

	return value
}

// mustResult panics on an illegal move: Actions only yields empty cells, so
// an error here is a broken invariant.
func mustResult(board entity.Board, move entity.Move) entity.Board {
	next, err := Result(board, move)
	if err != nil {
		panic(fmt.Errorf("minimax explored an illegal move: %w", err))
	}

	return next
}
