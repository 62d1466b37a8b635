package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/entity"
)

// WinLines lists every three-in-a-row: rows, then columns, then the main and
// anti diagonals.
var WinLines = [][3]entity.Move{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// Player - returns the mark that moves next. X moves first and on every tie.
func Player(board entity.Board) entity.Mark {
	if board.Count(entity.MarkX) <= board.Count(entity.MarkO) {
		return entity.MarkX
	}

	return entity.MarkO
}

// Actions - returns every empty cell in row-major order.
func Actions(board entity.Board) []entity.Move {
	moves := make([]entity.Move, 0, entity.BoardSize*entity.BoardSize)

	for row := range board {
		for col, cell := range board[row] {
			if cell == entity.MarkEmpty {
				moves = append(moves, entity.Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

// Result - returns the board after the player to move marks the given cell.
// The input board is not modified.
func Result(board entity.Board, move entity.Move) (entity.Board, error) {
	if !move.IsValid() {
		return board, fmt.Errorf("%w: %s", apperror.ErrInvalidCell, move)
	}

	if board.Cell(move) != entity.MarkEmpty {
		return board, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	next := board
	next[move.Row][move.Col] = Player(board)

	return next, nil
}

// Winner - returns the player holding a full line, X checked before O, or
// entity.MarkEmpty when nobody has one.
func Winner(board entity.Board) entity.Mark {
	for _, player := range []entity.Mark{entity.MarkX, entity.MarkO} {
		for _, line := range WinLines {
			if board.Cell(line[0]) == player && board.Cell(line[1]) == player && board.Cell(line[2]) == player {
				return player
			}
		}
	}

	return entity.MarkEmpty
}

// Terminal - reports whether the game is over by a win or a full board.
func Terminal(board entity.Board) bool {
	return Winner(board) != entity.MarkEmpty || board.IsFull()
}

// Utility - returns 1 if X has won, -1 if O has won, 0 otherwise.
func Utility(board entity.Board) int {
	switch Winner(board) {
	case entity.MarkX:
		return 1
	case entity.MarkO:
		return -1
	default:
		return 0
	}
}
