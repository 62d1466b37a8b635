package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/apperror"
)

type Mark string

const (
	MarkEmpty Mark = ""
	MarkX     Mark = "X"
	MarkO     Mark = "O"
)

const BoardSize = 3

// Board is a 3x3 grid addressed as board[row][col]. It is an array, so every
// assignment or function argument is an independent copy.
type Board [BoardSize][BoardSize]Mark

// Move addresses a single cell, 0-indexed.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NewBoard - returns the empty starting board.
func NewBoard() Board {
	return Board{}
}

// ParseMark - converts "X" or "O" into a player mark.
func ParseMark(value string) (Mark, error) {
	switch mark := Mark(strings.ToUpper(strings.TrimSpace(value))); mark {
	case MarkX, MarkO:
		return mark, nil
	default:
		return MarkEmpty, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, value)
	}
}

func (that Mark) IsPlayer() bool {
	return that == MarkX || that == MarkO
}

func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return MarkEmpty
	}
}

func (that Move) IsValid() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Cell - returns the mark at the given cell. The move must be valid.
func (that Board) Cell(move Move) Mark {
	return that[move.Row][move.Col]
}

// Count - returns how many cells hold the given mark.
func (that Board) Count(mark Mark) int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == mark {
				count++
			}
		}
	}

	return count
}

func (that Board) IsFull() bool {
	return that.Count(MarkEmpty) == 0
}

// String - renders the board on three lines, "-" for empty cells.
func (that Board) String() string {
	var sb strings.Builder

	for i, row := range that {
		for j, cell := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}

			if cell == MarkEmpty {
				sb.WriteByte('-')
			} else {
				sb.WriteString(string(cell))
			}
		}

		if i < BoardSize-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
