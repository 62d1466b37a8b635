package report

import (
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/entity"
)

// BoardRenderer draws a board for the terminal. With colors disabled it
// prints plain text.
type BoardRenderer struct {
	au aurora.Aurora
}

func NewBoardRenderer(colors bool) *BoardRenderer {
	return &BoardRenderer{au: aurora.NewAurora(colors)}
}

// Render - returns the board as three rows of cells separated by " | ", with
// a column header and row numbers.
func (that *BoardRenderer) Render(board entity.Board) string {
	var b strings.Builder

	b.WriteString("    0   1   2\n")

	for row := range entity.BoardSize {
		b.WriteString(that.au.Gray(12, string(rune('0'+row))).String())
		b.WriteString("   ")

		for col := range entity.BoardSize {
			if col > 0 {
				b.WriteString(that.au.White(" | ").String())
			}

			b.WriteString(that.cell(board[row][col]))
		}

		b.WriteString("\n")
	}

	return b.String()
}

func (that *BoardRenderer) cell(mark entity.Mark) string {
	switch mark {
	case entity.MarkX:
		return that.au.Red(string(mark)).Bold().String()
	case entity.MarkO:
		return that.au.Blue(string(mark)).Bold().String()
	default:
		return that.au.Gray(12, "-").String()
	}
}
