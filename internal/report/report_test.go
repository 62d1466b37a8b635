package report

import (
	"bytes"
	"testing"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintRanks(t *testing.T) {
	// Given: ranks of three pages in unsorted insertion order
	ranks := entity.Distribution{
		"3.html": 0.25,
		"1.html": 0.21996,
		"2.html": 0.53004,
	}

	// When: the ranks are printed
	var out bytes.Buffer
	err := PrintRanks(&out, SamplingTitle(10000), ranks)
	require.NoError(t, err)

	// Then: pages should be sorted with four decimal ranks
	expected := "PageRank Results from Sampling (n = 10000)\n" +
		"  1.html: 0.2200\n" +
		"  2.html: 0.5300\n" +
		"  3.html: 0.2500\n"
	assert.Equal(t, expected, out.String())
}

func TestPrintRanks_IterationTitle(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, PrintRanks(&out, IterationTitle, entity.Distribution{"a": 1}))

	assert.Equal(t, "PageRank Results from Iteration\n  a: 1.0000\n", out.String())
}

func TestRenderChart(t *testing.T) {
	// Given: sampled and iterated ranks
	sampled := entity.Distribution{"a.html": 0.48, "b.html": 0.52}
	iterated := entity.Distribution{"a.html": 0.5, "b.html": 0.5}

	// When: the chart is rendered
	var out bytes.Buffer
	err := RenderChart(&out, sampled, iterated)
	require.NoError(t, err)

	// Then: the page should contain both series and every page name
	html := out.String()
	assert.Contains(t, html, "<html")
	assert.Contains(t, html, sampledSeries)
	assert.Contains(t, html, iteratedSeries)
	assert.Contains(t, html, "a.html")
	assert.Contains(t, html, "b.html")
}

func TestBoardRenderer_Render(t *testing.T) {
	t.Run("Plain text without colors", func(t *testing.T) {
		// Given: a board in progress
		board := entity.Board{
			{entity.MarkX, entity.MarkO, entity.MarkEmpty},
			{entity.MarkEmpty, entity.MarkX, entity.MarkEmpty},
			{entity.MarkEmpty, entity.MarkEmpty, entity.MarkO},
		}

		// When: rendered without colors
		rendered := NewBoardRenderer(false).Render(board)

		// Then: the board should be drawn with headers and separators
		expected := "    0   1   2\n" +
			"0   X | O | -\n" +
			"1   - | X | -\n" +
			"2   - | - | O\n"
		assert.Equal(t, expected, rendered)
	})

	t.Run("Colors add escape sequences", func(t *testing.T) {
		board := entity.NewBoard()
		board[1][1] = entity.MarkX

		rendered := NewBoardRenderer(true).Render(board)

		assert.Contains(t, rendered, "\x1b[")
		assert.Contains(t, rendered, "X")
	})
}
