package report

import (
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/entity"
)

// SamplingTitle - returns the header of the sampling table for n samples.
func SamplingTitle(samples int) string {
	return fmt.Sprintf("PageRank Results from Sampling (n = %d)", samples)
}

const IterationTitle = "PageRank Results from Iteration"

// PrintRanks - writes title and then one "  page: rank" line per page, pages
// sorted, ranks with four decimals.
func PrintRanks(w io.Writer, title string, ranks entity.Distribution) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return fmt.Errorf("failed to write ranks title: %w", err)
	}

	for _, page := range ranks.Pages() {
		if _, err := fmt.Fprintf(w, "  %s: %.4f\n", page, ranks[page]); err != nil {
			return fmt.Errorf("failed to write rank of %s: %w", page, err)
		}
	}

	return nil
}
