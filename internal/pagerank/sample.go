package pagerank

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/entity"
)

// SamplePageRank - estimates PageRank from a random walk of n pages. The
// first page is uniform, every next page is drawn from the transition model
// of the previous one. The rank of a page is the share of samples on it.
func SamplePageRank(corpus entity.Corpus, damping float64, n int, rng *rand.Rand) (entity.Distribution, error) {
	if err := validate(corpus, damping); err != nil {
		return nil, err
	}

	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidSampleCount, n)
	}

	pages := corpus.Pages()

	transitions := make(map[string]entity.Distribution, len(pages))
	for _, page := range pages {
		transitions[page] = TransitionModel(corpus, page, damping)
	}

	visits := make(map[string]int, len(pages))

	sample := pages[rng.Intn(len(pages))]
	visits[sample]++

	for i := 1; i < n; i++ {
		sample = choose(pages, transitions[sample], rng)
		visits[sample]++
	}

	ranks := make(entity.Distribution, len(pages))
	for _, page := range pages {
		ranks[page] = float64(visits[page]) / float64(n)
	}

	return ranks, nil
}

// choose - draws a page from distribution, walking pages in their given
// order. Falls back to the last page when rounding leaves the cumulative sum
// just under the drawn value.
func choose(pages []string, distribution entity.Distribution, rng *rand.Rand) string {
	target := rng.Float64()
	cumulative := 0.0

	for _, page := range pages {
		cumulative += distribution[page]
		if target < cumulative {
			return page
		}
	}

	return pages[len(pages)-1]
}
