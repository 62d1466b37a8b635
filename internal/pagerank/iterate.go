package pagerank

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/entity"
)

// IteratePageRank - starts from the uniform distribution and applies Step
// until no page changes by threshold or more, then returns the last
// computed distribution.
func IteratePageRank(corpus entity.Corpus, damping, threshold float64, maxIterations int) (entity.Distribution, int, error) {
	if err := validate(corpus, damping); err != nil {
		return nil, 0, err
	}

	if threshold <= 0 {
		return nil, 0, fmt.Errorf("%w: %v", apperror.ErrInvalidThreshold, threshold)
	}

	ranks := entity.Uniform(corpus.Pages())

	for iteration := 1; iteration <= maxIterations; iteration++ {
		next := Step(corpus, damping, ranks)

		if next.MaxDelta(ranks) < threshold {
			return next, iteration, nil
		}

		ranks = next
	}

	return ranks, maxIterations, fmt.Errorf("%w after %d iterations", apperror.ErrNotConverged, maxIterations)
}

// Step - applies the PageRank formula once to prev. A page without links
// counts as linking to every page, itself included.
func Step(corpus entity.Corpus, damping float64, prev entity.Distribution) entity.Distribution {
	pages := corpus.Pages()
	total := float64(len(pages))

	next := make(entity.Distribution, len(pages))
	for _, page := range pages {
		sum := 0.0

		for _, linker := range pages {
			switch outdegree := corpus.Outdegree(linker); {
			case outdegree == 0:
				sum += prev[linker] / total
			case corpus.HasLink(linker, page):
				sum += prev[linker] / float64(outdegree)
			}
		}

		next[page] = damping*sum + (1-damping)/total
	}

	return next
}
