package pagerank

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/entity"
)

// TransitionModel - returns the distribution of the next page of a random
// surfer standing on page. With probability damping the surfer follows one
// of the page's links, otherwise it jumps to any page of the corpus. A page
// without links jumps uniformly.
func TransitionModel(corpus entity.Corpus, page string, damping float64) entity.Distribution {
	pages := corpus.Pages()

	outdegree := corpus.Outdegree(page)
	if outdegree == 0 {
		return entity.Uniform(pages)
	}

	teleport := (1 - damping) / float64(len(pages))
	follow := damping / float64(outdegree)

	distribution := make(entity.Distribution, len(pages))
	for _, next := range pages {
		distribution[next] = teleport
		if corpus.HasLink(page, next) {
			distribution[next] += follow
		}
	}

	return distribution
}

func validate(corpus entity.Corpus, damping float64) error {
	if len(corpus) == 0 {
		return apperror.ErrEmptyCorpus
	}

	return validateDamping(damping)
}

func validateDamping(damping float64) error {
	if damping < 0 || damping > 1 {
		return fmt.Errorf("%w: %v", apperror.ErrInvalidDamping, damping)
	}

	return nil
}
