package entity

import (
	"math"

	"golang.org/x/exp/slices"
)

// Distribution maps a page to its probability.
type Distribution map[string]float64

// Uniform - assigns 1/len(pages) to every page.
func Uniform(pages []string) Distribution {
	distribution := make(Distribution, len(pages))
	if len(pages) == 0 {
		return distribution
	}

	share := 1 / float64(len(pages))
	for _, page := range pages {
		distribution[page] = share
	}

	return distribution
}

func (that Distribution) Sum() float64 {
	sum := 0.0
	for _, probability := range that {
		sum += probability
	}

	return sum
}

// Pages - returns the pages of the distribution in sorted order.
func (that Distribution) Pages() []string {
	pages := make([]string, 0, len(that))
	for page := range that {
		pages = append(pages, page)
	}

	slices.Sort(pages)

	return pages
}

// MaxDelta - returns the largest absolute difference between the two
// distributions over the pages of that. Pages missing from other count as 0.
func (that Distribution) MaxDelta(other Distribution) float64 {
	delta := 0.0
	for page, probability := range that {
		delta = math.Max(delta, math.Abs(probability-other[page]))
	}

	return delta
}
