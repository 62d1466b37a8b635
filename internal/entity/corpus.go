package entity

import (
	"golang.org/x/exp/slices"
)

// Corpus maps every page to the set of pages it links to. A corpus built by
// NewCorpus holds no self links and no links to pages outside the corpus.
type Corpus map[string]map[string]struct{}

// NewCorpus - builds a corpus from raw page links, dropping self links and
// links to pages that are not keys of the input.
func NewCorpus(links map[string][]string) Corpus {
	corpus := make(Corpus, len(links))

	for page, targets := range links {
		linked := make(map[string]struct{}, len(targets))

		for _, target := range targets {
			if target == page {
				continue
			}

			if _, ok := links[target]; !ok {
				continue
			}

			linked[target] = struct{}{}
		}

		corpus[page] = linked
	}

	return corpus
}

// Pages - returns every page of the corpus in sorted order.
func (that Corpus) Pages() []string {
	pages := make([]string, 0, len(that))
	for page := range that {
		pages = append(pages, page)
	}

	slices.Sort(pages)

	return pages
}

// Links - returns the pages linked from page in sorted order.
func (that Corpus) Links(page string) []string {
	links := make([]string, 0, len(that[page]))
	for link := range that[page] {
		links = append(links, link)
	}

	slices.Sort(links)

	return links
}

func (that Corpus) Outdegree(page string) int {
	return len(that[page])
}

func (that Corpus) HasLink(from, to string) bool {
	_, ok := that[from][to]
	return ok
}
