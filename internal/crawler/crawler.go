package crawler

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"golang.org/x/net/html"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/entity"
)

const pageExt = ".html"

type Crawler struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Crawler {
	return &Crawler{
		logger: logger.With("component", "crawler"),
	}
}

// Crawl - reads every .html file at the root of fsys and builds a corpus of
// the links between them.
func (that *Crawler) Crawl(fsys fs.FS) (entity.Corpus, error) {
	log := that.logger.With("method", "Crawl")

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus directory: %w", err)
	}

	links := make(map[string][]string)

	for _, dirEntry := range entries {
		name := dirEntry.Name()
		if dirEntry.IsDir() || path.Ext(name) != pageExt {
			continue
		}

		pageLinks, err := that.readLinks(fsys, name)
		if err != nil {
			return nil, err
		}

		links[name] = pageLinks
	}

	if len(links) == 0 {
		return nil, apperror.ErrEmptyCorpus
	}

	corpus := entity.NewCorpus(links)

	log.Debug("corpus crawled", "pages", len(corpus))

	return corpus, nil
}

func (that *Crawler) readLinks(fsys fs.FS, name string) ([]string, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open page %s: %w", name, err)
	}
	defer file.Close()

	links, err := ExtractLinks(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page %s: %w", name, err)
	}

	return links, nil
}

// ExtractLinks - returns the href of every anchor tag in the document, in
// document order.
func ExtractLinks(r io.Reader) ([]string, error) {
	var links []string

	tokenizer := html.NewTokenizer(r)
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			if err := tokenizer.Err(); !errors.Is(err, io.EOF) {
				return nil, err
			}

			return links, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			if token.Data != "a" {
				continue
			}

			for _, attr := range token.Attr {
				if strings.EqualFold(attr.Key, "href") {
					links = append(links, attr.Val)
				}
			}
		}
	}
}
