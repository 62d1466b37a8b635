package crawler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-pagerank/testing/suite"
)

func page(links ...string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(suite.Page(links...))}
}

func newTestCrawler(t *testing.T) *Crawler {
	return New(suite.New(t).Logger)
}

func TestCrawler_Crawl(t *testing.T) {
	t.Run("Builds corpus from html pages", func(t *testing.T) {
		// Given: three pages, a self link, a dangling link and a non html file
		fsys := fstest.MapFS{
			"1.html":     page("2.html", "1.html"),
			"2.html":     page("1.html", "3.html", "https://example.com"),
			"3.html":     page(),
			"notes.txt":  &fstest.MapFile{Data: []byte(`<a href="1.html">`)},
			"sub/4.html": page("1.html"),
		}

		// When: the directory is crawled
		corpus, err := newTestCrawler(t).Crawl(fsys)
		require.NoError(t, err)

		// Then: only root html pages and links between them should remain
		assert.Equal(t, []string{"1.html", "2.html", "3.html"}, corpus.Pages())
		assert.Equal(t, []string{"2.html"}, corpus.Links("1.html"))
		assert.Equal(t, []string{"1.html", "3.html"}, corpus.Links("2.html"))
		assert.Empty(t, corpus.Links("3.html"))
	})

	t.Run("Error on directory without pages", func(t *testing.T) {
		fsys := fstest.MapFS{
			"readme.md": &fstest.MapFile{Data: []byte("# corpus")},
		}

		_, err := newTestCrawler(t).Crawl(fsys)
		require.ErrorIs(t, err, apperror.ErrEmptyCorpus)
	})

	t.Run("Error on missing directory", func(t *testing.T) {
		missing := os.DirFS(filepath.Join(t.TempDir(), "missing"))

		_, err := newTestCrawler(t).Crawl(missing)
		require.Error(t, err)
		assert.NotErrorIs(t, err, apperror.ErrEmptyCorpus)
	})
}

func TestExtractLinks(t *testing.T) {
	// Given: a document with anchors in several shapes
	document := `<html><body>
		<p>Go to <a href="a.html">a</a> or <A HREF="b.html">b</A>.</p>
		<a name="anchor">no href</a>
		<link href="style.css">
		<a id="x" href="c.html"/>
	</body></html>`

	// When: links are extracted
	links, err := ExtractLinks(strings.NewReader(document))
	require.NoError(t, err)

	// Then: only anchor hrefs should be returned in document order
	assert.Equal(t, []string{"a.html", "b.html", "c.html"}, links)
}
