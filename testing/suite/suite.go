package suite

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

// New - returns a suite whose logger writes through t.Log, so log lines show
// up only for failed or verbose tests.
func New(t *testing.T) *Suite {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(testWriter{t: t}, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return &Suite{
		T:      t,
		Logger: logger,
	}
}

// WriteCorpus - writes pages into a fresh temporary directory and returns
// its path. Each page maps its file name to the names it links to.
func (that *Suite) WriteCorpus(pages map[string][]string) string {
	that.Helper()

	dir := that.TempDir()
	for name, links := range pages {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(Page(links...)), 0o600); err != nil {
			that.Fatalf("could not write page %s: %v", name, err)
		}
	}

	return dir
}

// Page - returns an HTML document with one anchor per link.
func Page(links ...string) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head><title>page</title></head>\n<body>\n")
	for _, link := range links {
		b.WriteString(`  <a href="` + link + `">` + link + "</a>\n")
	}
	b.WriteString("</body>\n</html>\n")

	return b.String()
}

type testWriter struct {
	t *testing.T
}

func (that testWriter) Write(p []byte) (int, error) {
	that.t.Helper()
	that.t.Log(strings.TrimRight(string(p), "\n"))

	return len(p), nil
}
