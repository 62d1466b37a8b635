package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/entity"
)

const (
	sampledSeries  = "Sampling"
	iteratedSeries = "Iteration"
)

// RenderChart - renders an HTML page with a bar chart comparing the sampled
// and iterated ranks of every page.
func RenderChart(w io.Writer, sampled, iterated entity.Distribution) error {
	pages := iterated.Pages()

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "PageRank",
			Subtitle: fmt.Sprintf("%d pages", len(pages)),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "PageRank",
			Theme:     "shine",
		}),
	)

	bar.SetXAxis(pages).
		AddSeries(sampledSeries, barData(pages, sampled)).
		AddSeries(iteratedSeries, barData(pages, iterated))

	page := components.NewPage()
	page.AddCharts(bar)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	return nil
}

func barData(pages []string, ranks entity.Distribution) []opts.BarData {
	items := make([]opts.BarData, 0, len(pages))
	for _, page := range pages {
		items = append(items, opts.BarData{Name: page, Value: ranks[page]})
	}

	return items
}
