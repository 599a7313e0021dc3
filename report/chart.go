package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	barSolution = "#2e7d32"
	barWrong    = "#9e9e9e"
)

// newDistributionChart builds a bar per reported entry, solutions in green.
func newDistributionChart(s *Summary) *charts.Bar {
	title := fmt.Sprintf("%s: measurement distribution", s.Problem)
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: s.Triple() + " oracle=" + s.Oracle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "960px", Height: "540px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "probability %"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x"}),
	)

	var (
		labels []string
		items  []opts.BarData
	)
	if s.Distribution != nil {
		for _, e := range s.Distribution.Entries {
			colour := barWrong
			if e.Satisfies {
				colour = barSolution
			}
			labels = append(labels, e.Bitstring)
			items = append(items, opts.BarData{
				Name:      e.Bitstring,
				Value:     fmt.Sprintf("%.2f", e.Probability*100),
				ItemStyle: &opts.ItemStyle{Color: colour},
			})
		}
	}
	bar.SetXAxis(labels).
		AddSeries("probability", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}))

	return bar
}

// WriteChart renders the distribution as a standalone HTML page.
func WriteChart(w io.Writer, s *Summary) error {
	return newDistributionChart(s).Render(w)
}
