package report

import (
	"fmt"
	"os"
	"sort"

	"github.com/dnapatterns/patternminer/pattern"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// PlotSupportCurve renders a bar chart of total support per pattern
// length to filename. It is the direct analogue of the teacher's
// PlotHeatmap (a 2-D IP heatmap) collapsed to the 1-D support-vs-length
// curve Scripts/support_thresholds.py plots, since a pattern's only
// geometry here is its length.
func PlotSupportCurve(results []pattern.Result, filename string) error {
	totals := make(map[int]int)
	for _, r := range results {
		totals[len(r.Pattern)] += r.Support
	}

	lengths := make([]int, 0, len(totals))
	for l := range totals {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	xAxis := make([]string, len(lengths))
	data := make([]opts.BarData, len(lengths))
	for i, l := range lengths {
		xAxis[i] = fmt.Sprintf("%d", l)
		data[i] = opts.BarData{Value: totals[l]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:       "Pattern Support by Length",
			Width:           "120vh",
			Height:          "70vh",
			Theme:           types.ThemeVintage,
			BackgroundColor: "transparent",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Total Support by Pattern Length",
			Left:  "center",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Pattern length"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Total support"}),
	)
	bar.SetXAxis(xAxis).AddSeries("Support", data)

	page := components.NewPage()
	page.SetLayout(components.PageCenterLayout)
	page.AddCharts(bar)

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", filename, err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("report: render %s: %w", filename, err)
	}
	return nil
}
