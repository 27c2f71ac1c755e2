package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/monieshop/salesight/internal/aggregator"
)

const fullZoomPct = 100

// GeneratePlot writes an interactive HTML page with a daily-volume bar
// chart and an hourly-average bar chart.
func GeneratePlot(days []aggregator.DayVolume, hours []aggregator.HourAverage, w io.Writer) error {
	page := components.NewPage()
	page.PageTitle = "Monieshop sales report"
	page.AddCharts(dailyVolumeChart(days), hourlyAverageChart(hours))

	err := page.Render(w)
	if err != nil {
		return fmt.Errorf("render plot: %w", err)
	}

	return nil
}

func dailyVolumeChart(days []aggregator.DayVolume) *charts.Bar {
	labels := make([]string, len(days))
	data := make([]opts.BarData, len(days))

	for i, day := range days {
		labels[i] = day.Date.String()
		data[i] = opts.BarData{Value: day.Volume}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Daily Sales Volume",
			Subtitle: "Units sold per day",
			Left:     "2%",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", Start: 0, End: fullZoomPct}, opts.DataZoom{Type: "inside"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Date"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Units"}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries("volume", data)

	return bar
}

func hourlyAverageChart(hours []aggregator.HourAverage) *charts.Bar {
	labels := make([]string, len(hours))
	data := make([]opts.BarData, len(hours))

	for i, hour := range hours {
		labels[i] = strconv.Itoa(hour.Hour) + ":00"
		data[i] = opts.BarData{Value: hour.Average}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Average Transaction Volume by Hour",
			Subtitle: "Mean units per transaction, by hour of day",
			Left:     "2%",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Hour"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Avg units"}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries("average volume", data)

	return bar
}
